package low_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/detect/low"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

const stateChangeAST = `{
	"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "Counter.sol",
	"nodes": [{
		"id": 3, "src": "0:1:0", "nodeType": "ContractDefinition", "name": "Counter",
		"contractKind": "contract", "abstract": false, "fullyImplemented": true,
		"linearizedBaseContracts": [3],
		"nodes": [
			{
				"id": 4, "src": "0:1:0", "nodeType": "VariableDeclaration",
				"name": "count", "stateVariable": true, "visibility": "internal"
			},
			{
				"id": 10, "src": "0:1:0", "nodeType": "FunctionDefinition", "name": "increment",
				"kind": "function", "visibility": "external", "stateMutability": "nonpayable",
				"virtual": false, "implemented": true, "scope": 3,
				"parameters": {"id": 11, "src": "0:1:0", "nodeType": "ParameterList", "parameters": []},
				"body": {
					"id": 14, "src": "0:1:0", "nodeType": "Block",
					"statements": [{
						"id": 15, "src": "0:1:0", "nodeType": "ExpressionStatement",
						"expression": {
							"id": 16, "src": "0:1:0", "nodeType": "Assignment", "operator": "=",
							"leftHandSide": {
								"id": 17, "src": "0:1:0", "nodeType": "Identifier",
								"name": "count", "referencedDeclaration": 4
							},
							"rightHandSide": {
								"id": 18, "src": "0:1:0", "nodeType": "Literal",
								"kind": "number", "value": "1"
							}
						}
					}]
				}
			}
		]
	}]
}`

const stateChangeSource = `contract Counter {
    uint256 internal count;

    function increment() external {
        count = 1;
    }
}
`

func TestStateChangeWithoutEventDetector_FlagsMutationWithNoEmit(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "Counter.sol", SourceText: stateChangeSource, RawAST: []byte(stateChangeAST)},
	}, nil, nil)
	require.NoError(t, err)

	d := &low.StateChangeWithoutEventDetector{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, d.Instances(), 1)
}
