package low_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/detect/low"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

const requireInLoopAST = `{
	"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "Batch.sol",
	"nodes": [{
		"id": 3, "src": "0:1:0", "nodeType": "ContractDefinition", "name": "Batch",
		"contractKind": "contract", "abstract": false, "fullyImplemented": true,
		"linearizedBaseContracts": [3],
		"nodes": [{
			"id": 10, "src": "0:1:0", "nodeType": "FunctionDefinition", "name": "process",
			"kind": "function", "visibility": "external", "stateMutability": "nonpayable",
			"virtual": false, "implemented": true, "scope": 3,
			"parameters": {"id": 11, "src": "0:1:0", "nodeType": "ParameterList", "parameters": []},
			"body": {
				"id": 14, "src": "0:1:0", "nodeType": "Block",
				"statements": [{
					"id": 15, "src": "0:1:0", "nodeType": "ForStatement",
					"body": {
						"id": 20, "src": "0:1:0", "nodeType": "Block",
						"statements": [{
							"id": 21, "src": "0:1:0", "nodeType": "ExpressionStatement",
							"expression": {
								"id": 22, "src": "0:1:0", "nodeType": "FunctionCall", "kind": "functionCall",
								"expression": {
									"id": 23, "src": "0:1:0", "nodeType": "Identifier",
									"name": "require", "referencedDeclaration": 0
								},
								"arguments": [{
									"id": 24, "src": "0:1:0", "nodeType": "Literal",
									"kind": "bool", "value": "true"
								}]
							}
						}]
					}
				}]
			}
		}]
	}]
}`

const requireInLoopSource = `contract Batch {
    function process(uint256[] memory xs) external {
        for (uint256 i = 0; i < xs.length; i++) {
            require(xs[i] > 0);
        }
    }
}
`

func TestRequireRevertInLoopDetector_FlagsLoopWithRequire(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "Batch.sol", SourceText: requireInLoopSource, RawAST: []byte(requireInLoopAST)},
	}, nil, nil)
	require.NoError(t, err)

	d := &low.RequireRevertInLoopDetector{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, d.Instances(), 1)
}
