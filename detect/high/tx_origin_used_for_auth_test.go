package high_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/detect/high"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

const txOriginAST = `{
	"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "Owned.sol",
	"nodes": [{
		"id": 3, "src": "0:1:0", "nodeType": "ContractDefinition", "name": "Owned",
		"contractKind": "contract", "abstract": false, "fullyImplemented": true,
		"linearizedBaseContracts": [3],
		"nodes": [{
			"id": 10, "src": "0:1:0", "nodeType": "FunctionDefinition", "name": "withdraw",
			"kind": "function", "visibility": "external", "stateMutability": "nonpayable",
			"virtual": false, "implemented": true, "scope": 3,
			"parameters": {"id": 11, "src": "0:1:0", "nodeType": "ParameterList", "parameters": []},
			"body": {
				"id": 14, "src": "0:1:0", "nodeType": "Block",
				"statements": [{
					"id": 15, "src": "0:1:0", "nodeType": "IfStatement",
					"condition": {
						"id": 16, "src": "0:1:0", "nodeType": "BinaryOperation", "operator": "==",
						"leftExpression": {
							"id": 17, "src": "0:1:0", "nodeType": "MemberAccess",
							"memberName": "origin",
							"expression": {"id": 18, "src": "0:1:0", "nodeType": "Identifier", "name": "tx"}
						},
						"rightExpression": {
							"id": 19, "src": "0:1:0", "nodeType": "Identifier", "name": "owner", "referencedDeclaration": 99
						}
					},
					"trueBody": {"id": 20, "src": "0:1:0", "nodeType": "Block", "statements": []}
				}]
			}
		}]
	}]
}`

const txOriginSource = `contract Owned {
    function withdraw() external {
        if (tx.origin == owner) {}
    }
}
`

func TestTxOriginUsedForAuthDetector_FlagsOriginCheck(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "Owned.sol", SourceText: txOriginSource, RawAST: []byte(txOriginAST)},
	}, nil, nil)
	require.NoError(t, err)

	d := &high.TxOriginUsedForAuthDetector{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, d.Instances(), 1)
}
