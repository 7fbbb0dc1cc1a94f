package high_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/detect/high"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

const uncheckedDelegatecallAST = `{
	"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "Vault.sol",
	"nodes": [{
		"id": 3, "src": "0:1:0", "nodeType": "ContractDefinition", "name": "Vault",
		"contractKind": "contract", "abstract": false, "fullyImplemented": true,
		"linearizedBaseContracts": [3],
		"nodes": [{
			"id": 10, "src": "0:1:0", "nodeType": "FunctionDefinition", "name": "execute",
			"kind": "function", "visibility": "external", "stateMutability": "nonpayable",
			"virtual": false, "implemented": true, "scope": 3,
			"parameters": {
				"id": 11, "src": "0:1:0", "nodeType": "ParameterList",
				"parameters": [{
					"id": 12, "src": "0:1:0", "nodeType": "VariableDeclaration",
					"name": "target", "stateVariable": false, "visibility": "internal"
				}]
			},
			"body": {
				"id": 14, "src": "0:1:0", "nodeType": "Block",
				"statements": [{
					"id": 15, "src": "0:1:0", "nodeType": "ExpressionStatement",
					"expression": {
						"id": 16, "src": "0:1:0", "nodeType": "FunctionCall", "kind": "functionCall",
						"expression": {
							"id": 17, "src": "0:1:0", "nodeType": "MemberAccess",
							"memberName": "delegatecall",
							"expression": {
								"id": 18, "src": "0:1:0", "nodeType": "Identifier",
								"name": "target", "referencedDeclaration": 12
							}
						},
						"arguments": [{
							"id": 19, "src": "0:1:0", "nodeType": "Identifier",
							"name": "data", "referencedDeclaration": 20
						}]
					}
				}]
			}
		}]
	}]
}`

const uncheckedDelegatecallSource = `contract Vault {
    function execute(address target, bytes memory data) external {
        target.delegatecall(data);
    }
}
`

func TestDelegateCallUncheckedAddressDetector_FlagsMissingCheck(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "Vault.sol", SourceText: uncheckedDelegatecallSource, RawAST: []byte(uncheckedDelegatecallAST)},
	}, nil, nil)
	require.NoError(t, err)

	d := &high.DelegateCallUncheckedAddressDetector{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, d.Instances(), 1)
}
