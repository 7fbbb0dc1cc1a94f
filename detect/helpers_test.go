package detect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/ast"
	"github.com/Cyfrin/aderyn-sub003/detect"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

// overrideAST models a Base contract whose modifier "onlyOwner" (id 2) is
// overridden by Derived (id 11); Derived's own function "foo" invokes the
// modifier by name, but its statically-resolved ReferencedDeclaration (the
// "suspect") points at Base's definition rather than Derived's override -
// exactly the shape router.ModifierCallRouter exists to correct.
const overrideAST = `{
	"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "Override.sol",
	"nodes": [
		{
			"id": 1, "src": "0:30:0", "nodeType": "ContractDefinition", "name": "Base",
			"contractKind": "contract", "abstract": false, "fullyImplemented": true,
			"linearizedBaseContracts": [1],
			"nodes": [
				{
					"id": 2, "src": "5:10:0", "nodeType": "ModifierDefinition", "name": "onlyOwner",
					"visibility": "internal", "virtual": true,
					"parameters": {"id": 3, "nodeType": "ParameterList", "parameters": []},
					"body": {
						"id": 4, "nodeType": "Block", "src": "5:10:0",
						"statements": [{"id": 5, "nodeType": "PlaceholderStatement", "src": "5:2:0"}]
					}
				}
			]
		},
		{
			"id": 10, "src": "30:60:0", "nodeType": "ContractDefinition", "name": "Derived",
			"contractKind": "contract", "abstract": false, "fullyImplemented": true,
			"linearizedBaseContracts": [10, 1],
			"nodes": [
				{
					"id": 11, "src": "35:10:0", "nodeType": "ModifierDefinition", "name": "onlyOwner",
					"visibility": "internal", "virtual": true,
					"parameters": {"id": 12, "nodeType": "ParameterList", "parameters": []},
					"body": {
						"id": 13, "nodeType": "Block", "src": "35:10:0",
						"statements": [{"id": 14, "nodeType": "PlaceholderStatement", "src": "35:2:0"}]
					}
				},
				{
					"id": 20, "src": "50:30:0", "nodeType": "FunctionDefinition", "name": "foo",
					"kind": "function", "visibility": "external", "stateMutability": "nonpayable",
					"virtual": false, "implemented": true, "scope": 10,
					"parameters": {"id": 21, "nodeType": "ParameterList", "parameters": []},
					"modifiers": [
						{
							"id": 22, "src": "55:9:0", "nodeType": "ModifierInvocation",
							"modifierName": {
								"id": 23, "src": "55:9:0", "nodeType": "Identifier",
								"name": "onlyOwner", "referencedDeclaration": 2
							},
							"arguments": []
						}
					],
					"body": {"id": 24, "src": "65:10:0", "nodeType": "Block", "statements": []}
				}
			]
		}
	]
}`

func TestReachableCodeFollowsModifierOverride(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "Override.sol", SourceText: "contract Base {}\ncontract Derived is Base {}\n", RawAST: []byte(overrideAST)},
	}, nil, nil)
	require.NoError(t, err)

	foo, ok := w.Node(ast.NodeID(20))
	require.True(t, ok)
	fd := foo.(*ast.FunctionDefinition)

	reached := detect.ReachableCode(w, fd)

	baseModifierBody, _ := w.Node(ast.NodeID(4))
	derivedModifierBody, _ := w.Node(ast.NodeID(13))

	require.Contains(t, reached, derivedModifierBody)
	require.NotContains(t, reached, baseModifierBody)
}
