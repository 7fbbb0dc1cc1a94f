package callgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/ast"
	"github.com/Cyfrin/aderyn-sub003/callgraph"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

const graphAST = `{
	"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "G.sol",
	"nodes": [{
		"id": 3, "src": "0:1:0", "nodeType": "ContractDefinition", "name": "G",
		"contractKind": "contract", "abstract": false, "fullyImplemented": true,
		"linearizedBaseContracts": [3],
		"nodes": [
			{
				"id": 10, "src": "0:1:0", "nodeType": "FunctionDefinition", "name": "outer",
				"kind": "function", "visibility": "external", "stateMutability": "nonpayable",
				"virtual": false, "implemented": true, "scope": 3,
				"parameters": {"id": 11, "src": "0:1:0", "nodeType": "ParameterList", "parameters": []},
				"body": {
					"id": 14, "src": "0:1:0", "nodeType": "Block",
					"statements": [{
						"id": 15, "src": "0:1:0", "nodeType": "ExpressionStatement",
						"expression": {
							"id": 16, "src": "0:1:0", "nodeType": "FunctionCall", "kind": "functionCall",
							"expression": {
								"id": 17, "src": "0:1:0", "nodeType": "Identifier",
								"name": "inner", "referencedDeclaration": 30
							},
							"arguments": []
						}
					}]
				}
			},
			{
				"id": 30, "src": "0:1:0", "nodeType": "FunctionDefinition", "name": "inner",
				"kind": "function", "visibility": "internal", "stateMutability": "nonpayable",
				"virtual": false, "implemented": true, "scope": 3,
				"parameters": {"id": 31, "src": "0:1:0", "nodeType": "ParameterList", "parameters": []},
				"body": {"id": 34, "src": "0:1:0", "nodeType": "Block", "statements": []}
			}
		]
	}]
}`

const emitGraphAST = `{
	"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "E.sol",
	"nodes": [
		{
			"id": 100, "src": "0:10:0", "nodeType": "EventDefinition", "name": "Pinged",
			"parameters": {"id": 101, "nodeType": "ParameterList", "parameters": []}
		},
		{
			"id": 2, "src": "0:50:0", "nodeType": "ContractDefinition", "name": "E",
			"contractKind": "contract", "abstract": false, "fullyImplemented": true,
			"linearizedBaseContracts": [2],
			"nodes": [
				{
					"id": 10, "src": "10:40:0", "nodeType": "FunctionDefinition", "name": "ping",
					"visibility": "public", "stateMutability": "nonpayable", "implemented": true,
					"kind": "function",
					"parameters": {"id": 11, "nodeType": "ParameterList", "parameters": []},
					"returnParameters": {"id": 12, "nodeType": "ParameterList", "parameters": []},
					"body": {
						"id": 13, "nodeType": "Block", "src": "20:20:0",
						"statements": [
							{
								"id": 14, "nodeType": "EmitStatement", "src": "22:16:0",
								"eventCall": {
									"id": 15, "nodeType": "FunctionCall", "src": "22:16:0",
									"kind": "functionCall",
									"expression": {
										"id": 16, "nodeType": "Identifier", "src": "22:6:0",
										"name": "Pinged", "referencedDeclaration": 100
									},
									"arguments": []
								}
							}
						]
					}
				}
			]
		}
	]
}`

func TestBuildDoesNotConnectToNonCallgraphTargets(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "E.sol", SourceText: "contract E {}\n", RawAST: []byte(emitGraphAST)},
	}, nil, nil)
	require.NoError(t, err)

	g := callgraph.Build(w)

	require.Empty(t, g.Successors(ast.NodeID(10)))
}

func TestBuildConnectsCallerToCallee(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "G.sol", SourceText: "contract G {}\n", RawAST: []byte(graphAST)},
	}, nil, nil)
	require.NoError(t, err)

	g := callgraph.Build(w)

	succ := g.Successors(ast.NodeID(10))
	require.Equal(t, []ast.NodeID{30}, succ)

	transposed := g.Transpose()
	require.Equal(t, []ast.NodeID{10}, transposed.Successors(ast.NodeID(30)))
}
