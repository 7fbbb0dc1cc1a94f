package browser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/ast"
	"github.com/Cyfrin/aderyn-sub003/browser"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

const navigateAST = `{
	"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "N.sol",
	"nodes": [{
		"id": 3, "src": "0:1:0", "nodeType": "ContractDefinition", "name": "N",
		"contractKind": "contract", "abstract": false, "fullyImplemented": true,
		"linearizedBaseContracts": [3],
		"nodes": [{
			"id": 10, "src": "0:1:0", "nodeType": "FunctionDefinition", "name": "loop",
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
								"id": 22, "src": "0:1:0", "nodeType": "Identifier", "name": "noop"
							}
						}]
					}
				}]
			}
		}]
	}]
}`

func TestEnclosingFunctionAndClosestAncestor(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "N.sol", SourceText: "contract N {}\n", RawAST: []byte(navigateAST)},
	}, nil, nil)
	require.NoError(t, err)

	ident, ok := w.Node(ast.NodeID(22))
	require.True(t, ok)

	fn, ok := browser.EnclosingFunction(w, ident)
	require.True(t, ok)
	require.Equal(t, "loop", fn.Name)

	contract, ok := browser.EnclosingContract(w, ident)
	require.True(t, ok)
	require.Equal(t, "N", contract.Name)

	loop, ok := browser.EnclosingLoop(w, ident)
	require.True(t, ok)
	require.Equal(t, ast.KindForStatement, loop.Kind())

	su, ok := browser.ClosestAncestorOfKind(w, ident, ast.KindSourceUnit)
	require.True(t, ok)
	require.Equal(t, "N.sol", su.(*ast.SourceUnit).AbsolutePath)
}

func TestEnclosingModifierAbsentReturnsFalse(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "N.sol", SourceText: "contract N {}\n", RawAST: []byte(navigateAST)},
	}, nil, nil)
	require.NoError(t, err)

	ident, ok := w.Node(ast.NodeID(22))
	require.True(t, ok)

	_, ok = browser.EnclosingModifier(w, ident)
	require.False(t, ok)
}
