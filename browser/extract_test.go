package browser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/ast"
	"github.com/Cyfrin/aderyn-sub003/browser"
)

const extractFixtureAST = `{
	"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "E.sol",
	"nodes": [{
		"id": 3, "src": "0:1:0", "nodeType": "ContractDefinition", "name": "E",
		"contractKind": "contract", "abstract": false, "fullyImplemented": true,
		"linearizedBaseContracts": [3],
		"nodes": [{
			"id": 10, "src": "0:1:0", "nodeType": "FunctionDefinition", "name": "f",
			"kind": "function", "visibility": "external", "stateMutability": "nonpayable",
			"virtual": false, "implemented": true, "scope": 3,
			"parameters": {"id": 11, "src": "0:1:0", "nodeType": "ParameterList", "parameters": []},
			"body": {
				"id": 14, "src": "0:1:0", "nodeType": "Block",
				"statements": [
					{
						"id": 15, "src": "0:1:0", "nodeType": "ExpressionStatement",
						"expression": {
							"id": 16, "src": "0:1:0", "nodeType": "FunctionCall", "kind": "functionCall",
							"expression": {
								"id": 17, "src": "0:1:0", "nodeType": "MemberAccess", "memberName": "call",
								"expression": {"id": 18, "src": "0:1:0", "nodeType": "Identifier", "name": "target", "referencedDeclaration": 99}
							},
							"arguments": []
						}
					},
					{
						"id": 20, "src": "0:1:0", "nodeType": "EmitStatement",
						"eventCall": {
							"id": 21, "src": "0:1:0", "nodeType": "FunctionCall", "kind": "functionCall",
							"expression": {"id": 22, "src": "0:1:0", "nodeType": "Identifier", "name": "Transfer"},
							"arguments": []
						}
					}
				]
			}
		}]
	}]
}`

func decodeExtractFixture(t *testing.T) ast.Node {
	t.Helper()
	n, err := ast.DecodeNode([]byte(extractFixtureAST))
	require.NoError(t, err)
	return n
}

func TestExtractIdentifiersFindsNestedIdentifier(t *testing.T) {
	root := decodeExtractFixture(t)
	idents := browser.ExtractIdentifiers(root)

	var names []string
	for _, id := range idents {
		names = append(names, id.Name)
	}
	require.Contains(t, names, "target")
}

func TestExtractFunctionCallsFindsCallExpression(t *testing.T) {
	root := decodeExtractFixture(t)
	calls := browser.ExtractFunctionCalls(root)
	require.Len(t, calls, 2)
}

func TestExtractEmitStatementsFindsEmit(t *testing.T) {
	root := decodeExtractFixture(t)
	emits := browser.ExtractEmitStatements(root)
	require.Len(t, emits, 1)
}

func TestIsExtCallishDetectsLowLevelCall(t *testing.T) {
	root := decodeExtractFixture(t)
	require.True(t, browser.IsExtCallish(root))
}

func TestIsExtCallishFalseWithoutLowLevelCall(t *testing.T) {
	root := decodeExtractFixture(t)
	fn := root.(*ast.SourceUnit).Nodes[0].(*ast.ContractDefinition).Members[0].(*ast.FunctionDefinition)
	require.False(t, browser.IsExtCallish(fn.Parameters))
}
