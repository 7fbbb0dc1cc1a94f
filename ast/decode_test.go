package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/ast"
)

func TestDecodeNodeSourceUnit(t *testing.T) {
	raw := []byte(`{
		"id": 1,
		"src": "0:50:0",
		"nodeType": "SourceUnit",
		"absolutePath": "A.sol",
		"nodes": [
			{
				"id": 2,
				"src": "0:10:0",
				"nodeType": "PragmaDirective",
				"literals": ["solidity", "^", "0.8", ".0"]
			},
			{
				"id": 3,
				"src": "10:40:0",
				"nodeType": "ContractDefinition",
				"name": "Foo",
				"contractKind": "contract",
				"abstract": false,
				"fullyImplemented": true,
				"linearizedBaseContracts": [3],
				"nodes": []
			}
		]
	}`)

	n, err := ast.DecodeNode(raw)
	require.NoError(t, err)
	require.NotNil(t, n)

	su, ok := n.(*ast.SourceUnit)
	require.True(t, ok)
	require.Equal(t, ast.NodeID(1), su.NodeID())
	require.Equal(t, "A.sol", su.AbsolutePath)
	require.Len(t, su.Nodes, 2)

	contract, ok := su.Nodes[1].(*ast.ContractDefinition)
	require.True(t, ok)
	require.Equal(t, "Foo", contract.Name)
	require.Equal(t, ast.ContractKindContract, contract.ContractKind)
	require.False(t, contract.IsAbstract)
}

func TestDecodeNodeUnknownKindFallsThroughToGeneric(t *testing.T) {
	raw := []byte(`{"id": 9, "src": "0:1:0", "nodeType": "SomeFutureCompilerNode", "extra": {"id": 10, "src": "1:1:0", "nodeType": "Identifier", "name": "x"}}`)

	n, err := ast.DecodeNode(raw)
	require.NoError(t, err)

	g, ok := n.(*ast.Generic)
	require.True(t, ok)
	require.Equal(t, ast.NodeID(9), g.NodeID())
	require.Len(t, g.Children(), 1)
	require.Equal(t, ast.KindIdentifier, g.Children()[0].Kind())
}

func TestParseSourceLocationInvalid(t *testing.T) {
	loc := ast.ParseSourceLocation("not-a-location")
	require.False(t, loc.Valid)

	loc = ast.ParseSourceLocation("10:5:0")
	require.True(t, loc.Valid)
	require.Equal(t, 10, loc.Start)
	require.Equal(t, 5, loc.Length)
	require.Equal(t, 0, loc.FileIndex)
}
