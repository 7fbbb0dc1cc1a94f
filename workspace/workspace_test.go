package workspace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/ast"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

const fooSource = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.0;

contract Foo {
    uint256 public x; // aderyn-ignore-line:state-change-without-event
}
`

const fooAST = `{
	"id": 1,
	"src": "0:120:0",
	"nodeType": "SourceUnit",
	"absolutePath": "Foo.sol",
	"nodes": [
		{
			"id": 2,
			"src": "40:24:0",
			"nodeType": "PragmaDirective",
			"literals": ["solidity", "^", "0.8", ".0"]
		},
		{
			"id": 3,
			"src": "66:50:0",
			"nodeType": "ContractDefinition",
			"name": "Foo",
			"contractKind": "contract",
			"abstract": false,
			"fullyImplemented": true,
			"linearizedBaseContracts": [3],
			"nodes": [
				{
					"id": 4,
					"src": "90:25:0",
					"nodeType": "VariableDeclaration",
					"name": "x",
					"stateVariable": true,
					"visibility": "public"
				}
			]
		}
	]
}`

func newTestWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "Foo.sol", SourceText: fooSource, RawAST: []byte(fooAST)},
	}, nil, nil)
	require.NoError(t, err)
	return w
}

func TestNewIndexesEveryNode(t *testing.T) {
	w := newTestWorkspace(t)

	contracts := w.NodesOfKind(ast.KindContractDefinition)
	require.Len(t, contracts, 1)
	require.Equal(t, "Foo", contracts[0].(*ast.ContractDefinition).Name)

	vars := w.NodesOfKind(ast.KindVariableDeclaration)
	require.Len(t, vars, 1)

	n, ok := w.Node(ast.NodeID(4))
	require.True(t, ok)
	require.Equal(t, ast.KindVariableDeclaration, n.Kind())
}

func TestParentLinksAreEstablished(t *testing.T) {
	w := newTestWorkspace(t)

	vd, _ := w.Node(ast.NodeID(4))
	parent, ok := w.Parent(vd)
	require.True(t, ok)
	require.Equal(t, ast.KindContractDefinition, parent.Kind())
}

func TestIsIncludedDefaultsToEverything(t *testing.T) {
	w := newTestWorkspace(t)
	require.True(t, w.IsIncluded("Foo.sol"))
	require.True(t, w.IsIncluded("anything.sol"))
}

func TestIsIncludedHonorsScopeFilter(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "Foo.sol", SourceText: fooSource, RawAST: []byte(fooAST)},
	}, map[string]bool{"Foo.sol": true}, nil)
	require.NoError(t, err)

	require.True(t, w.IsIncluded("Foo.sol"))
	require.False(t, w.IsIncluded("Bar.sol"))
}

func TestIsIgnoredParsesQualifiedSuppression(t *testing.T) {
	w := newTestWorkspace(t)

	qualifier, ignored := w.IsIgnored("Foo.sol", 5)
	require.True(t, ignored)
	require.Equal(t, "state-change-without-event", qualifier)

	_, ignored = w.IsIgnored("Foo.sol", 1)
	require.False(t, ignored)
}

func TestNewBuildsCallGraphsAndRoutersPerContract(t *testing.T) {
	w := newTestWorkspace(t)

	require.NotNil(t, w.CallGraph())
	require.NotNil(t, w.InwardCallGraph())

	contracts := w.NodesOfKind(ast.KindContractDefinition)
	require.Len(t, contracts, 1)
	c := contracts[0].(*ast.ContractDefinition)

	require.NotNil(t, w.InwardCallGraphFor(c))
	require.NotNil(t, w.ExternalCallRouter(c))
	require.NotNil(t, w.ModifierCallRouter(c))
}

func TestSLOCCountsBlankAndCommentLines(t *testing.T) {
	w := newTestWorkspace(t)

	stats := w.SLOC("Foo.sol")
	require.Greater(t, stats.Total, 0)
	require.GreaterOrEqual(t, stats.CommentLines, 1)
	require.GreaterOrEqual(t, stats.SourceLines, 1)
}
