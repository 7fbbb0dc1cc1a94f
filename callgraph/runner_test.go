package callgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/ast"
	"github.com/Cyfrin/aderyn-sub003/callgraph"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

type recordingVisitor struct {
	entry ast.NodeID
	seen  []ast.NodeID
}

func (v *recordingVisitor) VisitEntryPoint(n ast.Node) error {
	v.entry = n.NodeID()
	return nil
}

func (v *recordingVisitor) VisitAny(n ast.Node) error {
	v.seen = append(v.seen, n.NodeID())
	return nil
}

func TestRunnerOutwardVisitsCallee(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "G.sol", SourceText: "contract G {}\n", RawAST: []byte(graphAST)},
	}, nil, nil)
	require.NoError(t, err)

	g := callgraph.Build(w)
	runner := callgraph.NewRunner(g, w)

	v := &recordingVisitor{}
	require.NoError(t, runner.Run(ast.NodeID(10), callgraph.Outward, v))

	require.Equal(t, ast.NodeID(10), v.entry)
	require.Equal(t, []ast.NodeID{30}, v.seen)
}

func TestRunnerInwardVisitsCaller(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "G.sol", SourceText: "contract G {}\n", RawAST: []byte(graphAST)},
	}, nil, nil)
	require.NoError(t, err)

	g := callgraph.Build(w)
	runner := callgraph.NewRunner(g, w)

	v := &recordingVisitor{}
	require.NoError(t, runner.Run(ast.NodeID(30), callgraph.Inward, v))

	require.Equal(t, []ast.NodeID{10}, v.seen)
}

func TestEntryPointsIncludesOnlyExternalAndPublic(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "G.sol", SourceText: "contract G {}\n", RawAST: []byte(graphAST)},
	}, nil, nil)
	require.NoError(t, err)

	entries := callgraph.EntryPoints(w)
	require.Len(t, entries, 1)
	require.Equal(t, "outer", entries[0].Name)
}
