// Package callgraph builds the directed multigraph over
// FunctionDefinition/ModifierDefinition nodes that every reachability
// detector runs against (C5), and the bounded visitor runner that walks
// it from a chosen set of entry points (C7).
package callgraph

import (
	"sort"

	"github.com/Cyfrin/aderyn-sub003/ast"
	"github.com/Cyfrin/aderyn-sub003/browser"
)

// Lookup is the subset of workspace.Workspace the graph builder needs:
// resolve an id to a node, and enumerate function/modifier definitions.
type Lookup interface {
	Node(id ast.NodeID) (ast.Node, bool)
	NodesOfKind(kind ast.NodeKind) []ast.Node
}

// Graph is a deduped adjacency list over FunctionDefinition and
// ModifierDefinition node ids (§4.3). Edge direction is "caller calls
// callee"; Transpose gives the inward view used by entry-point discovery.
type Graph struct {
	adjacency map[ast.NodeID][]ast.NodeID
}

// Build walks every implemented function and every modifier definition
// via DFS over function calls and modifier invocations, exactly as the
// reference implementation's dfs_to_create_graph does: only identifier
// references the compiler actually resolved are followed, and a node
// already visited never gets walked twice.
func Build(w Lookup) *Graph {
	g := &Graph{adjacency: make(map[ast.NodeID][]ast.NodeID)}
	visited := make(map[ast.NodeID]bool)

	var roots []ast.NodeID
	for _, n := range w.NodesOfKind(ast.KindFunctionDefinition) {
		fd := n.(*ast.FunctionDefinition)
		if fd.Implemented {
			roots = append(roots, fd.NodeID())
		}
	}
	for _, n := range w.NodesOfKind(ast.KindModifierDefinition) {
		roots = append(roots, n.NodeID())
	}

	for _, id := range roots {
		dfsBuild(id, g, visited, w)
	}
	return g
}

func dfsBuild(id ast.NodeID, g *Graph, visited map[ast.NodeID]bool, w Lookup) {
	if visited[id] {
		return
	}
	visited[id] = true

	fromNode, ok := w.Node(id)
	if !ok {
		return
	}
	if fromNode.Kind() != ast.KindFunctionDefinition && fromNode.Kind() != ast.KindModifierDefinition {
		return
	}

	for _, call := range browser.ExtractFunctionCalls(fromNode) {
		ident, ok := call.Expr.(*ast.Identifier)
		if !ok || ident.ReferencedDeclaration == 0 {
			continue
		}
		if !isCallgraphNode(w, ident.ReferencedDeclaration) {
			// emit E(...) and struct constructors like Foo(...) also
			// resolve through an Identifier's ReferencedDeclaration, to
			// an Event/Struct node rather than a function — never an
			// edge this graph's invariant (every node is a function or
			// modifier definition) allows.
			continue
		}
		g.connect(id, ident.ReferencedDeclaration)
		dfsBuild(ident.ReferencedDeclaration, g, visited, w)
	}

	for _, mi := range browser.ExtractModifierInvocations(fromNode) {
		target := modifierTarget(mi)
		if target == 0 || !isCallgraphNode(w, target) {
			continue
		}
		g.connect(id, target)
		dfsBuild(target, g, visited, w)
	}
}

func isCallgraphNode(w Lookup, id ast.NodeID) bool {
	n, ok := w.Node(id)
	if !ok {
		return false
	}
	return n.Kind() == ast.KindFunctionDefinition || n.Kind() == ast.KindModifierDefinition
}

func modifierTarget(mi *ast.ModifierInvocation) ast.NodeID {
	switch t := mi.ModifierName.(type) {
	case *ast.Identifier:
		return t.ReferencedDeclaration
	case *ast.IdentifierPath:
		return t.ReferencedDeclaration
	}
	return 0
}

func (g *Graph) connect(from, to ast.NodeID) {
	for _, existing := range g.adjacency[from] {
		if existing == to {
			return
		}
	}
	g.adjacency[from] = append(g.adjacency[from], to)
}

// Successors returns the deduped, insertion-ordered callees of id.
func (g *Graph) Successors(id ast.NodeID) []ast.NodeID {
	return g.adjacency[id]
}

// Transpose returns the inward view of g: for every edge a->b in g, the
// result has an edge b->a. Used to find every entry point that can reach
// a given function (§4.3).
func (g *Graph) Transpose() *Graph {
	out := &Graph{adjacency: make(map[ast.NodeID][]ast.NodeID)}
	// deterministic regardless of map iteration order
	froms := make([]ast.NodeID, 0, len(g.adjacency))
	for from := range g.adjacency {
		froms = append(froms, from)
	}
	sort.Slice(froms, func(i, j int) bool { return froms[i] < froms[j] })
	for _, from := range froms {
		for _, to := range g.adjacency[from] {
			out.connect(to, from)
		}
	}
	return out
}

// Filter returns the subgraph of g restricted to edges whose endpoints
// both satisfy keep — used to carve the per-contract inward subgraphs
// §3.5 asks the workspace to hold, out of the whole-program inward view
// (§4.3.3).
func (g *Graph) Filter(keep func(ast.NodeID) bool) *Graph {
	out := &Graph{adjacency: make(map[ast.NodeID][]ast.NodeID)}
	froms := make([]ast.NodeID, 0, len(g.adjacency))
	for from := range g.adjacency {
		froms = append(froms, from)
	}
	sort.Slice(froms, func(i, j int) bool { return froms[i] < froms[j] })
	for _, from := range froms {
		if !keep(from) {
			continue
		}
		for _, to := range g.adjacency[from] {
			if keep(to) {
				out.connect(from, to)
			}
		}
	}
	return out
}
