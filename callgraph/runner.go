package callgraph

import "github.com/Cyfrin/aderyn-sub003/ast"

// Direction selects which adjacency view a Run call traverses:
// Outward follows "calls", Inward follows "called by" (the transposed
// graph), letting a detector ask either "what does this function reach"
// or "what can reach this function" (§4.3).
type Direction int

const (
	Outward Direction = iota
	Inward
)

// Visitor receives every node discovered during a Run, with VisitEntryPoint
// delivered once for the starting node before VisitAny starts firing for
// everything reachable from it — distinguishing "is this the node I asked
// about" from "is this something it calls" without two separate walks.
type Visitor interface {
	VisitEntryPoint(n ast.Node) error
	VisitAny(n ast.Node) error
}

// Runner performs bounded DFS traversals over a built Graph, resolving
// ids back to AST nodes through a Lookup so a Visitor always sees real
// nodes rather than bare ids.
type Runner struct {
	graph        *Graph
	transposed   *Graph
	lookup       Lookup
}

// NewRunner wraps a Graph for repeated Run calls. Transpose is computed
// lazily the first time an Inward run is requested.
func NewRunner(g *Graph, lookup Lookup) *Runner {
	return &Runner{graph: g, lookup: lookup}
}

// Run performs a DFS from entry, in the given direction, delivering every
// distinct node reached (including entry itself) to v at most once. The
// id ordering within a node's adjacency list is preserved, giving a
// deterministic visitation order across repeated runs on the same graph.
func (r *Runner) Run(entry ast.NodeID, dir Direction, v Visitor) error {
	adj := r.graph
	if dir == Inward {
		if r.transposed == nil {
			r.transposed = r.graph.Transpose()
		}
		adj = r.transposed
	}

	entryNode, ok := r.lookup.Node(entry)
	if !ok {
		return nil
	}
	if err := v.VisitEntryPoint(entryNode); err != nil {
		return err
	}

	visited := map[ast.NodeID]bool{entry: true}
	return dfsVisit(entry, adj, r.lookup, visited, v)
}

func dfsVisit(id ast.NodeID, g *Graph, lookup Lookup, visited map[ast.NodeID]bool, v Visitor) error {
	for _, next := range g.Successors(id) {
		if visited[next] {
			continue
		}
		visited[next] = true
		n, ok := lookup.Node(next)
		if !ok {
			continue
		}
		if err := v.VisitAny(n); err != nil {
			return err
		}
		if err := dfsVisit(next, g, lookup, visited, v); err != nil {
			return err
		}
	}
	return nil
}

// EntryPoints returns every implemented FunctionDefinition that is
// externally reachable — public or external visibility — which is how
// aderyn enumerates "entrypoints" for
// its per-function callgraph consumers (§4.3, §4.5 "entrypoints_with_callgraphs").
func EntryPoints(w Lookup) []*ast.FunctionDefinition {
	var out []*ast.FunctionDefinition
	for _, n := range w.NodesOfKind(ast.KindFunctionDefinition) {
		fd := n.(*ast.FunctionDefinition)
		if !fd.Implemented {
			continue
		}
		if fd.Visibility == ast.VisibilityPublic || fd.Visibility == ast.VisibilityExternal {
			out = append(out, fd)
		}
	}
	return out
}
