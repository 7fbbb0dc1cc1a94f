package detect

import (
	"github.com/Cyfrin/aderyn-sub003/ast"
	"github.com/Cyfrin/aderyn-sub003/browser"
	"github.com/Cyfrin/aderyn-sub003/callgraph"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

// GetImplementedExternalAndPublicFunctions enumerates the functions a
// reachability detector treats as callgraph entry points: implemented,
// and reachable from outside the contract.
func GetImplementedExternalAndPublicFunctions(w *workspace.Workspace) []*ast.FunctionDefinition {
	return callgraph.EntryPoints(w)
}

// GetExploreCentersOfLoops returns every For/While/DoWhile node in the
// workspace — the starting point for any detector that follows the calls
// made from a loop body to see what it reaches (loop_explore_centers in
// the reference detector).
func GetExploreCentersOfLoops(w *workspace.Workspace) []ast.Node {
	var out []ast.Node
	out = append(out, w.NodesOfKind(ast.KindForStatement)...)
	out = append(out, w.NodesOfKind(ast.KindWhileStatement)...)
	out = append(out, w.NodesOfKind(ast.KindDoWhileStatement)...)
	return out
}

// HasBinaryChecksOnSomeAddress reports whether root contains any
// equality/inequality comparison at all. The reference implementation
// narrows this to comparisons specifically against an address-typed
// operand; this module doesn't carry resolved type descriptions on
// every expression node (only VariableDeclaration keeps one), so this is
// a deliberately conservative approximation — any `==`/`!=` comparison
// reachable from the callgraph counts as "the address was checked",
// which only ever under-reports a delegatecall-without-checks finding,
// never over-reports one.
func HasBinaryChecksOnSomeAddress(root ast.Node) bool {
	for _, bo := range browser.ExtractBinaryOperations(root) {
		if bo.Operator == "==" || bo.Operator == "!=" {
			return true
		}
	}
	return false
}

// HasDelegateCallsOnNonStateVariables reports whether root contains a
// `.delegatecall(...)` call whose target expression does not resolve to
// a state variable — the shape flagged by
// DelegateCallUncheckedAddressDetector, since a delegatecall target
// pinned to a state variable is at least subject to whatever access
// control guards writes to that variable.
func HasDelegateCallsOnNonStateVariables(root ast.Node, w *workspace.Workspace) bool {
	for _, call := range browser.ExtractFunctionCalls(root) {
		ma, ok := call.Expr.(*ast.MemberAccess)
		if !ok || ma.MemberName != "delegatecall" {
			continue
		}
		if isStateVariableTarget(ma.Expr, w) {
			continue
		}
		return true
	}
	return false
}

// ReachableCode returns root plus the body of every function and
// modifier transitively reachable from it, deduped. This is the
// traversal every callgraph-based detector below runs its pattern
// search over: scoping a search to "this loop, or anything it calls"
// (rather than "everything in the enclosing function") is what keeps a
// require/revert elsewhere in the same function from producing an
// unrelated finding.
//
// The first hop is scoped strictly to what's literally written inside
// root, so a search seeded from a loop body doesn't pull in sibling
// statements from the rest of the enclosing function. Every call or
// modifier invocation found there hands off to the workspace's already
// built whole-program callgraph.Graph, walked through a callgraph.Runner
// — the same graph GetImplementedExternalAndPublicFunctions' callers
// walk, not a second, parallel reachability mechanism. A modifier
// invocation is resolved through the enclosing contract's
// router.ModifierCallRouter before the handoff, so an override
// introduced by a derived contract is what actually gets walked rather
// than the compiler's unresolved suspect (§4.4).
func ReachableCode(w *workspace.Workspace, root ast.Node) []ast.Node {
	var out []ast.Node
	visited := map[ast.NodeID]bool{}
	if root != nil && root.HasID() {
		visited[root.NodeID()] = true
	}

	c := &reachCollector{w: w, visited: visited, out: &out}
	c.seedFrom(root)
	return out
}

// reachCollector implements callgraph.Visitor so the same node it
// records for a direct, locally-found call target is also where every
// node the Runner discovers downstream of it lands.
type reachCollector struct {
	w       *workspace.Workspace
	visited map[ast.NodeID]bool
	out     *[]ast.Node
}

func (c *reachCollector) seedFrom(n ast.Node) {
	if n == nil {
		return
	}
	*c.out = append(*c.out, n)

	for _, call := range browser.ExtractFunctionCalls(n) {
		ident, ok := call.Expr.(*ast.Identifier)
		if !ok || ident.ReferencedDeclaration == 0 {
			continue
		}
		target, ok := c.w.Node(ident.ReferencedDeclaration)
		if !ok {
			continue
		}
		if _, ok := target.(*ast.FunctionDefinition); !ok {
			continue
		}
		c.expand(ident.ReferencedDeclaration)
	}

	for _, mi := range browser.ExtractModifierInvocations(n) {
		c.seedModifier(n, mi)
	}
}

func (c *reachCollector) seedModifier(n ast.Node, mi *ast.ModifierInvocation) {
	var suspectID ast.NodeID
	switch t := mi.ModifierName.(type) {
	case *ast.Identifier:
		suspectID = t.ReferencedDeclaration
	case *ast.IdentifierPath:
		suspectID = t.ReferencedDeclaration
	}
	if suspectID == 0 {
		return
	}
	target, ok := c.w.Node(suspectID)
	if !ok {
		return
	}
	suspect, ok := target.(*ast.ModifierDefinition)
	if !ok {
		return
	}

	resolved := suspect
	if contract := enclosingContract(c.w, n); contract != nil {
		if mr := c.w.ModifierCallRouter(contract); mr != nil {
			resolved = mr.ResolveModifierCall(c.w, contract, mi, suspect)
		}
	}
	c.expand(resolved.NodeID())
}

// expand walks everything transitively reachable from id through the
// workspace's whole-program call graph.
func (c *reachCollector) expand(id ast.NodeID) {
	if c.visited[id] {
		return
	}
	runner := callgraph.NewRunner(c.w.CallGraph(), c.w)
	_ = runner.Run(id, callgraph.Outward, c)
}

func (c *reachCollector) VisitEntryPoint(n ast.Node) error { return c.visit(n) }
func (c *reachCollector) VisitAny(n ast.Node) error        { return c.visit(n) }

func (c *reachCollector) visit(n ast.Node) error {
	if n == nil || !n.HasID() || c.visited[n.NodeID()] {
		return nil
	}
	c.visited[n.NodeID()] = true
	switch fn := n.(type) {
	case *ast.FunctionDefinition:
		if fn.Body != nil {
			*c.out = append(*c.out, fn.Body)
		}
	case *ast.ModifierDefinition:
		if fn.Body != nil {
			*c.out = append(*c.out, fn.Body)
		}
	}
	return nil
}

// enclosingContract walks n's parent chain up to the ContractDefinition
// it's declared within, if any.
func enclosingContract(w *workspace.Workspace, n ast.Node) *ast.ContractDefinition {
	for cur := n; cur != nil; {
		p, ok := w.Parent(cur)
		if !ok {
			return nil
		}
		if c, ok := p.(*ast.ContractDefinition); ok {
			return c
		}
		cur = p
	}
	return nil
}

// HasStateVariableMutation reports whether root assigns to an expression
// rooted at a state variable — the approximation of the reference
// implementation's state_variables_have_been_manipulated check. Only
// Assignment nodes are inspected: `++`/`--` and `delete` applied to a
// state variable are not counted as mutations.
func HasStateVariableMutation(root ast.Node, w *workspace.Workspace) bool {
	for _, asg := range browser.ExtractAssignments(root) {
		if mutatesStateVariable(asg.LeftHandSide, w) {
			return true
		}
	}
	return false
}

func mutatesStateVariable(expr ast.Expression, w *workspace.Workspace) bool {
	switch e := expr.(type) {
	case *ast.Identifier:
		return isStateVariableTarget(e, w)
	case *ast.MemberAccess:
		return mutatesStateVariable(e.Expr, w)
	case *ast.IndexAccess:
		return mutatesStateVariable(e.Base, w)
	case *ast.TupleExpression:
		for _, c := range e.Components {
			if c != nil && mutatesStateVariable(c, w) {
				return true
			}
		}
	}
	return false
}

func isStateVariableTarget(expr ast.Expression, w *workspace.Workspace) bool {
	ident, ok := expr.(*ast.Identifier)
	if !ok {
		return false
	}
	n, ok := w.Node(ident.ReferencedDeclaration)
	if !ok {
		return false
	}
	vd, ok := n.(*ast.VariableDeclaration)
	return ok && vd.StateVariable
}
