package browser

import "github.com/Cyfrin/aderyn-sub003/ast"

// ParentLookup is the minimum a navigational helper needs from a
// workspace: the ability to walk upward from a node. workspace.Workspace
// satisfies this; kept as an interface here so browser never imports
// workspace and the two packages stay a one-way dependency.
type ParentLookup interface {
	Parent(n ast.Node) (ast.Node, bool)
}

// ClosestAncestorOfKind walks up from n until it finds an ancestor of the
// given kind, or returns false if the root is reached first. This is the
// Go analog of aderyn's generic `closest_ancestor_of_type` helper,
// parameterized by NodeKind instead of a Rust type argument.
func ClosestAncestorOfKind(pl ParentLookup, n ast.Node, kind ast.NodeKind) (ast.Node, bool) {
	cur := n
	for {
		p, ok := pl.Parent(cur)
		if !ok {
			return nil, false
		}
		if p.Kind() == kind {
			return p, true
		}
		cur = p
	}
}

// EnclosingFunction returns the FunctionDefinition containing n, if any.
func EnclosingFunction(pl ParentLookup, n ast.Node) (*ast.FunctionDefinition, bool) {
	a, ok := ClosestAncestorOfKind(pl, n, ast.KindFunctionDefinition)
	if !ok {
		return nil, false
	}
	return a.(*ast.FunctionDefinition), true
}

// EnclosingModifier returns the ModifierDefinition containing n, if any.
func EnclosingModifier(pl ParentLookup, n ast.Node) (*ast.ModifierDefinition, bool) {
	a, ok := ClosestAncestorOfKind(pl, n, ast.KindModifierDefinition)
	if !ok {
		return nil, false
	}
	return a.(*ast.ModifierDefinition), true
}

// EnclosingContract returns the ContractDefinition containing n, if any.
func EnclosingContract(pl ParentLookup, n ast.Node) (*ast.ContractDefinition, bool) {
	a, ok := ClosestAncestorOfKind(pl, n, ast.KindContractDefinition)
	if !ok {
		return nil, false
	}
	return a.(*ast.ContractDefinition), true
}

// EnclosingLoop returns the nearest For/While/DoWhile ancestor of n.
func EnclosingLoop(pl ParentLookup, n ast.Node) (ast.Node, bool) {
	cur := n
	for {
		p, ok := pl.Parent(cur)
		if !ok {
			return nil, false
		}
		switch p.Kind() {
		case ast.KindForStatement, ast.KindWhileStatement, ast.KindDoWhileStatement:
			return p, true
		}
		cur = p
	}
}
