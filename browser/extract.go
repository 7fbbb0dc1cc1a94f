// Package browser holds stateless extractors and navigational helpers
// (C4): one-shot queries over a subtree that don't need the full
// workspace index, e.g. "every Identifier under this function" or "the
// closest FunctionDefinition ancestor of this statement".
package browser

import "github.com/Cyfrin/aderyn-sub003/ast"

// extractVisitor collects every node matching a predicate rooted at a
// given start node, using ast.Walk rather than a bespoke recursive
// function — the same traversal every other part of the module uses.
type extractVisitor struct {
	ast.BaseVisitor
	match func(ast.Node) bool
	out   []ast.Node
}

func (v *extractVisitor) VisitImmediateChildren(_ ast.Node, children []ast.Node) error {
	for _, c := range children {
		if c != nil && v.match(c) {
			v.out = append(v.out, c)
		}
	}
	return nil
}

func extractAll(root ast.Node, match func(ast.Node) bool) []ast.Node {
	if root == nil {
		return nil
	}
	v := &extractVisitor{match: match}
	if match(root) {
		v.out = append(v.out, root)
	}
	_ = ast.Walk(v, root)
	return v.out
}

// ExtractIdentifiers returns every Identifier node under root, in
// traversal order.
func ExtractIdentifiers(root ast.Node) []*ast.Identifier {
	nodes := extractAll(root, func(n ast.Node) bool { _, ok := n.(*ast.Identifier); return ok })
	out := make([]*ast.Identifier, len(nodes))
	for i, n := range nodes {
		out[i] = n.(*ast.Identifier)
	}
	return out
}

// ExtractMemberAccesses returns every MemberAccess node under root.
func ExtractMemberAccesses(root ast.Node) []*ast.MemberAccess {
	nodes := extractAll(root, func(n ast.Node) bool { _, ok := n.(*ast.MemberAccess); return ok })
	out := make([]*ast.MemberAccess, len(nodes))
	for i, n := range nodes {
		out[i] = n.(*ast.MemberAccess)
	}
	return out
}

// ExtractFunctionCalls returns every FunctionCall node under root.
func ExtractFunctionCalls(root ast.Node) []*ast.FunctionCall {
	nodes := extractAll(root, func(n ast.Node) bool { _, ok := n.(*ast.FunctionCall); return ok })
	out := make([]*ast.FunctionCall, len(nodes))
	for i, n := range nodes {
		out[i] = n.(*ast.FunctionCall)
	}
	return out
}

// ExtractAssignments returns every Assignment node under root.
func ExtractAssignments(root ast.Node) []*ast.Assignment {
	nodes := extractAll(root, func(n ast.Node) bool { _, ok := n.(*ast.Assignment); return ok })
	out := make([]*ast.Assignment, len(nodes))
	for i, n := range nodes {
		out[i] = n.(*ast.Assignment)
	}
	return out
}

// ExtractBinaryOperations returns every BinaryOperation node under root.
func ExtractBinaryOperations(root ast.Node) []*ast.BinaryOperation {
	nodes := extractAll(root, func(n ast.Node) bool { _, ok := n.(*ast.BinaryOperation); return ok })
	out := make([]*ast.BinaryOperation, len(nodes))
	for i, n := range nodes {
		out[i] = n.(*ast.BinaryOperation)
	}
	return out
}

// ExtractEmitStatements returns every EmitStatement node under root.
func ExtractEmitStatements(root ast.Node) []*ast.EmitStatement {
	nodes := extractAll(root, func(n ast.Node) bool { _, ok := n.(*ast.EmitStatement); return ok })
	out := make([]*ast.EmitStatement, len(nodes))
	for i, n := range nodes {
		out[i] = n.(*ast.EmitStatement)
	}
	return out
}

// ExtractRevertStatements returns every RevertStatement node under root.
func ExtractRevertStatements(root ast.Node) []*ast.RevertStatement {
	nodes := extractAll(root, func(n ast.Node) bool { _, ok := n.(*ast.RevertStatement); return ok })
	out := make([]*ast.RevertStatement, len(nodes))
	for i, n := range nodes {
		out[i] = n.(*ast.RevertStatement)
	}
	return out
}

// ExtractForStatements returns every ForStatement node under root.
func ExtractForStatements(root ast.Node) []*ast.ForStatement {
	nodes := extractAll(root, func(n ast.Node) bool { _, ok := n.(*ast.ForStatement); return ok })
	out := make([]*ast.ForStatement, len(nodes))
	for i, n := range nodes {
		out[i] = n.(*ast.ForStatement)
	}
	return out
}

// ExtractVariableDeclarations returns every VariableDeclaration node
// under root.
func ExtractVariableDeclarations(root ast.Node) []*ast.VariableDeclaration {
	nodes := extractAll(root, func(n ast.Node) bool { _, ok := n.(*ast.VariableDeclaration); return ok })
	out := make([]*ast.VariableDeclaration, len(nodes))
	for i, n := range nodes {
		out[i] = n.(*ast.VariableDeclaration)
	}
	return out
}

// ExtractModifierInvocations returns every ModifierInvocation node under
// root.
func ExtractModifierInvocations(root ast.Node) []*ast.ModifierInvocation {
	nodes := extractAll(root, func(n ast.Node) bool { _, ok := n.(*ast.ModifierInvocation); return ok })
	out := make([]*ast.ModifierInvocation, len(nodes))
	for i, n := range nodes {
		out[i] = n.(*ast.ModifierInvocation)
	}
	return out
}

// IsExtCallish reports whether root is (or routes through) a pattern the
// compiler or a well-known library exposes for sending value or invoking
// another contract — any member access named call, delegatecall,
// staticcall, transfer, send or sendValue; the type of the accessed
// expression is not checked (§4 notes, grounded on the "is_extcallish"
// helper).
func IsExtCallish(root ast.Node) bool {
	for _, ma := range ExtractMemberAccesses(root) {
		switch ma.MemberName {
		case "call", "delegatecall", "staticcall":
			return true
		case "transfer", "send", "sendValue":
			return true
		}
	}
	return false
}
