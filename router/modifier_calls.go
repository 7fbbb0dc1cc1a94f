package router

import "github.com/Cyfrin/aderyn-sub003/ast"

// ModifierCallRouter maps a starting contract and a Selectorish string to
// the ModifierDefinition that a `_;`-chain actually runs for that
// contract, accounting for overrides introduced anywhere in the
// inheritance tree (mirrors the reference router's two-level structure,
// flattened here to one map keyed by (startingContract, selectorish)
// since each BuildModifierCallRouter call already fixes the base
// contract).
type ModifierCallRouter struct {
	// startingContract id -> selectorish -> modifier node id
	routes map[ast.NodeID]map[string]ast.NodeID
}

// BuildModifierCallRouter builds the router for every possible "starting
// point" in base's linearization: for a modifier invocation written in
// the Nth-linearized contract, only the (N..end) suffix of the
// linearization is eligible to supply the override that actually runs,
// since anything linearized before the invocation's own contract is more
// derived and would already have had a chance to override it.
func BuildModifierCallRouter(w Lookup, base *ast.ContractDefinition) *ModifierCallRouter {
	linearized := Linearize(w, base)
	routes := make(map[ast.NodeID]map[string]ast.NodeID, len(linearized))

	for i, starting := range linearized {
		table := map[string]ast.NodeID{}
		for _, c := range linearized[i:] {
			for _, m := range c.Members {
				md, ok := m.(*ast.ModifierDefinition)
				if !ok {
					continue
				}
				key := Selectorish(md)
				if _, exists := table[key]; !exists {
					table[key] = md.NodeID()
				}
			}
		}
		routes[starting.NodeID()] = table
	}
	return &ModifierCallRouter{routes: routes}
}

// ResolveModifierCall determines which ModifierDefinition a
// ModifierInvocation actually runs.
//
// Two shortcuts bypass the inheritance-tree lookup entirely:
//   - a modifier invoked inside a library body: libraries carry no
//     inheritance, so the statically resolved target can never be
//     overridden, and is returned as-is.
//   - a qualified invocation like `Base.onlyOwner()`: an IdentifierPath
//     names its target contract explicitly, so there is no override
//     ambiguity to resolve either.
//
// Otherwise the suspected target (the compiler's ReferencedDeclaration)
// is translated to a Selectorish key and looked up starting from the
// contract the invocation's enclosing function/modifier was itself
// linearized into, falling back to the suspect itself if nothing in that
// suffix of the linearization shares its signature.
func (r *ModifierCallRouter) ResolveModifierCall(
	w Lookup,
	enclosingContract *ast.ContractDefinition,
	invocation *ast.ModifierInvocation,
	suspect *ast.ModifierDefinition,
) *ast.ModifierDefinition {
	if enclosingContract.ContractKind == ast.ContractKindLibrary {
		return suspect
	}
	if _, qualified := invocation.ModifierName.(*ast.IdentifierPath); qualified {
		return suspect
	}

	table, ok := r.routes[enclosingContract.NodeID()]
	if !ok {
		return suspect
	}
	key := Selectorish(suspect)
	id, ok := table[key]
	if !ok {
		return suspect
	}
	n, ok := w.Node(id)
	if !ok {
		return suspect
	}
	md, ok := n.(*ast.ModifierDefinition)
	if !ok {
		return suspect
	}
	return md
}
