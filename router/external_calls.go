package router

import "github.com/Cyfrin/aderyn-sub003/ast"

// ECDestKind classifies what a resolved external call selector actually
// reaches once a contract is deployed (mirrors the reference router's
// ECDest enum).
type ECDestKind int

const (
	// PseudoExtFn is a compiler-synthesized getter for a public state
	// variable — there is no FunctionDefinition node, only the
	// VariableDeclaration the getter was generated from.
	PseudoExtFn ECDestKind = iota
	PublicFn
	RealExtFn
	Receive
	Fallback
)

// ECDest is one resolved entry of an ExternalCallRouter: either a real
// FunctionDefinition or, for a public-state-var getter, the
// VariableDeclaration it was synthesized from.
type ECDest struct {
	Kind     ECDestKind
	Function *ast.FunctionDefinition
	Variable *ast.VariableDeclaration
}

const (
	fallbackKey = "FALLBACK"
	receiveKey  = "RECEIVE"
)

// ExternalCallRouter maps a 4-byte selector (or the literal FALLBACK/
// RECEIVE keys) to the member that selector dispatches to, for one
// deployable contract.
type ExternalCallRouter struct {
	routes map[string]ECDest
}

// BuildExternalCallRouter fills the selector table for one deployable
// contract by walking its C3 linearization most-derived-first and taking
// the first writer per selector — matching override resolution, since a
// derived contract's override always linearizes before its base.
//
// If any candidate member is missing its compiler-assigned
// FunctionSelector, the entire table for this contract is returned empty
// rather than partially filled: a selector clash the compiler itself
// couldn't resolve makes every other entry just as untrustworthy.
func BuildExternalCallRouter(w Lookup, c *ast.ContractDefinition) *ExternalCallRouter {
	empty := &ExternalCallRouter{routes: map[string]ECDest{}}
	if !IsDeployableContract(c) {
		return empty
	}

	routes := map[string]ECDest{}
	for _, base := range Linearize(w, c) {
		for _, m := range base.Members {
			switch member := m.(type) {
			case *ast.FunctionDefinition:
				switch member.FunctionKind {
				case ast.FunctionKindReceive:
					if _, exists := routes[receiveKey]; !exists {
						routes[receiveKey] = ECDest{Kind: Receive, Function: member}
					}
				case ast.FunctionKindFallback:
					if _, exists := routes[fallbackKey]; !exists {
						routes[fallbackKey] = ECDest{Kind: Fallback, Function: member}
					}
				case ast.FunctionKindFunction:
					if member.Visibility != ast.VisibilityPublic && member.Visibility != ast.VisibilityExternal {
						continue
					}
					if member.FunctionSelector == "" {
						return empty
					}
					if _, exists := routes[member.FunctionSelector]; !exists {
						routes[member.FunctionSelector] = ECDest{Kind: PublicFn, Function: member}
					}
				}
			case *ast.VariableDeclaration:
				if !member.StateVariable || member.Visibility != ast.VisibilityPublic {
					continue
				}
				if member.FunctionSelector == "" {
					return empty
				}
				if _, exists := routes[member.FunctionSelector]; !exists {
					routes[member.FunctionSelector] = ECDest{Kind: PseudoExtFn, Variable: member}
				}
			}
		}
	}
	return &ExternalCallRouter{routes: routes}
}

// ResolveExternalCall looks up the destination of an external FunctionCall
// by the selector of its suspected target function. Internal calls and
// calls through non-deployable base contracts are not this router's
// concern and are skipped by the caller before this is reached.
//
// An unmatched selector falls back to the contract's fallback function,
// never its receive function: a real call carries calldata, which the EVM
// only ever routes to receive when that calldata is empty, and a call
// reaching this far already resolved a non-empty selector.
func (r *ExternalCallRouter) ResolveExternalCall(selector string) (ECDest, bool) {
	if d, ok := r.routes[selector]; ok {
		return d, true
	}
	if d, ok := r.routes[fallbackKey]; ok {
		return d, true
	}
	return ECDest{}, false
}

// ResolveReceive looks up the contract's receive function directly, for
// the zero-calldata send/transfer call shape.
func (r *ExternalCallRouter) ResolveReceive() (ECDest, bool) {
	d, ok := r.routes[receiveKey]
	return d, ok
}
