// Package router resolves dynamic-dispatch call targets at the contract
// level: which function a 4-byte selector reaches once a contract is
// deployed (ExternalCallRouter), and which modifier body a modifier
// invocation actually runs once overrides are taken into account
// (ModifierCallRouter). Both are built once per deployable contract from
// the compiler's own C3 linearization and never mutated afterward (§4.4).
package router

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Cyfrin/aderyn-sub003/ast"
)

// Lookup is the subset of workspace.Workspace the router needs.
type Lookup interface {
	Node(id ast.NodeID) (ast.Node, bool)
}

// IsDeployableContract mirrors aderyn's is_deployable_contract: interfaces
// and libraries are never dispatch targets, and an abstract contract has
// no complete selector table to route through.
func IsDeployableContract(c *ast.ContractDefinition) bool {
	return c.ContractKind == ast.ContractKindContract && !c.IsAbstract
}

// Linearize resolves a contract's compiler-provided
// LinearizedBaseContracts ids into ContractDefinition nodes, most-derived
// first — the module trusts the compiler's C3 output rather than
// recomputing it (§4.4 design notes).
func Linearize(w Lookup, c *ast.ContractDefinition) []*ast.ContractDefinition {
	out := make([]*ast.ContractDefinition, 0, len(c.LinearizedBaseContracts))
	for _, id := range c.LinearizedBaseContracts {
		n, ok := w.Node(id)
		if !ok {
			continue
		}
		cd, ok := n.(*ast.ContractDefinition)
		if !ok {
			continue
		}
		out = append(out, cd)
	}
	return out
}

// Selectorish derives a map key for a ModifierDefinition. Solidity
// modifiers carry no compiler-assigned 4-byte selector the way public
// functions do, so this is a human-readable signature string —
// "name(type,type)" — used purely to detect same-signature overrides
// across the inheritance chain, never exposed outside this package.
func Selectorish(m *ast.ModifierDefinition) string {
	sig := m.Name + "("
	if m.Parameters != nil {
		for i, p := range m.Parameters.Parameters {
			if i > 0 {
				sig += ","
			}
			sig += p.TypeString
		}
	}
	return sig + ")"
}

// ComputeSelector independently derives the 4-byte selector a public or
// external function would be assigned, the same way abigen and every
// other Solidity tool does: the first four bytes of the Keccak-256 hash
// of the function's canonical signature. Used to cross-check a
// compiler-reported FunctionSelector rather than to replace it — the
// compiler's own value in the AST is always preferred when present.
func ComputeSelector(fn *ast.FunctionDefinition) string {
	sig := fn.Name + "("
	if fn.Parameters != nil {
		for i, p := range fn.Parameters.Parameters {
			if i > 0 {
				sig += ","
			}
			sig += p.TypeString
		}
	}
	sig += ")"
	hash := crypto.Keccak256([]byte(sig))
	return hex.EncodeToString(hash[:4])
}
