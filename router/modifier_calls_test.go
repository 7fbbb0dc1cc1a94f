package router_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/ast"
	"github.com/Cyfrin/aderyn-sub003/router"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

const modifierOverrideAST = `{
	"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "M.sol",
	"nodes": [
		{
			"id": 3, "src": "0:1:0", "nodeType": "ContractDefinition", "name": "Base",
			"contractKind": "contract", "abstract": true, "fullyImplemented": true,
			"linearizedBaseContracts": [3],
			"nodes": [{
				"id": 10, "src": "0:1:0", "nodeType": "ModifierDefinition", "name": "onlyOwner",
				"virtual": true,
				"parameters": {"id": 11, "src": "0:1:0", "nodeType": "ParameterList", "parameters": []},
				"body": {"id": 12, "src": "0:1:0", "nodeType": "Block", "statements": []}
			}]
		},
		{
			"id": 50, "src": "0:1:0", "nodeType": "ContractDefinition", "name": "Derived",
			"contractKind": "contract", "abstract": false, "fullyImplemented": true,
			"linearizedBaseContracts": [50, 3],
			"nodes": [{
				"id": 60, "src": "0:1:0", "nodeType": "ModifierDefinition", "name": "onlyOwner",
				"virtual": false,
				"parameters": {"id": 61, "src": "0:1:0", "nodeType": "ParameterList", "parameters": []},
				"body": {"id": 62, "src": "0:1:0", "nodeType": "Block", "statements": []}
			}]
		}
	]
}`

func TestBuildModifierCallRouterResolvesOverride(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "M.sol", SourceText: "contract Base {}\ncontract Derived is Base {}\n", RawAST: []byte(modifierOverrideAST)},
	}, nil, nil)
	require.NoError(t, err)

	derived := w.NodesOfKind(ast.KindContractDefinition)[1].(*ast.ContractDefinition)
	require.Equal(t, "Derived", derived.Name)

	base := w.NodesOfKind(ast.KindContractDefinition)[0].(*ast.ContractDefinition)
	suspect := base.Members[0].(*ast.ModifierDefinition)

	r := router.BuildModifierCallRouter(w, derived)

	invocation := &ast.ModifierInvocation{ModifierName: &ast.Identifier{Name: "onlyOwner"}}
	resolved := r.ResolveModifierCall(w, derived, invocation, suspect)

	require.Equal(t, ast.NodeID(60), resolved.NodeID())
}

func TestResolveModifierCallReturnsSuspectForQualifiedInvocation(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "M.sol", SourceText: "contract Base {}\ncontract Derived is Base {}\n", RawAST: []byte(modifierOverrideAST)},
	}, nil, nil)
	require.NoError(t, err)

	derived := w.NodesOfKind(ast.KindContractDefinition)[1].(*ast.ContractDefinition)
	base := w.NodesOfKind(ast.KindContractDefinition)[0].(*ast.ContractDefinition)
	suspect := base.Members[0].(*ast.ModifierDefinition)

	r := router.BuildModifierCallRouter(w, derived)

	invocation := &ast.ModifierInvocation{ModifierName: &ast.IdentifierPath{Name: "Base.onlyOwner"}}
	resolved := r.ResolveModifierCall(w, derived, invocation, suspect)

	require.Equal(t, suspect, resolved)
}
