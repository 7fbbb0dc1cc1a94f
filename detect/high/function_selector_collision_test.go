package high_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/detect/high"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

const selectorCollisionAST = `{
	"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "Dispatch.sol",
	"nodes": [{
		"id": 3, "src": "0:1:0", "nodeType": "ContractDefinition", "name": "Dispatch",
		"contractKind": "contract", "abstract": false, "fullyImplemented": true,
		"linearizedBaseContracts": [3],
		"nodes": [
			{
				"id": 10, "src": "24:26:0", "nodeType": "FunctionDefinition", "name": "gsf",
				"kind": "function", "visibility": "external", "stateMutability": "nonpayable",
				"virtual": false, "implemented": true, "scope": 3, "functionSelector": "42966c68",
				"parameters": {"id": 11, "src": "0:1:0", "nodeType": "ParameterList", "parameters": []}
			},
			{
				"id": 20, "src": "55:27:0", "nodeType": "FunctionDefinition", "name": "burn",
				"kind": "function", "visibility": "external", "stateMutability": "nonpayable",
				"virtual": false, "implemented": true, "scope": 3, "functionSelector": "42966c68",
				"parameters": {"id": 21, "src": "0:1:0", "nodeType": "ParameterList", "parameters": []}
			}
		]
	}]
}`

const selectorCollisionSource = `contract Dispatch {
    function gsf() external {}
    function burn() external {}
}
`

func TestFunctionSelectorCollisionDetector_FlagsSharedSelector(t *testing.T) {
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "Dispatch.sol", SourceText: selectorCollisionSource, RawAST: []byte(selectorCollisionAST)},
	}, nil, nil)
	require.NoError(t, err)

	d := &high.FunctionSelectorCollisionDetector{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, d.Instances(), 2)
}

func TestFunctionSelectorCollisionDetector_IgnoresUniqueSelectors(t *testing.T) {
	raw := `{
		"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "Dispatch.sol",
		"nodes": [{
			"id": 3, "src": "0:1:0", "nodeType": "ContractDefinition", "name": "Dispatch",
			"contractKind": "contract", "abstract": false, "fullyImplemented": true,
			"linearizedBaseContracts": [3],
			"nodes": [
				{
					"id": 10, "src": "0:1:0", "nodeType": "FunctionDefinition", "name": "gsf",
					"kind": "function", "visibility": "external", "stateMutability": "nonpayable",
					"virtual": false, "implemented": true, "scope": 3, "functionSelector": "aaaaaaaa",
					"parameters": {"id": 11, "src": "0:1:0", "nodeType": "ParameterList", "parameters": []}
				},
				{
					"id": 20, "src": "0:1:0", "nodeType": "FunctionDefinition", "name": "burn",
					"kind": "function", "visibility": "external", "stateMutability": "nonpayable",
					"virtual": false, "implemented": true, "scope": 3, "functionSelector": "bbbbbbbb",
					"parameters": {"id": 21, "src": "0:1:0", "nodeType": "ParameterList", "parameters": []}
				}
			]
		}]
	}`

	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "Dispatch.sol", SourceText: selectorCollisionSource, RawAST: []byte(raw)},
	}, nil, nil)
	require.NoError(t, err)

	d := &high.FunctionSelectorCollisionDetector{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	require.False(t, found)
}
