package low_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/detect/low"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

func pragmaWorkspace(t *testing.T, literals, contractKind string) *workspace.Workspace {
	t.Helper()
	raw := `{
		"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "P.sol",
		"nodes": [
			{"id": 2, "src": "0:1:0", "nodeType": "PragmaDirective", "literals": [` + literals + `]},
			{
				"id": 3, "src": "0:1:0", "nodeType": "ContractDefinition", "name": "P",
				"contractKind": "` + contractKind + `", "abstract": false, "fullyImplemented": true,
				"linearizedBaseContracts": [3], "nodes": []
			}
		]
	}`
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "P.sol", SourceText: "pragma solidity ^0.8.0;\ncontract P {}\n", RawAST: []byte(raw)},
	}, nil, nil)
	require.NoError(t, err)
	return w
}

func TestUnspecificSolidityPragmaDetector_FlagsCaret(t *testing.T) {
	w := pragmaWorkspace(t, `"solidity", "^", "0.8", ".0"`, "contract")

	d := &low.UnspecificSolidityPragmaDetector{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	require.True(t, found)
}

func TestUnspecificSolidityPragmaDetector_AllowsExactVersion(t *testing.T) {
	w := pragmaWorkspace(t, `"solidity", "0.8", ".19"`, "contract")

	d := &low.UnspecificSolidityPragmaDetector{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	require.False(t, found)
}

func TestUnspecificSolidityPragmaDetector_ExemptsLibraryFiles(t *testing.T) {
	w := pragmaWorkspace(t, `"solidity", "^", "0.8", ".0"`, "library")

	d := &low.UnspecificSolidityPragmaDetector{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	require.False(t, found)
}
