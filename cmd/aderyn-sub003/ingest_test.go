package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const ingestFixtureAST = `{
	"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "Foo.sol",
	"nodes": [{
		"id": 3, "src": "0:1:0", "nodeType": "ContractDefinition", "name": "Foo",
		"contractKind": "contract", "abstract": false, "fullyImplemented": true,
		"linearizedBaseContracts": [3], "nodes": []
	}]
}`

func TestLoadWorkspaceIngestsPairedSolAndJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Foo.sol"), []byte("contract Foo {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Foo.json"), []byte(ingestFixtureAST), 0o644))

	w, err := loadWorkspace(dir, logrus.NewEntry(logrus.New()))
	require.NoError(t, err)
	require.Len(t, w.SourceUnits, 1)
}

func TestLoadWorkspaceSkipsSolFilesWithoutAST(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Orphan.sol"), []byte("contract Orphan {}\n"), 0o644))

	_, err := loadWorkspace(dir, logrus.NewEntry(logrus.New()))
	require.Error(t, err)
}

func TestLoadWorkspaceErrorsOnEmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := loadWorkspace(dir, logrus.NewEntry(logrus.New()))
	require.Error(t, err)
}
