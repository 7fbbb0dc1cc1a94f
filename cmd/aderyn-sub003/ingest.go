package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Cyfrin/aderyn-sub003/workspace"
)

// loadWorkspace walks root for every *.sol file and its sibling *.json
// AST dump (the shape `solc --ast-compact-json` writes per source file),
// and ingests the pairs it finds into a workspace.Workspace. A .sol file
// with no matching .json is skipped — it was not part of the compiler
// run this tool consumes output from.
func loadWorkspace(root string, log *logrus.Entry) (*workspace.Workspace, error) {
	var sources []workspace.CompiledSource

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".sol") {
			return nil
		}
		astPath := strings.TrimSuffix(path, ".sol") + ".json"
		astBytes, err := os.ReadFile(astPath)
		if err != nil {
			log.WithField("file", path).Debug("no AST json next to source, skipping")
			return nil
		}
		srcBytes, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}
		sources = append(sources, workspace.CompiledSource{
			AbsolutePath: abs,
			SourceText:   string(srcBytes),
			RawAST:       astBytes,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no compiled Solidity sources found under %s (expected a .json AST dump next to each .sol file)", root)
	}

	return workspace.New(sources, nil, log)
}
