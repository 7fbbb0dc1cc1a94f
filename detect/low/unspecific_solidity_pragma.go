package low

import (
	"strings"

	"github.com/Cyfrin/aderyn-sub003/ast"
	"github.com/Cyfrin/aderyn-sub003/browser"
	"github.com/Cyfrin/aderyn-sub003/detect"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

// UnspecificSolidityPragmaDetector flags a `pragma solidity` directive
// that pins a version range (`^`, `>`, `<`) rather than one exact
// version. A source unit that declares any library is exempt: libraries
// are meant to be imported across compiler versions and have no storage
// layout to protect from drift.
type UnspecificSolidityPragmaDetector struct {
	detect.Found
}

func (d *UnspecificSolidityPragmaDetector) Detect(w *workspace.Workspace) (bool, error) {
	for _, n := range w.NodesOfKind(ast.KindPragmaDirective) {
		pragma := n.(*ast.PragmaDirective)

		su, ok := browser.ClosestAncestorOfKind(w, pragma, ast.KindSourceUnit)
		if !ok {
			continue
		}
		hasLibrary := false
		for _, c := range su.(*ast.SourceUnit).Nodes {
			if cd, ok := c.(*ast.ContractDefinition); ok && cd.ContractKind == ast.ContractKindLibrary {
				hasLibrary = true
				break
			}
		}
		if hasLibrary {
			continue
		}

		for _, lit := range pragma.Literals {
			if strings.ContainsAny(lit, "^><") {
				d.Capture(w, pragma)
				break
			}
		}
	}
	return len(d.Instances()) > 0, nil
}

func (d *UnspecificSolidityPragmaDetector) Severity() detect.Severity { return detect.Low }

func (d *UnspecificSolidityPragmaDetector) Title() string { return "Unspecific Solidity Pragma" }

func (d *UnspecificSolidityPragmaDetector) Description() string {
	return "Consider using a specific version of Solidity in your contracts instead of a wide version range. Instead of `pragma solidity ^0.8.0;`, use `pragma solidity 0.8.0;`."
}

func (d *UnspecificSolidityPragmaDetector) Name() string { return "unspecific-solidity-pragma" }
