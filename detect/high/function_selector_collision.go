package high

import (
	"fmt"
	"strings"

	"github.com/Cyfrin/aderyn-sub003/ast"
	"github.com/Cyfrin/aderyn-sub003/detect"
	"github.com/Cyfrin/aderyn-sub003/router"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

// FunctionSelectorCollisionDetector flags every function that shares its
// 4-byte selector with a differently-named function anywhere in scope —
// a clash a proxy dispatcher or an inheritance hierarchy could route to
// the wrong implementation.
type FunctionSelectorCollisionDetector struct {
	detect.Found
}

func (d *FunctionSelectorCollisionDetector) Detect(w *workspace.Workspace) (bool, error) {
	// selector -> name -> function ids
	selectors := map[string]map[string][]*ast.FunctionDefinition{}

	for _, n := range w.NodesOfKind(ast.KindFunctionDefinition) {
		fn := n.(*ast.FunctionDefinition)
		if fn.FunctionSelector == "" {
			continue
		}
		byName := selectors[fn.FunctionSelector]
		if byName == nil {
			byName = map[string][]*ast.FunctionDefinition{}
			selectors[fn.FunctionSelector] = byName
		}
		byName[fn.Name] = append(byName[fn.Name], fn)
	}

	for _, byName := range selectors {
		if len(byName) < 2 {
			continue
		}
		for name, fns := range byName {
			var others []string
			for other := range byName {
				if other != name {
					others = append(others, other)
				}
			}
			base := "collides with the following function name(s) in scope: " + strings.Join(others, ", ")
			for _, fn := range fns {
				hint := base
				if computed := router.ComputeSelector(fn); computed != fn.FunctionSelector {
					hint += fmt.Sprintf(" (independently computed selector 0x%s disagrees with the compiler's 0x%s)", computed, fn.FunctionSelector)
				}
				d.Capture(w, fn, hint)
			}
		}
	}

	return len(d.Instances()) > 0, nil
}

func (d *FunctionSelectorCollisionDetector) Severity() detect.Severity { return detect.High }

func (d *FunctionSelectorCollisionDetector) Title() string { return "Function Selector Collision" }

func (d *FunctionSelectorCollisionDetector) Description() string {
	return "Function selector collides with other functions. This may cause the Solidity function dispatcher to invoke the wrong function if the functions end up in the same contract through an inheritance hierarchy. Rename this function or change its parameters."
}

func (d *FunctionSelectorCollisionDetector) Name() string { return "function-selector-collision" }
