// Package low holds detectors whose findings the suite reports at
// detect.Low severity.
package low

import (
	"github.com/Cyfrin/aderyn-sub003/browser"
	"github.com/Cyfrin/aderyn-sub003/detect"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

// RequireRevertInLoopDetector flags a loop body that can reach a
// require/revert, directly or through a function it calls: one bad
// iteration aborting the whole transaction is rarely what a batch
// operation wants.
type RequireRevertInLoopDetector struct {
	detect.Found
}

func (d *RequireRevertInLoopDetector) Detect(w *workspace.Workspace) (bool, error) {
	for _, loop := range detect.GetExploreCentersOfLoops(w) {
		hasRequireOrRevert := false
		hasRevertStatement := false
		for _, n := range detect.ReachableCode(w, loop) {
			for _, ident := range browser.ExtractIdentifiers(n) {
				if ident.Name == "revert" || ident.Name == "require" {
					hasRequireOrRevert = true
				}
			}
			if len(browser.ExtractRevertStatements(n)) > 0 {
				hasRevertStatement = true
			}
		}
		if hasRequireOrRevert || hasRevertStatement {
			d.Capture(w, loop)
		}
	}
	return len(d.Instances()) > 0, nil
}

func (d *RequireRevertInLoopDetector) Severity() detect.Severity { return detect.Low }

func (d *RequireRevertInLoopDetector) Title() string { return "Loop Contains `require`/`revert`" }

func (d *RequireRevertInLoopDetector) Description() string {
	return "Avoid `require`/`revert` statements in a loop because a single bad item can cause the whole transaction to fail. Prefer forgiving on failure and returning failed elements for the caller to handle after the loop."
}

func (d *RequireRevertInLoopDetector) Name() string { return "require-revert-in-loop" }
