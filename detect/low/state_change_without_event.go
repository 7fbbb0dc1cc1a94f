package low

import (
	"github.com/Cyfrin/aderyn-sub003/browser"
	"github.com/Cyfrin/aderyn-sub003/detect"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

// StateChangeWithoutEventDetector flags a publicly reachable function
// that mutates a state variable but never emits an event anywhere it
// can reach — leaving off-chain indexers with no way to observe the
// change.
type StateChangeWithoutEventDetector struct {
	detect.Found
}

func (d *StateChangeWithoutEventDetector) Detect(w *workspace.Workspace) (bool, error) {
	for _, fn := range detect.GetImplementedExternalAndPublicFunctions(w) {
		if fn.IsConstructor() || fn.Body == nil {
			continue
		}

		emitsEvent := false
		mutatesState := false
		for _, n := range detect.ReachableCode(w, fn.Body) {
			if !emitsEvent && len(browser.ExtractEmitStatements(n)) > 0 {
				emitsEvent = true
			}
			if !mutatesState && detect.HasStateVariableMutation(n, w) {
				mutatesState = true
			}
		}

		if !emitsEvent && mutatesState {
			d.Capture(w, fn)
		}
	}
	return len(d.Instances()) > 0, nil
}

func (d *StateChangeWithoutEventDetector) Severity() detect.Severity { return detect.Low }

func (d *StateChangeWithoutEventDetector) Title() string { return "State Change Without Event" }

func (d *StateChangeWithoutEventDetector) Description() string {
	return "This function changes state variables but does not emit an event. Emit an event so off-chain indexers can track the change."
}

func (d *StateChangeWithoutEventDetector) Name() string { return "state-change-without-event" }
