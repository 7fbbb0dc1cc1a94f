// Package high holds detectors whose findings the suite reports at
// detect.High severity.
package high

import (
	"github.com/Cyfrin/aderyn-sub003/detect"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

// DelegateCallUncheckedAddressDetector flags a function that performs a
// delegatecall on an address other than a state variable, without ever
// checking any address on the way there.
type DelegateCallUncheckedAddressDetector struct {
	detect.Found
}

func (d *DelegateCallUncheckedAddressDetector) Detect(w *workspace.Workspace) (bool, error) {
	for _, fn := range detect.GetImplementedExternalAndPublicFunctions(w) {
		if fn.Body == nil {
			continue
		}
		hasChecks := false
		hasUncheckedDelegateCall := false
		for _, n := range detect.ReachableCode(w, fn.Body) {
			if !hasChecks && detect.HasBinaryChecksOnSomeAddress(n) {
				hasChecks = true
			}
			if !hasUncheckedDelegateCall && detect.HasDelegateCallsOnNonStateVariables(n, w) {
				hasUncheckedDelegateCall = true
			}
		}
		if hasUncheckedDelegateCall && !hasChecks {
			d.Capture(w, fn)
		}
	}
	return len(d.Instances()) > 0, nil
}

func (d *DelegateCallUncheckedAddressDetector) Severity() detect.Severity { return detect.High }

func (d *DelegateCallUncheckedAddressDetector) Title() string {
	return "`delegatecall` to an Arbitrary Address"
}

func (d *DelegateCallUncheckedAddressDetector) Description() string {
	return "Making a `delegatecall` to an arbitrary address without any checks is dangerous. Consider adding requirements on the target address."
}

func (d *DelegateCallUncheckedAddressDetector) Name() string {
	return "delegate-call-unchecked-address"
}
