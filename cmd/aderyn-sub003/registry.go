package main

import (
	"github.com/Cyfrin/aderyn-sub003/detect"
	"github.com/Cyfrin/aderyn-sub003/detect/high"
	"github.com/Cyfrin/aderyn-sub003/detect/low"
	"github.com/Cyfrin/aderyn-sub003/internal/config"
)

// allDetectors returns every detector this build ships with, minus
// whatever profile.Excludes names.
func allDetectors(profile config.DetectorProfile) []detect.Detector {
	all := []detect.Detector{
		&high.DelegateCallUncheckedAddressDetector{},
		&high.TxOriginUsedForAuthDetector{},
		&high.FunctionSelectorCollisionDetector{},
		&low.RequireRevertInLoopDetector{},
		&low.StateChangeWithoutEventDetector{},
		&low.UnspecificSolidityPragmaDetector{},
	}

	var out []detect.Detector
	for _, d := range all {
		if profile.Excludes(d.Name()) {
			continue
		}
		out = append(out, d)
	}
	return out
}
