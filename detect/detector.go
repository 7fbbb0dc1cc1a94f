// Package detect defines the detector framework (C8): the interface
// every check implements, the capture helper every detector uses to
// record a finding, and the orchestrator that runs the whole suite over
// a workspace and assembles a deterministic report.
package detect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Cyfrin/aderyn-sub003/ast"
	"github.com/Cyfrin/aderyn-sub003/browser"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

// Severity is deliberately a two-value taxonomy (§5): aderyn's own
// "critical/medium" bands collapse findings that don't change how a
// reviewer acts on them, so this module keeps only the two that do.
type Severity string

const (
	High Severity = "High"
	Low  Severity = "Low"
)

// InstanceKey identifies one captured finding location: the file it's
// in, the 1-indexed line it starts on, and its raw compiler src string.
// Used as a BTreeMap-equivalent sort key — Go map iteration is
// unordered, so every place that walks a found-instances map sorts by
// this key first to get a deterministic report.
type InstanceKey struct {
	File string
	Line int
	Src  string
}

func (k InstanceKey) less(o InstanceKey) bool {
	if k.File != o.File {
		return k.File < o.File
	}
	if k.Line != o.Line {
		return k.Line < o.Line
	}
	return k.Src < o.Src
}

// Detector is the interface every check in detect/high and detect/low
// implements. Detect runs once per workspace and returns whether it
// found anything; Instances then exposes what it found, keyed so the
// orchestrator can sort and suppress independently of detector internals.
type Detector interface {
	Detect(w *workspace.Workspace) (bool, error)
	Severity() Severity
	Title() string
	Description() string
	Name() string
	Instances() map[InstanceKey]ast.NodeID
}

// Hinter is an optional extension: a detector that attaches a one-line
// explanation to some or all of its instances (e.g. which other function
// a colliding selector belongs to).
type Hinter interface {
	Hints() map[InstanceKey]string
}

// Found is embedded into every concrete detector to give it Capture,
// Instances and Hints for free, mirroring the `capture!` macro pattern:
// a detector never builds its found-instances map by hand, it only calls
// Capture at the point it recognizes a finding.
type Found struct {
	instances map[InstanceKey]ast.NodeID
	hints     map[InstanceKey]string
}

// Capture records n as a finding, deriving its InstanceKey from the
// workspace it was found in. An optional trailing hint is attached to
// that same key. Capturing the same key twice is harmless — the second
// call just overwrites the first with identical data.
func (f *Found) Capture(w *workspace.Workspace, n ast.Node, hint ...string) {
	if n == nil {
		return
	}
	key := keyFor(w, n)
	if f.instances == nil {
		f.instances = make(map[InstanceKey]ast.NodeID)
	}
	f.instances[key] = n.NodeID()
	if len(hint) > 0 {
		if f.hints == nil {
			f.hints = make(map[InstanceKey]string)
		}
		f.hints[key] = hint[0]
	}
}

// Instances returns every finding captured so far.
func (f *Found) Instances() map[InstanceKey]ast.NodeID { return f.instances }

// Hints returns the hint text attached to captured findings, if any.
func (f *Found) Hints() map[InstanceKey]string { return f.hints }

// keyFor locates n's enclosing file and line. Line numbers are 1-indexed
// and derived by counting newlines in the source text up to the node's
// src offset, the same way the reference implementation's capture macro
// turns a byte offset into a human-facing line number.
func keyFor(w *workspace.Workspace, n ast.Node) InstanceKey {
	path := "<unknown>"
	if su, ok := browser.ClosestAncestorOfKind(w, n, ast.KindSourceUnit); ok {
		path = su.(*ast.SourceUnit).AbsolutePath
	} else if su, ok := n.(*ast.SourceUnit); ok {
		path = su.AbsolutePath
	}

	src := n.SrcString()
	loc := ast.ParseSourceLocation(src)
	line := 1
	if text, ok := w.SourceUnitFor(path); ok && loc.Valid {
		line = 1 + strings.Count(text.SourceText[:clamp(loc.Start, len(text.SourceText))], "\n")
	}
	return InstanceKey{File: path, Line: line, Src: src}
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// Instance is one finding in a fully assembled Report: a detector's
// metadata paired with one of its captured locations.
type Instance struct {
	DetectorName string
	Severity     Severity
	Title        string
	Description  string
	File         string
	Line         int
	Src          string
	NodeID       ast.NodeID
	Hint         string
}

// Report is the deterministic, ready-to-render output of a full
// detection run (§5): every surviving instance, sorted first by
// severity then by file, line and detector name, plus run-level counters.
type Report struct {
	Instances []Instance
	Suppressed int
	Skipped    []SkippedDetector
}

// SkippedDetector records a detector that errored mid-run. One
// detector's bug never aborts the rest of the suite (§5.2): its error is
// recorded here and every other detector still runs to completion.
type SkippedDetector struct {
	Name string
	Err  error
}

// Run executes every detector against w, sequentially and with one
// failure isolated per detector, then assembles a deterministic Report.
// A finding is dropped (and Suppressed incremented) when
// workspace.IsIgnored reports the line is suppressed for this detector
// name or unqualified for all detectors (§6).
func Run(w *workspace.Workspace, detectors []Detector) *Report {
	report := &Report{}

	for _, d := range detectors {
		found, err := safeDetect(d, w)
		if err != nil {
			report.Skipped = append(report.Skipped, SkippedDetector{Name: d.Name(), Err: err})
			continue
		}
		if !found {
			continue
		}

		var hinter Hinter
		if h, ok := d.(Hinter); ok {
			hinter = h
		}

		keys := make([]InstanceKey, 0, len(d.Instances()))
		for k := range d.Instances() {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

		for _, k := range keys {
			if !w.IsIncluded(k.File) {
				continue
			}
			if qualifier, ignored := w.IsIgnored(k.File, k.Line); ignored {
				if qualifier == "" || strings.EqualFold(qualifier, d.Name()) || containsName(qualifier, d.Name()) {
					report.Suppressed++
					continue
				}
			}
			inst := Instance{
				DetectorName: d.Name(),
				Severity:     d.Severity(),
				Title:        d.Title(),
				Description:  d.Description(),
				File:         k.File,
				Line:         k.Line,
				Src:          k.Src,
				NodeID:       d.Instances()[k],
			}
			if hinter != nil {
				inst.Hint = hinter.Hints()[k]
			}
			report.Instances = append(report.Instances, inst)
		}
	}

	sort.SliceStable(report.Instances, func(i, j int) bool {
		a, b := report.Instances[i], report.Instances[j]
		if a.Severity != b.Severity {
			return a.Severity == High
		}
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.DetectorName < b.DetectorName
	})

	return report
}

func containsName(qualifier, name string) bool {
	for _, part := range strings.Split(qualifier, ",") {
		if strings.EqualFold(strings.TrimSpace(part), name) {
			return true
		}
	}
	return false
}

func safeDetect(d Detector, w *workspace.Workspace) (found bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("detector %s panicked: %v", d.Name(), r)
		}
	}()
	return d.Detect(w)
}
