// Package report assembles a detect.Report into the shapes a human or a
// downstream tool consumes: a Markdown summary, a JSON document, or a
// SARIF log. Every serializer here is a pure function of a Summary —
// nothing in this package touches a workspace or runs a detector.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Cyfrin/aderyn-sub003/detect"
	"github.com/Cyfrin/aderyn-sub003/workspace"
	"github.com/google/uuid"
)

// FileSummary is one row of the per-file index named in the core
// specification's report shape: how many lines the file has, and how
// many of each severity were found in it.
type FileSummary struct {
	Path       string             `json:"path"`
	SLOC       workspace.SLOCStats `json:"sloc"`
	HighIssues int                `json:"high_issues"`
	LowIssues  int                `json:"low_issues"`
}

// Summary is the complete, ready-to-serialize output of one run: a
// detect.Report plus the run-level bookkeeping (id, per-file index,
// detector inventory) the distilled report shape names but detect.Report
// itself doesn't carry, since detect has no reason to know about files
// it didn't find anything in.
type Summary struct {
	RunID            string
	HighIssues       int
	LowIssues        int
	FilesSummary     []FileSummary
	DetectorsUsed    []string
	DetectorsSkipped []detect.SkippedDetector
	Report           *detect.Report
}

// Build assembles a Summary from a finished detect.Report, the workspace
// it ran over, and the full set of detectors that were run (so a
// detector that found nothing still appears in detectors_used).
func Build(w *workspace.Workspace, r *detect.Report, detectors []detect.Detector) *Summary {
	s := &Summary{
		RunID:            uuid.NewString(),
		DetectorsSkipped: r.Skipped,
		Report:           r,
	}

	byFile := make(map[string]*FileSummary)
	var paths []string
	for _, su := range w.SourceUnits {
		if !w.IsIncluded(su.AbsolutePath) {
			continue
		}
		byFile[su.AbsolutePath] = &FileSummary{Path: su.AbsolutePath, SLOC: w.SLOC(su.AbsolutePath)}
		paths = append(paths, su.AbsolutePath)
	}

	for _, inst := range r.Instances {
		switch inst.Severity {
		case detect.High:
			s.HighIssues++
		case detect.Low:
			s.LowIssues++
		}
		fs, ok := byFile[inst.File]
		if !ok {
			fs = &FileSummary{Path: inst.File}
			byFile[inst.File] = fs
			paths = append(paths, inst.File)
		}
		switch inst.Severity {
		case detect.High:
			fs.HighIssues++
		case detect.Low:
			fs.LowIssues++
		}
	}

	sort.Strings(paths)
	for _, p := range paths {
		s.FilesSummary = append(s.FilesSummary, *byFile[p])
	}

	for _, d := range detectors {
		s.DetectorsUsed = append(s.DetectorsUsed, d.Name())
	}
	sort.Strings(s.DetectorsUsed)

	return s
}

// jsonDoc is the wire shape of ToJSON's output — a flat, stable set of
// field names a downstream tool can depend on independent of this
// package's internal Summary layout.
type jsonDoc struct {
	RunID            string               `json:"run_id"`
	HighIssues       int                  `json:"high_issues"`
	LowIssues        int                  `json:"low_issues"`
	FilesSummary     []FileSummary        `json:"files_summary"`
	DetectorsUsed    []string             `json:"detectors_used"`
	DetectorsSkipped []jsonSkippedDetector `json:"detectors_skipped"`
	Issues           []jsonInstance       `json:"issues"`
}

type jsonSkippedDetector struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

type jsonInstance struct {
	Detector    string `json:"detector"`
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	File        string `json:"file"`
	Line        int    `json:"line"`
	Hint        string `json:"hint,omitempty"`
}

// ToJSON renders s as the JSON document described in the report section:
// run id, per-file index, detector inventory, and every surviving
// instance, in the same order detect.Run already sorted them into.
func (s *Summary) ToJSON() ([]byte, error) {
	doc := jsonDoc{
		RunID:         s.RunID,
		HighIssues:    s.HighIssues,
		LowIssues:     s.LowIssues,
		FilesSummary:  s.FilesSummary,
		DetectorsUsed: s.DetectorsUsed,
	}
	for _, sk := range s.DetectorsSkipped {
		doc.DetectorsSkipped = append(doc.DetectorsSkipped, jsonSkippedDetector{Name: sk.Name, Error: sk.Err.Error()})
	}
	for _, inst := range s.Report.Instances {
		doc.Issues = append(doc.Issues, jsonInstance{
			Detector:    inst.DetectorName,
			Severity:    string(inst.Severity),
			Title:       inst.Title,
			Description: inst.Description,
			File:        inst.File,
			Line:        inst.Line,
			Hint:        inst.Hint,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ToMarkdown renders s as a human-facing report: a summary table
// followed by one section per severity band, matching the two-band
// taxonomy the detector framework itself uses.
func (s *Summary) ToMarkdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Report (run %s)\n\n", s.RunID)
	fmt.Fprintf(&b, "High issues: %d\nLow issues: %d\n\n", s.HighIssues, s.LowIssues)

	fmt.Fprintf(&b, "## Files summary\n\n")
	fmt.Fprintf(&b, "| File | SLOC | High | Low |\n|---|---|---|---|\n")
	for _, fs := range s.FilesSummary {
		fmt.Fprintf(&b, "| %s | %d | %d | %d |\n", fs.Path, fs.SLOC.SourceLines, fs.HighIssues, fs.LowIssues)
	}
	b.WriteString("\n")

	writeSection := func(sev detect.Severity, title string) {
		var insts []detect.Instance
		for _, inst := range s.Report.Instances {
			if inst.Severity == sev {
				insts = append(insts, inst)
			}
		}
		if len(insts) == 0 {
			return
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		for _, inst := range insts {
			fmt.Fprintf(&b, "### %s\n\n%s\n\n- %s:%d\n", inst.Title, inst.Description, inst.File, inst.Line)
			if inst.Hint != "" {
				fmt.Fprintf(&b, "- %s\n", inst.Hint)
			}
			b.WriteString("\n")
		}
	}
	writeSection(detect.High, "High issues")
	writeSection(detect.Low, "Low issues")

	if len(s.DetectorsSkipped) > 0 {
		fmt.Fprintf(&b, "## Skipped detectors\n\n")
		for _, sk := range s.DetectorsSkipped {
			fmt.Fprintf(&b, "- %s: %s\n", sk.Name, sk.Err)
		}
	}

	return b.String()
}
