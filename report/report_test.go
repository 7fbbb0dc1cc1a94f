package report_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/detect"
	"github.com/Cyfrin/aderyn-sub003/report"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

const reportFixtureAST = `{
	"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "Foo.sol",
	"nodes": [{
		"id": 3, "src": "0:1:0", "nodeType": "ContractDefinition", "name": "Foo",
		"contractKind": "contract", "abstract": false, "fullyImplemented": true,
		"linearizedBaseContracts": [3], "nodes": []
	}]
}`

func newReportFixture(t *testing.T) *workspace.Workspace {
	t.Helper()
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "Foo.sol", SourceText: "contract Foo {}\n", RawAST: []byte(reportFixtureAST)},
	}, nil, nil)
	require.NoError(t, err)
	return w
}

func sampleDetectReport() *detect.Report {
	return &detect.Report{
		Instances: []detect.Instance{
			{
				DetectorName: "tx-origin-used-for-auth",
				Severity:     detect.High,
				Title:        "Tx Origin Used For Auth",
				Description:  "desc",
				File:         "Foo.sol",
				Line:         5,
			},
			{
				DetectorName: "state-change-without-event",
				Severity:     detect.Low,
				Title:        "State Change Without Event",
				Description:  "desc2",
				File:         "Foo.sol",
				Line:         9,
				Hint:         "a hint",
			},
		},
		Suppressed: 1,
		Skipped: []detect.SkippedDetector{
			{Name: "broken-detector", Err: errors.New("kaboom")},
		},
	}
}

func TestBuildComputesCountsAndFileSummary(t *testing.T) {
	w := newReportFixture(t)
	r := sampleDetectReport()

	s := report.Build(w, r, nil)

	require.Equal(t, 1, s.HighIssues)
	require.Equal(t, 1, s.LowIssues)
	require.Len(t, s.FilesSummary, 1)
	require.Equal(t, "Foo.sol", s.FilesSummary[0].Path)
	require.Equal(t, 1, s.FilesSummary[0].HighIssues)
	require.Equal(t, 1, s.FilesSummary[0].LowIssues)
	require.NotEmpty(t, s.RunID)
	require.Len(t, s.DetectorsSkipped, 1)
}

func TestToJSONRoundTripsExpectedShape(t *testing.T) {
	w := newReportFixture(t)
	r := sampleDetectReport()
	s := report.Build(w, r, nil)

	bs, err := s.ToJSON()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(bs, &doc))
	require.Equal(t, float64(1), doc["high_issues"])
	require.Equal(t, float64(1), doc["low_issues"])

	issues, ok := doc["issues"].([]interface{})
	require.True(t, ok)
	require.Len(t, issues, 2)
}

func TestToMarkdownIncludesEverySeverityAndSkipped(t *testing.T) {
	w := newReportFixture(t)
	r := sampleDetectReport()
	s := report.Build(w, r, nil)

	md := s.ToMarkdown()
	require.Contains(t, md, "Tx Origin Used For Auth")
	require.Contains(t, md, "State Change Without Event")
	require.Contains(t, md, "a hint")
	require.Contains(t, md, "broken-detector")
}

func TestToSARIFProducesOneRulePerDetector(t *testing.T) {
	w := newReportFixture(t)
	r := sampleDetectReport()
	s := report.Build(w, r, nil)

	bs, err := s.ToSARIF()
	require.NoError(t, err)

	var doc struct {
		Runs []struct {
			Tool struct {
				Driver struct {
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				Level string `json:"level"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(bs, &doc))
	require.Len(t, doc.Runs, 1)
	require.Len(t, doc.Runs[0].Tool.Driver.Rules, 2)
	require.Len(t, doc.Runs[0].Results, 2)
}
