package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/detect"
	"github.com/Cyfrin/aderyn-sub003/report"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

func emptySummary(t *testing.T) *report.Summary {
	t.Helper()
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "Foo.sol", SourceText: "contract Foo {}\n", RawAST: []byte(ingestFixtureAST)},
	}, nil, nil)
	require.NoError(t, err)
	return report.Build(w, &detect.Report{}, nil)
}

func TestRenderReportDefaultsToMarkdown(t *testing.T) {
	out, err := renderReport(emptySummary(t), "")
	require.NoError(t, err)
	require.Contains(t, out, "# Report")
}

func TestRenderReportJSON(t *testing.T) {
	out, err := renderReport(emptySummary(t), "json")
	require.NoError(t, err)
	require.Contains(t, out, `"run_id"`)
}

func TestRenderReportSARIF(t *testing.T) {
	out, err := renderReport(emptySummary(t), "sarif")
	require.NoError(t, err)
	require.Contains(t, out, `"$schema"`)
}

func TestRenderReportUnknownFormatErrors(t *testing.T) {
	_, err := renderReport(emptySummary(t), "xml")
	require.Error(t, err)
}
