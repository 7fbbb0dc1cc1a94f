package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/detect"
	"github.com/Cyfrin/aderyn-sub003/internal/server"
	"github.com/Cyfrin/aderyn-sub003/report"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

const serverFixtureAST = `{
	"id": 1, "src": "0:1:0", "nodeType": "SourceUnit", "absolutePath": "Foo.sol",
	"nodes": [{
		"id": 3, "src": "0:1:0", "nodeType": "ContractDefinition", "name": "Foo",
		"contractKind": "contract", "abstract": false, "fullyImplemented": true,
		"linearizedBaseContracts": [3], "nodes": []
	}]
}`

func sampleSummary(t *testing.T) *report.Summary {
	t.Helper()
	w, err := workspace.New([]workspace.CompiledSource{
		{AbsolutePath: "Foo.sol", SourceText: "contract Foo {}\n", RawAST: []byte(serverFixtureAST)},
	}, nil, nil)
	require.NoError(t, err)

	r := &detect.Report{}
	return report.Build(w, r, nil)
}

func discardLogger() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

func TestHealthzReturnsOK(t *testing.T) {
	store := &server.Store{}
	h := server.New(store, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestReportReturnsServiceUnavailableBeforeFirstRun(t *testing.T) {
	store := &server.Store{}
	h := server.New(store, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestReportServesStoredSummaryAsJSON(t *testing.T) {
	store := &server.Store{}
	store.Set(sampleSummary(t))
	h := server.New(store, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Contains(t, doc, "run_id")
}

func TestReportSarifServesStoredSummary(t *testing.T) {
	store := &server.Store{}
	store.Set(sampleSummary(t))
	h := server.New(store, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/report.sarif", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Contains(t, doc, "runs")
}
