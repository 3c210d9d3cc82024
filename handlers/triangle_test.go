package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quotationdesk/services"
	"quotationdesk/testhelpers"
)

func TestHandleTriangleAnalyze(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	body := strings.NewReader(`{"quality": 50, "time": 50, "cost": 50}`)
	req := httptest.NewRequest(http.MethodPost, "/api/triangle/analyze", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleTriangleAnalyze()(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	testhelpers.AssertJSONContains(t, rec.Body.String(),
		`"isViable":true`, `"riskLevel":"low"`, `"score":70`)
}

func TestHandleTriangleAnalyzeClampsInputs(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	body := strings.NewReader(`{"quality": 150, "time": -20, "cost": 50}`)
	req := httptest.NewRequest(http.MethodPost, "/api/triangle/analyze", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleTriangleAnalyze()(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Inputs services.TriangleInputs `json:"inputs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Inputs.Quality != 100 || resp.Inputs.Time != 0 || resp.Inputs.Cost != 50 {
		t.Errorf("inputs not clamped: %+v", resp.Inputs)
	}
}

func TestHandleTrianglePresets(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/triangle/presets", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleTrianglePresets()(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	testhelpers.AssertJSONContains(t, rec.Body.String(),
		`"balanced"`, `"premium"`, `"mvp"`, `"rush"`, `"budget"`, `"enterprise"`)
}

func TestHandleTrianglePresetAnalyze(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/triangle/presets/balanced/analyze", nil)
	req.SetPathValue("key", "balanced")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleTrianglePresetAnalyze()(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	// Analyzing the preset must match analyzing its literal values.
	preset, ok := services.TrianglePresetByKey("balanced")
	if !ok {
		t.Fatal("balanced preset missing")
	}
	want := services.AnalyzeTriangle(preset.Inputs)

	var resp struct {
		Analysis services.TriangleAnalysis `json:"analysis"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Analysis.Score != want.Score || resp.Analysis.RiskLevel != want.RiskLevel {
		t.Errorf("preset analysis = %+v, want %+v", resp.Analysis, want)
	}
}

func TestHandleTrianglePresetAnalyzeUnknown(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/triangle/presets/nope/analyze", nil)
	req.SetPathValue("key", "nope")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleTrianglePresetAnalyze()(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for unknown preset, got %d", rec.Code)
	}
}
