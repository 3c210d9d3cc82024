package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

// HandleTriangleAnalyze scores a quality/time/cost triple. Out-of-range
// inputs are clamped here, at the boundary; the scorer itself assumes
// [0,100] values.
func HandleTriangleAnalyze() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req services.TriangleInputs
		if err := e.BindBody(&req); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		inputs := req.Clamp()
		return e.JSON(http.StatusOK, map[string]any{
			"inputs":   inputs,
			"analysis": services.AnalyzeTriangle(inputs),
		})
	}
}

// HandleTrianglePresets returns the fixed preset list.
func HandleTrianglePresets() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]any{
			"presets": services.TrianglePresets(),
		})
	}
}

// HandleTrianglePresetAnalyze scores a named preset directly, which is
// exactly equivalent to posting the preset's literal values.
func HandleTrianglePresetAnalyze() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		key := e.Request.PathValue("key")
		preset, ok := services.TrianglePresetByKey(key)
		if !ok {
			return apiError(e, http.StatusNotFound, "Preset not found")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"preset":   preset,
			"inputs":   preset.Inputs,
			"analysis": services.AnalyzeTriangle(preset.Inputs),
		})
	}
}
