package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

// quoteState is the response body shared by the quote endpoints: the full
// item state plus the freshly derived totals. Totals are always recomputed,
// never cached.
func quoteState(app *pocketbase.PocketBase, e *core.RequestEvent, selection *services.Selection) error {
	settings, err := services.LoadPricingSettings(app)
	if err != nil {
		log.Printf("quote: could not load settings: %v", err)
		return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}

	items := selection.Items()
	return e.JSON(http.StatusOK, map[string]any{
		"items":    items,
		"totals":   services.ComputeTotals(items, settings),
		"settings": settings,
	})
}

// HandleQuoteView returns the current selection state and totals.
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		selection := GetQuoteSelection(e.Request)
		if selection == nil {
			return apiError(e, http.StatusInternalServerError, "No quote session")
		}
		return quoteState(app, e, selection)
	}
}

// HandleQuoteToggle flips one item in or out of the quotation.
func HandleQuoteToggle(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		selection := GetQuoteSelection(e.Request)
		if selection == nil {
			return apiError(e, http.StatusInternalServerError, "No quote session")
		}

		itemKey := e.Request.PathValue("itemKey")
		if itemKey == "" {
			return apiError(e, http.StatusBadRequest, "Missing item key")
		}

		if _, err := selection.Toggle(itemKey); err != nil {
			if errors.Is(err, services.ErrUnknownItem) {
				return apiError(e, http.StatusNotFound, "Work item not found")
			}
			log.Printf("quote_toggle: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return quoteState(app, e, selection)
	}
}

// HandleQuoteSetHours stores an hour override for one item. Values below
// the minimum are clamped, and the response carries the clamped state so
// the UI can reflect it back.
func HandleQuoteSetHours(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		selection := GetQuoteSelection(e.Request)
		if selection == nil {
			return apiError(e, http.StatusInternalServerError, "No quote session")
		}

		itemKey := e.Request.PathValue("itemKey")
		if itemKey == "" {
			return apiError(e, http.StatusBadRequest, "Missing item key")
		}

		var req struct {
			Hours float64 `json:"hours"`
		}
		if err := e.BindBody(&req); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		item, err := selection.SetCustomHours(itemKey, req.Hours)
		if err != nil {
			if errors.Is(err, services.ErrUnknownItem) {
				return apiError(e, http.StatusNotFound, "Work item not found")
			}
			log.Printf("quote_set_hours: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		settings, err := services.LoadPricingSettings(app)
		if err != nil {
			log.Printf("quote_set_hours: could not load settings: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"item":   item,
			"totals": services.ComputeTotals(selection.Items(), settings),
		})
	}
}

// HandleQuoteClearHours drops an hour override so the base estimate applies.
func HandleQuoteClearHours(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		selection := GetQuoteSelection(e.Request)
		if selection == nil {
			return apiError(e, http.StatusInternalServerError, "No quote session")
		}

		itemKey := e.Request.PathValue("itemKey")
		if itemKey == "" {
			return apiError(e, http.StatusBadRequest, "Missing item key")
		}

		if _, err := selection.ClearCustomHours(itemKey); err != nil {
			if errors.Is(err, services.ErrUnknownItem) {
				return apiError(e, http.StatusNotFound, "Work item not found")
			}
			log.Printf("quote_clear_hours: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return quoteState(app, e, selection)
	}
}

// HandleQuoteReset deselects everything and drops all overrides.
func HandleQuoteReset(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		selection := GetQuoteSelection(e.Request)
		if selection == nil {
			return apiError(e, http.StatusInternalServerError, "No quote session")
		}

		selection.Reset()
		return quoteState(app, e, selection)
	}
}
