package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

// AdminPasscodeHeader carries the shared passcode for settings mutation.
const AdminPasscodeHeader = "X-Admin-Passcode"

// HandleSettingsView returns the current pricing settings.
func HandleSettingsView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		settings, err := services.LoadPricingSettings(app)
		if err != nil {
			log.Printf("settings_view: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusOK, settings)
	}
}

// HandleSettingsUpdate replaces the pricing settings. The passcode gate is
// a convenience for the demo deployment, not an authentication boundary:
// anyone shipping this beyond a trusted demo must put a real server-side
// authorization check in front of it.
func HandleSettingsUpdate(app *pocketbase.PocketBase, passcode string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if passcode == "" {
			return apiError(e, http.StatusForbidden, "Settings editing is disabled")
		}
		provided := e.Request.Header.Get(AdminPasscodeHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(passcode)) != 1 {
			return apiError(e, http.StatusForbidden, "Invalid passcode")
		}

		var req services.PricingSettings
		if err := e.BindBody(&req); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}
		if req.CurrencySymbol == "" {
			req.CurrencySymbol = services.DefaultPricingSettings().CurrencySymbol
		}
		if err := req.Validate(); err != nil {
			return apiError(e, http.StatusBadRequest, err.Error())
		}

		col, err := app.FindCollectionByNameOrId("pricing_settings")
		if err != nil {
			log.Printf("settings_update: collection not found: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(col, "id != ''", "-created", 1, 0, nil)
		if err != nil {
			log.Printf("settings_update: query: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var record *core.Record
		if len(records) > 0 {
			record = records[0]
		} else {
			record = core.NewRecord(col)
		}
		record.Set("hourly_rate", req.HourlyRate)
		record.Set("hours_per_day", req.HoursPerDay)
		record.Set("tax_percent", req.TaxPercent)
		record.Set("currency_symbol", req.CurrencySymbol)

		if err := app.Save(record); err != nil {
			log.Printf("settings_update: save: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, req)
	}
}
