package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

// MigrateDefaultPricingSettings ensures a pricing_settings record exists so
// the calculator always has a rate, a working-day length and a tax rate to
// work with. Existing records are left untouched.
func MigrateDefaultPricingSettings(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("pricing_settings")
	if err != nil {
		return fmt.Errorf("settings migration: collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("settings migration: query: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := services.DefaultPricingSettings()
	record := core.NewRecord(col)
	record.Set("hourly_rate", defaults.HourlyRate)
	record.Set("hours_per_day", defaults.HoursPerDay)
	record.Set("tax_percent", defaults.TaxPercent)
	record.Set("currency_symbol", defaults.CurrencySymbol)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("settings migration: save defaults: %w", err)
	}

	log.Println("settings migration: created default pricing settings")
	return nil
}
