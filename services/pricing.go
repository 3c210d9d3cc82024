package services

import (
	"fmt"
	"math"

	"github.com/pocketbase/pocketbase"
)

// PricingSettings configures how selected hours turn into money and days.
type PricingSettings struct {
	HourlyRate     float64 `json:"hourlyRate"`
	HoursPerDay    int     `json:"hoursPerDay"`
	TaxPercent     float64 `json:"taxPercent"`
	CurrencySymbol string  `json:"currencySymbol"`
}

// DefaultPricingSettings are applied until the settings record is edited.
func DefaultPricingSettings() PricingSettings {
	return PricingSettings{
		HourlyRate:     40,
		HoursPerDay:    6,
		TaxPercent:     16,
		CurrencySymbol: "$",
	}
}

// Validate rejects settings the engine cannot work with. Clamping belongs to
// the input boundary; by the time settings reach the engine they must hold.
func (p PricingSettings) Validate() error {
	if p.HourlyRate < 0 {
		return fmt.Errorf("hourly rate must be >= 0, got %v", p.HourlyRate)
	}
	if p.HoursPerDay < 1 {
		return fmt.Errorf("hours per day must be >= 1, got %d", p.HoursPerDay)
	}
	if p.TaxPercent < 0 || p.TaxPercent > 100 {
		return fmt.Errorf("tax percent must be between 0 and 100, got %v", p.TaxPercent)
	}
	return nil
}

// LoadPricingSettings reads the singleton pricing_settings record, falling
// back to defaults when none exists yet.
func LoadPricingSettings(app *pocketbase.PocketBase) (PricingSettings, error) {
	col, err := app.FindCollectionByNameOrId("pricing_settings")
	if err != nil {
		return PricingSettings{}, fmt.Errorf("load settings: collection not found: %w", err)
	}
	records, err := app.FindRecordsByFilter(col, "id != ''", "-created", 1, 0, nil)
	if err != nil {
		return PricingSettings{}, fmt.Errorf("load settings: query: %w", err)
	}
	if len(records) == 0 {
		return DefaultPricingSettings(), nil
	}
	rec := records[0]
	return PricingSettings{
		HourlyRate:     rec.GetFloat("hourly_rate"),
		HoursPerDay:    rec.GetInt("hours_per_day"),
		TaxPercent:     rec.GetFloat("tax_percent"),
		CurrencySymbol: rec.GetString("currency_symbol"),
	}, nil
}

// CategoryTotals is the per-category rollup used for reporting and export.
type CategoryTotals struct {
	Category string  `json:"category"`
	Items    int     `json:"items"`
	Hours    float64 `json:"hours"`
	Cost     float64 `json:"cost"`
}

// Totals is the derived result of a quote selection. Values are always
// recomputed from the selection, never stored.
type Totals struct {
	SelectedCount int              `json:"selectedCount"`
	TotalHours    float64          `json:"totalHours"`
	Subtotal      float64          `json:"subtotal"`
	TaxAmount     float64          `json:"taxAmount"`
	Total         float64          `json:"total"`
	EstimatedDays int              `json:"estimatedDays"`
	PerCategory   []CategoryTotals `json:"perCategory"`
}

// ComputeTotals aggregates the selected items under the given settings.
// It is pure: identical inputs yield identical outputs. Amounts stay
// unrounded floats; rounding happens at the presentation boundary only.
// With nothing selected every total is zero, including estimated days.
func ComputeTotals(items []SelectedItem, settings PricingSettings) Totals {
	var totals Totals
	rollups := make(map[string]*CategoryTotals)
	var order []string

	for _, item := range items {
		if !item.Selected {
			continue
		}
		hours := item.EffectiveHours()
		cost := hours * settings.HourlyRate

		totals.SelectedCount++
		totals.TotalHours += hours

		r, ok := rollups[item.Category]
		if !ok {
			r = &CategoryTotals{Category: item.Category}
			rollups[item.Category] = r
			order = append(order, item.Category)
		}
		r.Items++
		r.Hours += hours
		r.Cost += cost
	}

	totals.Subtotal = totals.TotalHours * settings.HourlyRate
	totals.TaxAmount = totals.Subtotal * settings.TaxPercent / 100
	totals.Total = totals.Subtotal + totals.TaxAmount

	if totals.TotalHours > 0 && settings.HoursPerDay >= 1 {
		totals.EstimatedDays = int(math.Ceil(totals.TotalHours / float64(settings.HoursPerDay)))
	}

	for _, category := range order {
		totals.PerCategory = append(totals.PerCategory, *rollups[category])
	}
	return totals
}
