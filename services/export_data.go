package services

import (
	"fmt"
	"time"
)

// QuoteExportRow is one selected item rendered into the export table.
type QuoteExportRow struct {
	Index       int
	Name        string
	Category    string
	Complexity  Complexity
	Hours       float64
	Rate        float64
	Amount      float64
	Overridden  bool
	Description string
}

// QuoteExportData holds everything the PDF and Excel generators need. The
// generators only lay out; all derivation happens here.
type QuoteExportData struct {
	AgencyName  string
	AgencyEmail string
	Title       string
	Reference   string
	CreatedDate string

	Currency string
	Rows     []QuoteExportRow
	Summary  []CategoryTotals

	TotalHours    float64
	Subtotal      float64
	TaxPercent    float64
	TaxAmount     float64
	Total         float64
	EstimatedDays int
	HoursPerDay   int

	Terms []string
}

// exportTerms are the standard quotation terms printed on every export.
var exportTerms = []string{
	"This document is a non-binding effort estimate, not a fixed-price offer.",
	"Hour figures assume the scope described per item; scope changes are re-estimated.",
	"The calendar estimate assumes the stated productive hours per working day.",
	"Prices exclude third-party licenses, hosting and external service fees.",
	"The estimate is valid for 30 days from the date above.",
}

// BuildQuoteExportData derives the export document from the current
// selection and settings. The reference number is time-based so two exports
// of the same session stay distinguishable.
func BuildQuoteExportData(selection *Selection, settings PricingSettings, now time.Time) QuoteExportData {
	selected := selection.SelectedItems()
	totals := ComputeTotals(selected, settings)

	rows := make([]QuoteExportRow, 0, len(selected))
	for i, item := range selected {
		hours := item.EffectiveHours()
		rows = append(rows, QuoteExportRow{
			Index:       i + 1,
			Name:        item.Name,
			Category:    item.Category,
			Complexity:  item.Complexity,
			Hours:       hours,
			Rate:        settings.HourlyRate,
			Amount:      hours * settings.HourlyRate,
			Overridden:  item.CustomHours >= MinCustomHours,
			Description: item.Description,
		})
	}

	return QuoteExportData{
		AgencyName:  "Quotation Desk",
		AgencyEmail: "hello@quotationdesk.dev",
		Title:       "PROJECT QUOTATION",
		Reference:   fmt.Sprintf("QD-%s", now.Format("20060102-150405")),
		CreatedDate: now.Format("02 Jan 2006"),

		Currency: settings.CurrencySymbol,
		Rows:     rows,
		Summary:  totals.PerCategory,

		TotalHours:    totals.TotalHours,
		Subtotal:      totals.Subtotal,
		TaxPercent:    settings.TaxPercent,
		TaxAmount:     totals.TaxAmount,
		Total:         totals.Total,
		EstimatedDays: totals.EstimatedDays,
		HoursPerDay:   settings.HoursPerDay,

		Terms: exportTerms,
	}
}
