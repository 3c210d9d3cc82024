package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

// HandleQuoteExportPDF serializes the current selection into the quotation
// PDF and streams it as a download.
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		selection := GetQuoteSelection(e.Request)
		if selection == nil {
			return apiError(e, http.StatusInternalServerError, "No quote session")
		}

		settings, err := services.LoadPricingSettings(app)
		if err != nil {
			log.Printf("quote_export_pdf: could not load settings: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data := services.BuildQuoteExportData(selection, settings, time.Now())
		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("quote_export_pdf: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not generate the PDF. Please try again.")
		}

		filename := fmt.Sprintf("quotation_%s.pdf", time.Now().Format("20060102_150405"))
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportExcel serializes the current selection into an Excel
// workbook and streams it as a download.
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		selection := GetQuoteSelection(e.Request)
		if selection == nil {
			return apiError(e, http.StatusInternalServerError, "No quote session")
		}

		settings, err := services.LoadPricingSettings(app)
		if err != nil {
			log.Printf("quote_export_excel: could not load settings: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data := services.BuildQuoteExportData(selection, settings, time.Now())
		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("quote_export_excel: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not generate the Excel file. Please try again.")
		}

		filename := fmt.Sprintf("quotation_%s.xlsx", time.Now().Format("20060102_150405"))
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
