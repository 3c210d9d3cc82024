package services

import (
	"testing"
	"time"
)

func TestGenerateQuotePDF(t *testing.T) {
	data := exportFixture(t)

	result, err := GenerateQuotePDF(data)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotePDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateQuotePDF_EmptySelection(t *testing.T) {
	selection := NewSelection(testCatalog(t))
	data := BuildQuoteExportData(selection, testSettings(), time.Now())

	result, err := GenerateQuotePDF(data)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotePDF() returned empty bytes for empty selection")
	}
}
