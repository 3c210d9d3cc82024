// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestWorkItem inserts a catalog record and returns it.
func CreateTestWorkItem(t *testing.T, app *pocketbase.PocketBase, key, name, category string, baseHours float64, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("work_items")
	if err != nil {
		t.Fatalf("failed to find work_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("item_key", key)
	record.Set("name", name)
	record.Set("category", category)
	record.Set("base_hours", baseHours)
	record.Set("complexity", "medium")
	record.Set("description", "Test item")
	record.Set("sort_order", sortOrder)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test work item: %v", err)
	}

	return record
}

// SeedTestCatalog inserts a small fixed catalog covering three categories.
func SeedTestCatalog(t *testing.T, app *pocketbase.PocketBase) {
	t.Helper()

	items := []struct {
		key      string
		name     string
		category string
		hours    float64
	}{
		{"landing-page", "Landing Page", "Frontend", 24},
		{"admin-ui", "Admin Dashboard", "Frontend", 48},
		{"rest-api", "REST API", "Backend", 60},
		{"auth", "Authentication", "Security", 32},
	}
	for i, it := range items {
		CreateTestWorkItem(t, app, it.key, it.name, it.category, it.hours, i+1)
	}
}

// CreateTestPricingSettings inserts a settings record and returns it.
func CreateTestPricingSettings(t *testing.T, app *pocketbase.PocketBase, hourlyRate float64, hoursPerDay int, taxPercent float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("pricing_settings")
	if err != nil {
		t.Fatalf("failed to find pricing_settings collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("hourly_rate", hourlyRate)
	record.Set("hours_per_day", hoursPerDay)
	record.Set("tax_percent", taxPercent)
	record.Set("currency_symbol", "$")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test pricing settings: %v", err)
	}

	return record
}

// AssertJSONContains checks that body contains all specified fragments.
func AssertJSONContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected JSON to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
