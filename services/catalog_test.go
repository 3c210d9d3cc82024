package services

import (
	"reflect"
	"testing"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()

	catalog, err := NewCatalog([]WorkItem{
		{Key: "landing-page", Name: "Landing Page", Category: "Frontend", BaseHours: 24, Complexity: ComplexityBasic},
		{Key: "rest-api", Name: "REST API", Category: "Backend", BaseHours: 60, Complexity: ComplexityMedium},
		{Key: "admin-ui", Name: "Admin Dashboard", Category: "Frontend", BaseHours: 48, Complexity: ComplexityComplex},
		{Key: "auth", Name: "Authentication", Category: "Security", BaseHours: 32, Complexity: ComplexityMedium},
		{Key: "jobs", Name: "Background Jobs", Category: "Backend", BaseHours: 20, Complexity: ComplexityMedium},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return catalog
}

func TestNewCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		items []WorkItem
	}{
		{"duplicate key", []WorkItem{
			{Key: "a", Name: "A", Category: "X", BaseHours: 1},
			{Key: "a", Name: "B", Category: "X", BaseHours: 1},
		}},
		{"empty key", []WorkItem{
			{Key: "", Name: "A", Category: "X", BaseHours: 1},
		}},
		{"negative hours", []WorkItem{
			{Key: "a", Name: "A", Category: "X", BaseHours: -5},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.items); err == nil {
				t.Errorf("NewCatalog(%s) expected error, got nil", tt.name)
			}
		})
	}
}

func TestCatalogCategories_OrderAndAll(t *testing.T) {
	catalog := testCatalog(t)

	got := catalog.Categories()
	want := []string{"all", "Frontend", "Backend", "Security"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestItemsInCategory(t *testing.T) {
	catalog := testCatalog(t)

	tests := []struct {
		category string
		want     []string
	}{
		{"Frontend", []string{"landing-page", "admin-ui"}},
		{"Backend", []string{"rest-api", "jobs"}},
		{"Security", []string{"auth"}},
		{"all", []string{"landing-page", "rest-api", "admin-ui", "auth", "jobs"}},
		{"Nonexistent", nil},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			items := catalog.ItemsInCategory(tt.category)
			var keys []string
			for _, item := range items {
				if item.Category != tt.category && tt.category != CategoryAll {
					t.Errorf("item %q has category %q, expected %q", item.Key, item.Category, tt.category)
				}
				keys = append(keys, item.Key)
			}
			if !reflect.DeepEqual(keys, tt.want) {
				t.Errorf("ItemsInCategory(%q) keys = %v, want %v", tt.category, keys, tt.want)
			}
		})
	}
}

// The union over all real categories must partition the catalog: every item
// appears exactly once.
func TestItemsInCategory_Partition(t *testing.T) {
	catalog := testCatalog(t)

	counts := make(map[string]int)
	for _, category := range catalog.Categories() {
		if category == CategoryAll {
			continue
		}
		for _, item := range catalog.ItemsInCategory(category) {
			counts[item.Key]++
		}
	}

	if len(counts) != catalog.Len() {
		t.Errorf("union over categories covers %d items, catalog has %d", len(counts), catalog.Len())
	}
	for key, n := range counts {
		if n != 1 {
			t.Errorf("item %q appears %d times across categories, want 1", key, n)
		}
	}
}

func TestItemByKey(t *testing.T) {
	catalog := testCatalog(t)

	item, ok := catalog.ItemByKey("rest-api")
	if !ok {
		t.Fatal("ItemByKey(rest-api) not found")
	}
	if item.Name != "REST API" || item.BaseHours != 60 {
		t.Errorf("ItemByKey(rest-api) = %+v", item)
	}

	if _, ok := catalog.ItemByKey("missing"); ok {
		t.Error("ItemByKey(missing) expected not found")
	}
}
