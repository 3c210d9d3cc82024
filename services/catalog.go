// Package services holds the quotation engine: the work-item catalog,
// per-session selections, pricing totals, the iron-triangle scorer and the
// PDF/Excel export pipeline.
package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
)

// Complexity grades a work item's difficulty tier.
type Complexity string

const (
	ComplexityBasic   Complexity = "basic"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// CategoryAll is the pseudo-category matching every item.
const CategoryAll = "all"

// WorkItem is one offerable unit of work from the agency's catalog.
type WorkItem struct {
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	BaseHours   float64    `json:"baseHours"`
	Complexity  Complexity `json:"complexity"`
	Description string     `json:"description"`
}

// Catalog is an immutable, ordered set of work items. Category order
// follows first occurrence in the item list.
type Catalog struct {
	items      []WorkItem
	byKey      map[string]int
	categories []string
}

// NewCatalog validates the item list and builds the lookup index.
func NewCatalog(items []WorkItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]WorkItem, len(items)),
		byKey: make(map[string]int, len(items)),
	}
	copy(c.items, items)

	seen := make(map[string]bool)
	for i, item := range c.items {
		if item.Key == "" {
			return nil, fmt.Errorf("catalog item %d has an empty key", i)
		}
		if _, dup := c.byKey[item.Key]; dup {
			return nil, fmt.Errorf("catalog item key %q is duplicated", item.Key)
		}
		if item.BaseHours < 0 {
			return nil, fmt.Errorf("catalog item %q has negative base hours %v", item.Key, item.BaseHours)
		}
		c.byKey[item.Key] = i
		if !seen[item.Category] {
			seen[item.Category] = true
			c.categories = append(c.categories, item.Category)
		}
	}

	return c, nil
}

// LoadCatalog reads the work_items collection into a Catalog, in sort_order.
func LoadCatalog(app *pocketbase.PocketBase) (*Catalog, error) {
	col, err := app.FindCollectionByNameOrId("work_items")
	if err != nil {
		return nil, fmt.Errorf("load catalog: collection not found: %w", err)
	}
	records, err := app.FindRecordsByFilter(col, "id != ''", "sort_order", 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("load catalog: query: %w", err)
	}

	items := make([]WorkItem, 0, len(records))
	for _, rec := range records {
		items = append(items, WorkItem{
			Key:         rec.GetString("item_key"),
			Name:        rec.GetString("name"),
			Category:    rec.GetString("category"),
			BaseHours:   rec.GetFloat("base_hours"),
			Complexity:  Complexity(rec.GetString("complexity")),
			Description: rec.GetString("description"),
		})
	}

	catalog, err := NewCatalog(items)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog, nil
}

// Categories returns "all" followed by the real categories in first-occurrence order.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.categories)+1)
	out = append(out, CategoryAll)
	out = append(out, c.categories...)
	return out
}

// ItemsInCategory returns the items of one category in catalog order.
// CategoryAll returns everything; an unknown category returns nil.
func (c *Catalog) ItemsInCategory(category string) []WorkItem {
	if category == CategoryAll {
		return c.Items()
	}
	var out []WorkItem
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// ItemByKey looks up one item.
func (c *Catalog) ItemByKey(key string) (WorkItem, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return WorkItem{}, false
	}
	return c.items[i], true
}

// Items returns a copy of the full item list in catalog order.
func (c *Catalog) Items() []WorkItem {
	out := make([]WorkItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}
