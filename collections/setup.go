// Package collections creates and seeds the PocketBase collections the
// quotation service relies on: the work-item catalog, the pricing settings
// and the contact-message relay log.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically ensures the work_items, pricing_settings and
// contact_messages collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "work_items", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "item_key", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "category", Required: true})
		c.Fields.Add(&core.NumberField{Name: "base_hours", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "complexity",
			Required:  true,
			Values:    []string{"basic", "medium", "complex"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.AddIndex("idx_work_items_key", true, "item_key", "")
	})

	ensureCollection(app, "pricing_settings", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "hourly_rate", Required: true})
		c.Fields.Add(&core.NumberField{Name: "hours_per_day", Required: true})
		c.Fields.Add(&core.NumberField{Name: "tax_percent", Required: false})
		c.Fields.Add(&core.TextField{Name: "currency_symbol", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "contact_messages", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "email", Required: true})
		c.Fields.Add(&core.TextField{Name: "subject", Required: false})
		c.Fields.Add(&core.TextField{Name: "message", Required: true})
		c.Fields.Add(&core.TextField{Name: "website", Required: false})
		c.Fields.Add(&core.TextField{Name: "template_type", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"pending", "sent", "failed"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
