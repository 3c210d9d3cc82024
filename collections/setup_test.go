package collections_test

import (
	"testing"

	"quotationdesk/collections"
	"quotationdesk/testhelpers"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"work_items",
	"pricing_settings",
	"contact_messages",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	// Collect IDs from first run
	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	// Run Setup again; collections must survive with the same IDs.
	collections.Setup(app)

	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q was recreated: id %q != %q", name, col.Id, ids[name])
		}
	}
}

func TestSetup_WorkItemFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("work_items")
	if err != nil {
		t.Fatalf("work_items not found: %v", err)
	}

	for _, field := range []string{"item_key", "name", "category", "base_hours", "complexity", "description", "sort_order"} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("work_items is missing field %q", field)
		}
	}
}
