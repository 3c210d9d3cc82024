package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

// HandleCatalogList returns the full work-item catalog plus the category
// list used for filtering.
func HandleCatalogList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		catalog, err := services.LoadCatalog(app)
		if err != nil {
			log.Printf("catalog_list: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"categories": catalog.Categories(),
			"items":      catalog.Items(),
		})
	}
}

// HandleCategoryItems returns the items belonging to one category. An
// unknown category yields an empty list, matching the filter semantics of
// the catalog itself.
func HandleCategoryItems(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category := e.Request.PathValue("category")
		if category == "" {
			return apiError(e, http.StatusBadRequest, "Missing category")
		}

		catalog, err := services.LoadCatalog(app)
		if err != nil {
			log.Printf("category_items: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		items := catalog.ItemsInCategory(category)
		if items == nil {
			items = []services.WorkItem{}
		}

		return e.JSON(http.StatusOK, map[string]any{
			"category": category,
			"items":    items,
		})
	}
}
