package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// withQuoteSession attaches a fresh selection over the app's catalog to the
// request context, the way QuoteSessionMiddleware would.
func withQuoteSession(t *testing.T, app *pocketbase.PocketBase, req *http.Request) (*http.Request, *services.Selection) {
	t.Helper()

	catalog, err := services.LoadCatalog(app)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	selection := services.NewSelection(catalog)
	ctx := context.WithValue(req.Context(), QuoteSessionKey, selection)
	return req.WithContext(ctx), selection
}
