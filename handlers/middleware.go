// Package handlers wires the quotation engine to the JSON API consumed by
// the agency's single-page frontend.
package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

type contextKey string

// QuoteSessionKey holds the visitor's *services.Selection in the request context.
const QuoteSessionKey contextKey = "quoteSession"

// SessionCookieName is the cookie carrying the opaque quote session id.
const SessionCookieName = "quote_session"

// GetQuoteSelection extracts the quote selection from the request context.
func GetQuoteSelection(r *http.Request) *services.Selection {
	if val, ok := r.Context().Value(QuoteSessionKey).(*services.Selection); ok {
		return val
	}
	return nil
}

// QuoteSessionMiddleware reads the quote_session cookie, loads the matching
// in-memory selection (or starts a fresh one wrapping the current catalog)
// and stores it in the request context. Selections are session-scoped and
// never persisted; an expired session silently restarts empty.
func QuoteSessionMiddleware(app *pocketbase.PocketBase, store *services.SessionStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var selection *services.Selection

		cookie, err := e.Request.Cookie(SessionCookieName)
		if err == nil && cookie.Value != "" {
			if existing, ok := store.Get(cookie.Value); ok {
				selection = existing
			}
		}

		if selection == nil {
			catalog, err := services.LoadCatalog(app)
			if err != nil {
				log.Printf("quote session: could not load catalog: %v", err)
				return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			id, created := store.Create(catalog)
			selection = created
			http.SetCookie(e.Response, &http.Cookie{
				Name:     SessionCookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(e.Request.Context(), QuoteSessionKey, selection)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

// apiError writes a JSON error body with the given status.
func apiError(e *core.RequestEvent, status int, message string) error {
	return e.JSON(status, map[string]string{"error": message})
}
