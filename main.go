package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	_ "github.com/joho/godotenv/autoload"

	"quotationdesk/collections"
	"quotationdesk/handlers"
	"quotationdesk/services"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed the catalog on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: catalog seed failed: %v", err)
		}
		if err := collections.MigrateDefaultPricingSettings(app); err != nil {
			log.Printf("Warning: settings migration failed: %v", err)
		}
		return se.Next()
	})

	sessions := services.NewSessionStore(sessionTTLFromEnv())
	mailer := services.NewMailClient(
		os.Getenv("MAIL_API_URL"),
		os.Getenv("MAIL_API_KEY"),
		os.Getenv("MAIL_BEARER_TOKEN"),
	)
	adminPasscode := os.Getenv("ADMIN_PASSCODE")

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve the SPA bundle from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Catalog ──────────────────────────────────────────────
		se.Router.GET("/api/catalog", handlers.HandleCatalogList(app))
		se.Router.GET("/api/catalog/{category}/items", handlers.HandleCategoryItems(app))

		// ── Quote session (cookie-bound, in-memory) ──────────────
		quote := se.Router.Group("/api/quote")
		quote.BindFunc(handlers.QuoteSessionMiddleware(app, sessions))
		quote.GET("", handlers.HandleQuoteView(app))
		quote.POST("/items/{itemKey}/toggle", handlers.HandleQuoteToggle(app))
		quote.PATCH("/items/{itemKey}/hours", handlers.HandleQuoteSetHours(app))
		quote.DELETE("/items/{itemKey}/hours", handlers.HandleQuoteClearHours(app))
		quote.POST("/reset", handlers.HandleQuoteReset(app))

		// ── Quote export ─────────────────────────────────────────
		quote.GET("/export/pdf", handlers.HandleQuoteExportPDF(app))
		quote.GET("/export/excel", handlers.HandleQuoteExportExcel(app))

		// ── Iron Triangle ────────────────────────────────────────
		se.Router.POST("/api/triangle/analyze", handlers.HandleTriangleAnalyze())
		se.Router.GET("/api/triangle/presets", handlers.HandleTrianglePresets())
		se.Router.GET("/api/triangle/presets/{key}/analyze", handlers.HandleTrianglePresetAnalyze())

		// ── Pricing settings ─────────────────────────────────────
		se.Router.GET("/api/settings", handlers.HandleSettingsView(app))
		se.Router.PUT("/api/settings", handlers.HandleSettingsUpdate(app, adminPasscode))

		// ── Contact relay ────────────────────────────────────────
		se.Router.POST("/api/contact", handlers.HandleContactSubmit(app, mailer))

		// Redirect home to the SPA entry point
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/static/")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// sessionTTLFromEnv reads QUOTE_SESSION_TTL (a Go duration such as "12h"),
// falling back to the store default when unset or unparsable.
func sessionTTLFromEnv() time.Duration {
	raw := os.Getenv("QUOTE_SESSION_TTL")
	if raw == "" {
		return services.DefaultSessionTTL
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid QUOTE_SESSION_TTL %q, using default", raw)
		return services.DefaultSessionTTL
	}
	return ttl
}
