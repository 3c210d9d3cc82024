package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// workItemDef is the seed definition for one catalog entry.
type workItemDef struct {
	key         string
	name        string
	category    string
	baseHours   float64
	complexity  string
	description string
}

// catalogSeed is the default work-item catalog offered to visitors. Order
// matters: sort_order drives both the UI listing and the category order.
var catalogSeed = []workItemDef{
	// ── Frontend ─────────────────────────────────────────────────────
	{"landing-page", "Landing Page", "Frontend", 24, "basic",
		"Single marketing page with hero, feature sections and call to action."},
	{"responsive-layout", "Responsive Layout", "Frontend", 16, "basic",
		"Mobile-first breakpoints and touch-friendly navigation across the site."},
	{"admin-dashboard", "Admin Dashboard UI", "Frontend", 56, "complex",
		"Back-office screens with tables, filters, charts and bulk actions."},
	{"animations", "Animations & Micro-interactions", "Frontend", 20, "medium",
		"Scroll reveals, hover states and page transitions."},
	{"i18n", "Multilingual Support", "Frontend", 28, "medium",
		"Translation workflow, locale switching and localized formatting."},
	{"design-system", "Component Design System", "Frontend", 40, "complex",
		"Reusable component library with tokens and documentation."},

	// ── Backend ──────────────────────────────────────────────────────
	{"rest-api", "REST API", "Backend", 60, "medium",
		"Resource endpoints, validation, pagination and error handling."},
	{"auth", "Authentication & Sessions", "Backend", 32, "medium",
		"Registration, login, password reset and session management."},
	{"rbac", "Roles & Permissions", "Backend", 24, "medium",
		"Role-based access rules enforced at the API layer."},
	{"file-uploads", "File Uploads & Media", "Backend", 18, "basic",
		"Upload handling, image resizing and storage integration."},
	{"background-jobs", "Background Jobs", "Backend", 26, "medium",
		"Queued processing for emails, reports and long-running tasks."},
	{"search", "Full-text Search", "Backend", 30, "complex",
		"Indexed search with ranking, filters and suggestions."},

	// ── Database ─────────────────────────────────────────────────────
	{"schema-design", "Schema Design", "Database", 20, "medium",
		"Entity modelling, constraints and migration baseline."},
	{"reporting-queries", "Reporting Queries", "Database", 24, "complex",
		"Aggregation views and exports for management reporting."},
	{"data-import", "Legacy Data Import", "Database", 22, "medium",
		"One-off migration of existing records with validation and rollback."},

	// ── Security ─────────────────────────────────────────────────────
	{"security-audit", "Security Audit", "Security", 16, "medium",
		"Dependency review, header hardening and OWASP top-ten checks."},
	{"two-factor", "Two-Factor Authentication", "Security", 20, "complex",
		"TOTP enrolment, recovery codes and enforcement policies."},
	{"backups", "Backups & Recovery", "Security", 12, "basic",
		"Scheduled encrypted backups with documented restore procedure."},

	// ── Integration ──────────────────────────────────────────────────
	{"payments", "Payment Gateway", "Integration", 36, "complex",
		"Checkout flow, webhooks and reconciliation against the provider."},
	{"email-service", "Transactional Email", "Integration", 14, "basic",
		"Templated delivery through an external email API."},
	{"crm-sync", "CRM Synchronisation", "Integration", 28, "medium",
		"Two-way contact and deal sync with the client's CRM."},
	{"analytics", "Analytics & Tracking", "Integration", 10, "basic",
		"Event instrumentation and conversion dashboards."},

	// ── Deployment ───────────────────────────────────────────────────
	{"cicd", "CI/CD Pipeline", "Deployment", 18, "medium",
		"Automated build, test and deploy on every merge."},
	{"cloud-setup", "Cloud Provisioning", "Deployment", 24, "medium",
		"Environment setup, DNS, TLS and infrastructure as code."},
	{"monitoring", "Monitoring & Alerting", "Deployment", 16, "medium",
		"Uptime checks, log aggregation and on-call alerts."},

	// ── Management ───────────────────────────────────────────────────
	{"project-management", "Project Management", "Management", 30, "basic",
		"Planning, weekly demos and stakeholder communication."},
	{"qa-testing", "QA & Testing", "Management", 36, "medium",
		"Test plans, regression passes and release sign-off."},
	{"documentation", "Technical Documentation", "Management", 16, "basic",
		"Architecture notes, runbooks and handover material."},
}

// Seed populates the work_items collection with the default agency catalog.
// It is safe to call on every startup because it returns early if any
// work items already exist.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("work_items")
	if err != nil {
		return fmt.Errorf("seed: could not find work_items collection: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query work_items: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: work_items collection is empty – inserting catalog …")

	for i, def := range catalogSeed {
		record := core.NewRecord(col)
		record.Set("item_key", def.key)
		record.Set("name", def.name)
		record.Set("category", def.category)
		record.Set("base_hours", def.baseHours)
		record.Set("complexity", def.complexity)
		record.Set("description", def.description)
		record.Set("sort_order", i+1)

		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not save work item %q: %w", def.key, err)
		}
	}

	log.Printf("seed: inserted %d work items", len(catalogSeed))
	return nil
}
