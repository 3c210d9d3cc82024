package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
	"quotationdesk/testhelpers"
)

const contactBody = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"subject": "New project",
	"message": "We need a storefront with online payments."
}`

func latestContactRecord(t *testing.T, app *pocketbase.PocketBase) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("contact_messages")
	if err != nil {
		t.Fatalf("failed to find contact_messages: %v", err)
	}
	records, err := app.FindRecordsByFilter(col, "id != ''", "-created", 1, 0, nil)
	if err != nil {
		t.Fatalf("failed to query contact_messages: %v", err)
	}
	if len(records) == 0 {
		t.Fatal("no contact message stored")
	}
	return records[0]
}

func TestHandleContactSubmit(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	mailServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`))
	}))
	defer mailServer.Close()
	mailer := services.NewMailClient(mailServer.URL, "test-key", "")

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(contactBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleContactSubmit(app, mailer)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	testhelpers.AssertJSONContains(t, rec.Body.String(), `"success":true`)

	record := latestContactRecord(t, app)
	if got := record.GetString("status"); got != "sent" {
		t.Errorf("stored status = %q, want sent", got)
	}
	if got := record.GetString("email"); got != "jane@example.com" {
		t.Errorf("stored email = %q", got)
	}
}

func TestHandleContactSubmitRelayFailure(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	mailServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer mailServer.Close()
	mailer := services.NewMailClient(mailServer.URL, "test-key", "")

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(contactBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleContactSubmit(app, mailer)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502 on relay failure, got %d", rec.Code)
	}

	// The submission is kept with a failed status so it stays visible.
	record := latestContactRecord(t, app)
	if got := record.GetString("status"); got != "failed" {
		t.Errorf("stored status = %q, want failed", got)
	}
}

func TestHandleContactSubmitInvalid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	mailer := services.NewMailClient("", "", "")

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email": "a@b.co", "message": "hello there"}`},
		{"bad email", `{"name": "A", "email": "not-an-email", "message": "hello there"}`},
		{"missing message", `{"name": "A", "email": "a@b.co"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			if err := HandleContactSubmit(app, mailer)(e); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rec.Code)
			}
		})
	}
}
