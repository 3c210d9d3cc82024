package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

// HandleContactSubmit validates a contact-form submission, records it and
// relays it through the external mail API. The relay result is reflected in
// the stored record's status so failed deliveries stay visible.
func HandleContactSubmit(app *pocketbase.PocketBase, mailer *services.MailClient) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var msg services.ContactMessage
		if err := e.BindBody(&msg); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}
		if err := msg.Validate(); err != nil {
			return apiError(e, http.StatusBadRequest, err.Error())
		}

		col, err := app.FindCollectionByNameOrId("contact_messages")
		if err != nil {
			log.Printf("contact: collection not found: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("name", msg.Name)
		record.Set("email", msg.Email)
		record.Set("subject", msg.Subject)
		record.Set("message", msg.Message)
		record.Set("website", msg.Website)
		record.Set("template_type", msg.TemplateType)
		record.Set("status", "pending")
		if err := app.Save(record); err != nil {
			log.Printf("contact: save: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		if err := mailer.Send(e.Request.Context(), msg); err != nil {
			log.Printf("contact: relay failed for %s: %v", record.Id, err)
			record.Set("status", "failed")
			if saveErr := app.Save(record); saveErr != nil {
				log.Printf("contact: could not mark %s failed: %v", record.Id, saveErr)
			}
			return apiError(e, http.StatusBadGateway, "The message could not be delivered. Please try again later.")
		}

		record.Set("status", "sent")
		if err := app.Save(record); err != nil {
			log.Printf("contact: could not mark %s sent: %v", record.Id, err)
		}

		return e.JSON(http.StatusOK, map[string]any{"success": true})
	}
}
