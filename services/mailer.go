package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrMailNotConfigured is returned when the relay endpoint is missing.
var ErrMailNotConfigured = errors.New("mail API endpoint not configured")

// ContactMessage is the payload relayed to the external mail-sending API.
type ContactMessage struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	Website        string `json:"website"`
	CustomTemplate bool   `json:"customTemplate"`
	TemplateType   string `json:"templateType"`
}

// Validate checks the fields a submission must carry before it is relayed.
func (m ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("name is required")
	}
	email := strings.TrimSpace(m.Email)
	if email == "" {
		return errors.New("email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return fmt.Errorf("email %q is not valid", email)
	}
	if strings.TrimSpace(m.Message) == "" {
		return errors.New("message is required")
	}
	return nil
}

// MailClient posts contact-form submissions to the external mail API.
// Delivery is best-effort: one attempt with a request timeout, no retries.
type MailClient struct {
	endpoint    string
	apiKey      string
	bearerToken string
	httpClient  *http.Client
}

// NewMailClient builds a client for the given endpoint and credentials.
func NewMailClient(endpoint, apiKey, bearerToken string) *MailClient {
	return &MailClient{
		endpoint:    strings.TrimRight(endpoint, "/"),
		apiKey:      apiKey,
		bearerToken: bearerToken,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// mailAPIResponse covers both success shapes the mail API is known to
// return: {"success": true} and {"status": "success"}.
type mailAPIResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Send relays the message. A nil error means the API acknowledged delivery.
func (c *MailClient) Send(ctx context.Context, msg ContactMessage) error {
	if c.endpoint == "" {
		return ErrMailNotConfigured
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal contact message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send mail request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read mail response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("mail API returned status %d", resp.StatusCode)
	}

	var parsed mailAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("decode mail response: %w", err)
	}
	if !parsed.Success && parsed.Status != "success" {
		return fmt.Errorf("mail API rejected the message: %s", parsed.Message)
	}
	return nil
}
