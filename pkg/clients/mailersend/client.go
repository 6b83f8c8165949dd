package mailersend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cyclehub/inventoryman/internal/config"
)

// Client exposes the email operations used by the application.
type Client interface {
	SendEmail(ctx context.Context, req SendEmailRequest) error
}

// APIClient is a resty-backed implementation of Client for the MailerSend API.
type APIClient struct {
	httpClient *resty.Client
	fromEmail  string
	fromName   string
}

// NewClient builds a MailerSend API client using the provided configuration values.
func NewClient(cfg config.MailConfig) *APIClient {
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		fromEmail:  cfg.FromEmail,
		fromName:   cfg.FromName,
	}
}

// SendEmailRequest represents a simplified outbound email payload.
type SendEmailRequest struct {
	ToEmail string
	ToName  string
	Subject string
	HTML    string
	Text    string
}

// apiError represents a MailerSend error payload.
type apiError struct {
	Message string         `json:"message"`
	Errors  map[string]any `json:"errors"`
}

// SendEmail submits one transactional email.
func (c *APIClient) SendEmail(ctx context.Context, req SendEmailRequest) error {
	payload := map[string]any{
		"from": map[string]any{
			"email": c.fromEmail,
			"name":  c.fromName,
		},
		"to": []map[string]any{
			{"email": req.ToEmail, "name": req.ToName},
		},
		"subject": req.Subject,
		"html":    req.HTML,
		"text":    req.Text,
	}

	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetError(apiErr).
		Post("/v1/email")
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("mailersend api error: code=%d, message=%s", resp.StatusCode(), apiErr.Message)
	}

	return nil
}
