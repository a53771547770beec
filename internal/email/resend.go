package email

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// ResendConfig holds the configuration for the Resend email sender.
type ResendConfig struct {
	// APIKey is the Resend API key.
	APIKey string
	// BaseURL overrides the default API endpoint when set.
	BaseURL string
	// Timeout bounds each API call (default: 10s). Ignored when HTTPClient is set.
	Timeout time.Duration
	// HTTPClient is an optional custom HTTP client.
	HTTPClient *http.Client
}

// ResendSender implements Sender using the Resend API.
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a new ResendSender.
func NewResendSender(cfg ResendConfig) (*ResendSender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("resend: API key is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	client := resend.NewCustomClient(httpClient, cfg.APIKey)
	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("resend: invalid base URL: %w", err)
		}
		client.BaseURL = base
	}

	return &ResendSender{client: client}, nil
}

// Send sends an email via the Resend API.
func (s *ResendSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTMLBody,
		Text:    msg.TextBody,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return Receipt{}, fmt.Errorf("resend: failed to send email: %w", err)
	}

	return Receipt{ID: sent.Id}, nil
}
