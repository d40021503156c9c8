package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Provider is a single delivery channel for user messages. Providers are
// tried in order by SmartNotifier; an error hands the message to the next one.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string
	// Send delivers one message to the phone number. It must respect ctx.
	Send(ctx context.Context, phone string, message string) error
}

// WhatsAppProvider posts messages to a WhatsApp-gateway style HTTP API.
type WhatsAppProvider struct {
	apiURL string
	token  string
	client *http.Client
}

// NewWhatsAppProvider creates a provider targeting the given gateway endpoint.
// The timeout bounds each individual send attempt.
func NewWhatsAppProvider(apiURL, token string, timeout time.Duration) *WhatsAppProvider {
	return &WhatsAppProvider{
		apiURL: apiURL,
		token:  token,
		client: &http.Client{Timeout: timeout},
	}
}

// Name identifies the provider in logs.
func (p *WhatsAppProvider) Name() string {
	return "whatsapp"
}

// Send posts the message as JSON to the gateway.
func (p *WhatsAppProvider) Send(ctx context.Context, phone string, message string) error {
	payload, err := json.Marshal(map[string]string{
		"to":   phone,
		"body": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}

	return nil
}

// ConsoleProvider writes messages to the log. It never fails, which makes it
// the terminal fallback of a provider chain and the default in development.
type ConsoleProvider struct {
	logger *slog.Logger
}

// NewConsoleProvider creates a provider that logs messages instead of
// sending them.
func NewConsoleProvider(logger *slog.Logger) *ConsoleProvider {
	return &ConsoleProvider{logger: logger}
}

// Name identifies the provider in logs.
func (p *ConsoleProvider) Name() string {
	return "console"
}

// Send logs the message.
func (p *ConsoleProvider) Send(_ context.Context, phone string, message string) error {
	p.logger.Info("notification", "phone", phone, "message", message)
	return nil
}
