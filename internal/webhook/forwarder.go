package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"calldesk/internal/apperr"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Payload is the normalized end-of-call record sent to the automation
// endpoint.
type Payload struct {
	Email        string          `json:"email"`
	PhoneNumber  string          `json:"phoneNumber"`
	Transcript   string          `json:"transcript"`
	CallID       string          `json:"callId"`
	CustomerName string          `json:"customerName"`
	Duration     float64         `json:"duration"`
	Status       string          `json:"status"`
	EndedAt      string          `json:"endedAt"`
	RecordingURL string          `json:"recordingUrl"`
	Analysis     json.RawMessage `json:"analysis"`
}

// Forwarder posts payloads to the downstream automation endpoint.
type Forwarder struct {
	url       string
	authToken string
	client    *http.Client
}

func NewForwarder(url, authToken string, timeout time.Duration) *Forwarder {
	return &Forwarder{
		url:       url,
		authToken: authToken,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (f *Forwarder) Configured() bool { return f != nil && f.url != "" }

// Forward makes a single attempt. Every failure wraps apperr.ErrWebhookForward.
func (f *Forwarder) Forward(ctx context.Context, payload Payload) error {
	if !f.Configured() {
		return fmt.Errorf("%w: WEBHOOK_URL is not set", apperr.ErrWebhookForward)
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: error marshaling webhook payload: %v", apperr.ErrWebhookForward, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("%w: error creating webhook request: %v", apperr.ErrWebhookForward, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if f.authToken != "" {
		req.Header.Set("Authorization", f.authToken)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: error sending webhook: %v", apperr.ErrWebhookForward, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: webhook failed with status %d: %s", apperr.ErrWebhookForward, resp.StatusCode, string(body))
	}
	return nil
}
