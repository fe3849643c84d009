// Package vapi is a small client for the voice calling platform's REST API.
package vapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"calldesk/internal/apperr"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.vapi.ai"
	providerName   = "vapi"

	privateKeyHint = "Authentication failed. Please ensure you're using your PRIVATE API key (not the public key) from the VAPI dashboard. Go to dashboard.vapi.ai → API Keys → Copy the PRIVATE key."
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New returns a client whose every request is bounded by timeout.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// CreatePhoneCall starts an outbound call.
func (c *Client) CreatePhoneCall(ctx context.Context, req *CreateCallRequest) (*Call, error) {
	var call Call
	if err := c.do(ctx, http.MethodPost, "/call/phone", nil, req, &call); err != nil {
		return nil, err
	}
	zap.L().Info("call created", zap.String("call_id", call.ID), zap.String("status", call.Status))
	return &call, nil
}

func (c *Client) GetCall(ctx context.Context, id string) (*Call, error) {
	if id == "" {
		return nil, apperr.InvalidInput("call id is required")
	}
	var call Call
	if err := c.do(ctx, http.MethodGet, "/call/"+url.PathEscape(id), nil, nil, &call); err != nil {
		return nil, err
	}
	return &call, nil
}

// ListCalls returns call summaries, newest first. Zero limit and empty
// assistantID are left out of the query.
func (c *Client) ListCalls(ctx context.Context, limit int, assistantID string) ([]Call, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if assistantID != "" {
		q.Set("assistantId", assistantID)
	}
	var calls []Call
	if err := c.do(ctx, http.MethodGet, "/call", q, nil, &calls); err != nil {
		return nil, err
	}
	return calls, nil
}

func (c *Client) GetAssistant(ctx context.Context, id string) (*Assistant, error) {
	var a Assistant
	if err := c.do(ctx, http.MethodGet, "/assistant/"+url.PathEscape(id), nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// CheckConnection fetches the configured assistant to prove the key works.
// A rejected key is reported with a hint to use the private key.
func (c *Client) CheckConnection(ctx context.Context, assistantID string) (ConnectionStatus, error) {
	if c.apiKey == "" || assistantID == "" {
		return ConnectionStatus{}, apperr.Configuration("VAPI credentials not configured. Please add VAPI_API_KEY and VAPI_ASSISTANT_ID to your environment variables.")
	}

	a, err := c.GetAssistant(ctx, assistantID)
	if err != nil {
		var upstream *apperr.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusUnauthorized {
			return ConnectionStatus{}, &apperr.UpstreamError{
				Provider:   providerName,
				StatusCode: http.StatusUnauthorized,
				Message:    privateKeyHint,
			}
		}
		return ConnectionStatus{}, err
	}

	name := a.Name
	if name == "" {
		name = "Agent Omar"
	}
	return ConnectionStatus{IsConnected: true, AssistantName: name, AssistantID: assistantID}, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.apiKey == "" {
		return apperr.Configuration("VAPI credentials not configured")
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &apperr.UpstreamError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperr.UpstreamError{Provider: providerName, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		zap.L().Warn("calling platform returned an error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return &apperr.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
		}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &apperr.UpstreamError{Provider: providerName, StatusCode: resp.StatusCode, Message: "malformed response", Err: err}
	}
	return nil
}

// errorMessage pulls the human readable part out of an error body. The
// platform sends message either as a string or a list of strings.
func errorMessage(body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		var s string
		if json.Unmarshal(payload.Message, &s) == nil && s != "" {
			return s
		}
		var list []string
		if json.Unmarshal(payload.Message, &list) == nil && len(list) > 0 {
			return strings.Join(list, "; ")
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(body))
}
