package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"calldesk/internal/apperr"
	"calldesk/internal/llm"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

type Provider struct {
	client *genai.Client
}

// New returns a provider for the Gemini API. baseURL may be empty.
func New(ctx context.Context, apiKey, baseURL string, httpClient *http.Client) (*Provider, error) {
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Provider{client: client}, nil
}

func (p *Provider) Name() string {
	return "gemini"
}

func (p *Provider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	model := req.Model
	if model == "" {
		model = defaultModel
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSON {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := p.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), cfg)
	if err != nil {
		out := &apperr.UpstreamError{Provider: "gemini", Err: err}
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			out.StatusCode = apiErr.Code
			out.Message = apiErr.Message
		}
		return nil, out
	}
	if resp == nil {
		return &llm.Response{Model: model}, nil
	}
	return &llm.Response{Content: resp.Text(), Model: model}, nil
}
