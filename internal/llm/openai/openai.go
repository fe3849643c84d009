package openai

import (
	"context"
	"errors"
	"net/http"

	"calldesk/internal/apperr"
	"calldesk/internal/llm"

	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultModel = openai.GPT4o

type Provider struct {
	client *openai.Client
}

// New returns a provider backed by the chat completions API. baseURL may
// be empty.
func New(apiKey, baseURL string, httpClient *http.Client) *Provider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	cfg.HTTPClient = httpClient
	return &Provider{client: openai.NewClientWithConfig(cfg)}
}

func (p *Provider) Name() string {
	return "openai"
}

func (p *Provider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	model := req.Model
	if model == "" {
		model = defaultModel
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	}
	if req.JSON {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, upstream(err)
	}
	if len(resp.Choices) == 0 {
		return &llm.Response{Model: resp.Model}, nil
	}
	return &llm.Response{Content: resp.Choices[0].Message.Content, Model: resp.Model}, nil
}

func upstream(err error) error {
	out := &apperr.UpstreamError{Provider: "openai", Err: err}
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		out.StatusCode = apiErr.HTTPStatusCode
		out.Message = apiErr.Message
	case errors.As(err, &reqErr):
		out.StatusCode = reqErr.HTTPStatusCode
	}
	return out
}
