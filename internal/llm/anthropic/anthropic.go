package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"calldesk/internal/apperr"
	"calldesk/internal/llm"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 4096
)

type Provider struct {
	client anthropic.Client
}

// New returns a provider that sends every request once. Caller options are
// applied after the defaults and may replace the HTTP client.
func New(apiKey string, opts ...option.RequestOption) *Provider {
	defaults := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}),
	}
	return &Provider{client: anthropic.NewClient(append(defaults, opts...)...)}
}

func (p *Provider) Name() string {
	return "anthropic"
}

func (p *Provider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	model := req.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := int64(req.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	userPrompt := req.Prompt
	if req.JSON {
		userPrompt += "\n\nRespond with a single JSON object and nothing else."
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(float64(req.Temperature)),
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt))},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, upstream(err)
	}

	resp := &llm.Response{Model: string(msg.Model)}
	for _, block := range msg.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			resp.Content += b.Text
		}
	}
	return resp, nil
}

// errorBody is the envelope the Messages API wraps failures in.
type errorBody struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func upstream(err error) error {
	out := &apperr.UpstreamError{Provider: "anthropic", Err: err}
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		out.StatusCode = apiErr.StatusCode
		var body errorBody
		if json.Unmarshal([]byte(apiErr.RawJSON()), &body) == nil {
			out.Message = body.Error.Message
		}
	}
	return out
}
