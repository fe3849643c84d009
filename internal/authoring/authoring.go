// Package authoring drafts custom scenario prompts from a free-text
// description using a language model.
package authoring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"calldesk/internal/ai"
	"calldesk/internal/apperr"
	"calldesk/internal/llm"
	"calldesk/internal/prompt"

	"go.uber.org/zap"
)

// Draft is a generated scenario prompt and the variables found in it.
type Draft struct {
	Prompt         string   `json:"prompt"`
	RequiredFields []string `json:"requiredFields"`
	OptionalFields []string `json:"optionalFields"`
}

type Generator struct {
	provider llm.Provider
	model    string
	timeout  time.Duration
}

// NewGenerator returns a Generator whose model requests are cut off after
// timeout. Zero means no bound.
func NewGenerator(provider llm.Provider, model string, timeout time.Duration) *Generator {
	return &Generator{provider: provider, model: model, timeout: timeout}
}

func (g *Generator) Generate(ctx context.Context, description, scenarioType string) (Draft, error) {
	if strings.TrimSpace(description) == "" {
		return Draft{}, apperr.InvalidInput("Description is required")
	}

	resp, err := llm.GenerateWithin(ctx, g.provider, g.timeout, llm.Request{
		Model:       g.model,
		System:      ai.GetAuthoringSystemPrompt(),
		Prompt:      ai.GenerateAuthoringPrompt(description, scenarioType),
		Temperature: 0.7,
	})
	if err != nil {
		return Draft{}, fmt.Errorf("generate prompt: %w", err)
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return Draft{}, &apperr.UpstreamError{Provider: g.provider.Name(), Message: "model returned an empty prompt"}
	}

	required, optional := prompt.SplitFields(prompt.Variables(text))
	zap.L().Info("scenario prompt drafted",
		zap.String("provider", g.provider.Name()),
		zap.Int("required_fields", len(required)),
		zap.Int("optional_fields", len(optional)),
	)
	return Draft{Prompt: text, RequiredFields: required, OptionalFields: optional}, nil
}
