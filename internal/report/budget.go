package report

import (
	"fmt"

	"github.com/tiktoken-go/tokenizer"
)

// TokenBudget caps how much transcript is sent to the model.
type TokenBudget struct {
	codec tokenizer.Codec
	max   int
}

// NewTokenBudget returns a budget of max tokens counted with the gpt-4o
// encoding. A non-positive max disables truncation.
func NewTokenBudget(max int) (*TokenBudget, error) {
	if max <= 0 {
		return &TokenBudget{}, nil
	}
	codec, err := tokenizer.Get(tokenizer.O200kBase)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer: %w", err)
	}
	return &TokenBudget{codec: codec, max: max}, nil
}

// Fit returns text cut to the budget, keeping the beginning of the call,
// and whether anything was cut.
func (b *TokenBudget) Fit(text string) (string, bool) {
	if b == nil || b.codec == nil {
		return text, false
	}
	ids, _, err := b.codec.Encode(text)
	if err != nil || len(ids) <= b.max {
		return text, false
	}
	cut, err := b.codec.Decode(ids[:b.max])
	if err != nil {
		return text, false
	}
	return cut, true
}
