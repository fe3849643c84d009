// Package llm is the narrow text-generation contract the dashboard needs
// from a language model provider.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"calldesk/internal/apperr"
)

type Request struct {
	Model       string
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
	// JSON asks the provider for a single JSON object when it supports a
	// structured response mode.
	JSON bool
}

type Response struct {
	Content string
	Model   string
}

type Provider interface {
	Name() string
	Generate(ctx context.Context, req Request) (*Response, error)
}

// GenerateWithin calls p with a deadline of timeout, or none when timeout is
// zero. A request cut off by the deadline is reported as a gateway timeout
// from the provider.
func GenerateWithin(ctx context.Context, p Provider, timeout time.Duration, req Request) (*Response, error) {
	if timeout <= 0 {
		return p.Generate(ctx, req)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := p.Generate(ctx, req)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, &apperr.UpstreamError{
			Provider:   p.Name(),
			StatusCode: http.StatusGatewayTimeout,
			Message:    fmt.Sprintf("%s did not answer within %s", p.Name(), timeout),
			Err:        err,
		}
	}
	return resp, err
}
