// Package catalog lists calls enriched with their full detail records,
// for the transcript and recording views.
package catalog

import (
	"context"

	"calldesk/internal/vapi"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultLimit = 100
	fetchWorkers = 8
)

// Platform is satisfied by *vapi.Client.
type Platform interface {
	ListCalls(ctx context.Context, limit int, assistantID string) ([]vapi.Call, error)
	GetCall(ctx context.Context, id string) (*vapi.Call, error)
}

type Catalog struct {
	platform Platform
}

func New(platform Platform) *Catalog {
	return &Catalog{platform: platform}
}

// Transcripts returns the calls that have conversation messages. Every
// listed call is re-fetched because summaries omit messages.
func (c *Catalog) Transcripts(ctx context.Context, limit int, assistantID string) ([]vapi.Call, error) {
	calls, err := c.list(ctx, limit, assistantID)
	if err != nil {
		return nil, err
	}
	detailed := c.withDetails(ctx, calls, func(vapi.Call) bool { return true })

	out := []vapi.Call{}
	for _, call := range detailed {
		if len(call.Messages) > 0 {
			out = append(out, call)
		}
	}
	return out, nil
}

// Recordings returns the calls that have a recording. Only calls whose
// summary lacks a recording URL are re-fetched.
func (c *Catalog) Recordings(ctx context.Context, limit int, assistantID string) ([]vapi.Call, error) {
	calls, err := c.list(ctx, limit, assistantID)
	if err != nil {
		return nil, err
	}
	detailed := c.withDetails(ctx, calls, func(call vapi.Call) bool { return call.Recording() == "" })

	out := []vapi.Call{}
	for _, call := range detailed {
		if call.Recording() != "" {
			out = append(out, call)
		}
	}
	return out, nil
}

func (c *Catalog) list(ctx context.Context, limit int, assistantID string) ([]vapi.Call, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	calls, err := c.platform.ListCalls(ctx, limit, assistantID)
	if err != nil {
		return nil, err
	}
	if len(calls) > limit {
		calls = calls[:limit]
	}
	return calls, nil
}

// withDetails replaces each call matching need with its detail record. A
// failed detail fetch keeps the summary. Order is preserved.
func (c *Catalog) withDetails(ctx context.Context, calls []vapi.Call, need func(vapi.Call) bool) []vapi.Call {
	out := make([]vapi.Call, len(calls))
	copy(out, calls)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchWorkers)
	for i := range out {
		if out[i].ID == "" || !need(out[i]) {
			continue
		}
		g.Go(func() error {
			detail, err := c.platform.GetCall(gctx, out[i].ID)
			if err != nil {
				zap.L().Warn("error fetching call details", zap.String("call_id", out[i].ID), zap.Error(err))
				return nil
			}
			out[i] = *detail
			return nil
		})
	}
	_ = g.Wait()
	return out
}
