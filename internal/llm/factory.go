package llm

import (
	"context"
	"strings"

	"calldesk/internal/apperr"
)

// Registry holds the providers that have credentials configured.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider)}
	for _, p := range providers {
		if p != nil {
			r.providers[p.Name()] = p
		}
	}
	return r
}

// Get returns the provider registered under name. A provider whose key is
// not set is a configuration problem, not a caller mistake.
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[strings.ToLower(name)]
	if !ok {
		return nil, apperr.Configuration("LLM provider %q is not configured", name)
	}
	return p, nil
}

// Lookup is Get for wiring at startup. An unconfigured name yields a
// provider whose every call fails with the configuration error, so the
// endpoints that need it report the problem instead of the server refusing
// to start.
func (r *Registry) Lookup(name string) Provider {
	p, err := r.Get(name)
	if err != nil {
		return unavailable{name: strings.ToLower(name), err: err}
	}
	return p
}

type unavailable struct {
	name string
	err  error
}

func (u unavailable) Name() string { return u.name }

func (u unavailable) Generate(context.Context, Request) (*Response, error) {
	return nil, u.err
}
