package scenario

import (
	"context"
	"fmt"
	"time"

	"calldesk/internal/apperr"
	"calldesk/internal/prompt"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Store persists custom scenarios in insertion order.
type Store interface {
	List(ctx context.Context) ([]Scenario, error)
	Append(ctx context.Context, s Scenario) error
	// Delete removes every scenario with the given id. Removing an absent
	// id is not an error.
	Delete(ctx context.Context, id string) error
}

type Registry struct {
	builtins []Scenario
	store    Store
	validate *validator.Validate
	now      func() time.Time
}

func NewRegistry(store Store) *Registry {
	return &Registry{
		builtins: Builtins(),
		store:    store,
		validate: validator.New(),
		now:      time.Now,
	}
}

// All returns built-in scenarios followed by custom ones.
func (r *Registry) All(ctx context.Context) ([]Scenario, error) {
	custom, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list custom scenarios: %w", err)
	}
	out := make([]Scenario, 0, len(r.builtins)+len(custom))
	out = append(out, r.builtins...)
	return append(out, custom...), nil
}

// Get returns the first scenario with id, searching built-ins first.
func (r *Registry) Get(ctx context.Context, id string) (Scenario, error) {
	all, err := r.All(ctx)
	if err != nil {
		return Scenario{}, err
	}
	for _, s := range all {
		if s.ID == id {
			return s, nil
		}
	}
	return Scenario{}, apperr.NotFound("scenario", id)
}

// SaveCustom appends s as a custom scenario. An empty id gets a
// time-ordered "custom-" id; ids are not checked for uniqueness. When the
// caller does not declare fields they are derived from the prompt.
func (r *Registry) SaveCustom(ctx context.Context, s Scenario) (Scenario, error) {
	if err := r.validate.Struct(s); err != nil {
		return Scenario{}, apperr.InvalidInput("scenario: %v", err)
	}

	if s.ID == "" {
		s.ID = "custom-" + ulid.Make().String()
	}
	if len(s.RequiredFields) == 0 && len(s.OptionalFields) == 0 {
		s.RequiredFields, s.OptionalFields = prompt.SplitFields(prompt.Variables(s.SystemPrompt))
	}
	now := r.now().UTC()
	s.IsCustom = true
	s.CreatedAt = &now

	if err := r.store.Append(ctx, s); err != nil {
		return Scenario{}, fmt.Errorf("save custom scenario: %w", err)
	}
	zap.L().Info("custom scenario saved", zap.String("id", s.ID), zap.String("name", s.Name))
	return s, nil
}

// DeleteCustom removes custom scenarios with id. Built-ins are never
// touched and unknown ids are ignored.
func (r *Registry) DeleteCustom(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete custom scenario: %w", err)
	}
	return nil
}
