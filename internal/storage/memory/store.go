// Package memory keeps reports in process memory. Everything is lost on
// restart.
package memory

import (
	"context"
	"sync"

	"calldesk/internal/apperr"
	"calldesk/internal/report"
)

// Store is an in-memory report.Store.
type Store struct {
	mu      sync.RWMutex
	reports []report.Report
}

var _ report.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// Save puts r at the front of the list, dropping any earlier report for
// the same call.
func (s *Store) Save(_ context.Context, r *report.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]report.Report, 0, len(s.reports)+1)
	out = append(out, *r)
	for _, existing := range s.reports {
		if existing.CallID != r.CallID {
			out = append(out, existing)
		}
	}
	s.reports = out
	return nil
}

func (s *Store) List(_ context.Context) ([]report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]report.Report, len(s.reports))
	copy(out, s.reports)
	return out, nil
}

func (s *Store) Get(_ context.Context, callID string) (*report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.reports {
		if s.reports[i].CallID == callID {
			r := s.reports[i]
			return &r, nil
		}
	}
	return nil, apperr.NotFound("report", callID)
}

func (s *Store) Delete(_ context.Context, callID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].CallID == callID {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("report", callID)
}
