// Package report generates and stores quality-assessment reports for
// finished calls.
package report

import (
	"context"
	"time"
)

// Report is the stored assessment of one call. It is keyed by CallID.
type Report struct {
	ID            string    `json:"id"`
	CallID        string    `json:"callId"`
	CustomerName  string    `json:"customerName"`
	PhoneNumber   string    `json:"phoneNumber"`
	CustomerEmail string    `json:"customerEmail"`
	Duration      int       `json:"duration"`
	Status        string    `json:"status"`
	CreatedAt     string    `json:"createdAt"`
	Language      string    `json:"language"`
	Transcript    string    `json:"transcript"`
	RecordingURL  string    `json:"recordingUrl"`
	Analysis      Analysis  `json:"analysis"`
	GeneratedAt   time.Time `json:"generatedAt"`

	AnalysisProvider string `json:"analysisProvider,omitempty"`
	// Degraded is set when Analysis is the fallback rather than model output.
	Degraded bool `json:"degraded,omitempty"`
}

// Store persists reports. Saving a report for a call that already has one
// replaces it. List returns the most recently saved first.
type Store interface {
	Save(ctx context.Context, r *Report) error
	List(ctx context.Context) ([]Report, error)
	Get(ctx context.Context, callID string) (*Report, error)
	Delete(ctx context.Context, callID string) error
}
