// Package apperr holds the error taxonomy shared by the dashboard services
// and the mapping from those errors to HTTP responses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrConfiguration  = errors.New("configuration error")
	ErrUpstream       = errors.New("upstream error")
	ErrNoTranscript   = errors.New("no transcript")
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrAnalysisParse  = errors.New("analysis parse error")
	ErrWebhookForward = errors.New("webhook forward error")
)

// Category tells the caller whose fault a failure was.
type Category string

const (
	CategoryCaller        Category = "caller_fault"
	CategoryProvider      Category = "provider_fault"
	CategoryMisconfigured Category = "server_misconfiguration"
	CategoryInternal      Category = "internal"
)

// ConfigurationError reports missing credentials or a malformed identifier.
// Message is meant to be shown to the operator as-is.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }
func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// Configuration builds a ConfigurationError with a formatted message.
func Configuration(format string, args ...any) error {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError is a non-success answer (or no answer) from the calling
// platform or an LLM provider. StatusCode is 0 when the request never
// got a response.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %d - %s", e.Provider, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrUpstream, e.Err}
	}
	return []error{ErrUpstream}
}

// NoTranscriptError means a call record did not carry enough transcript
// text to analyze.
type NoTranscriptError struct {
	CallID        string `json:"-"`
	Status        string `json:"status"`
	HasMessages   bool   `json:"hasMessages"`
	HasTranscript bool   `json:"hasTranscript"`
	HasArtifact   bool   `json:"hasArtifact"`
}

func (e *NoTranscriptError) Error() string {
	return "No transcript available for this call. The call may not have been completed or recorded properly."
}

func (e *NoTranscriptError) Unwrap() error { return ErrNoTranscript }

// InvalidInputError is a request the caller must fix. Message is safe to
// return as-is.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }
func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

func InvalidInput(format string, args ...any) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %q not found", e.Resource, e.ID) }
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func NotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// PublicMessage is the text shown to API callers for err. Internal
// failures get a generic message.
func PublicMessage(err error) string {
	var (
		cfg      *ConfigurationError
		invalid  *InvalidInputError
		notFound *NotFoundError
		noText   *NoTranscriptError
		upstream *UpstreamError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &cfg):
		return cfg.Message
	case errors.As(err, &invalid):
		return invalid.Message
	case errors.As(err, &notFound):
		return notFound.Error()
	case errors.As(err, &noText):
		return noText.Error()
	case errors.As(err, &upstream):
		if upstream.Message != "" {
			return upstream.Message
		}
		return upstream.Error()
	default:
		return "Internal server error"
	}
}

// Classify maps err to an HTTP status and a fault category.
func Classify(err error) (int, Category) {
	var upstream *UpstreamError
	switch {
	case err == nil:
		return http.StatusOK, ""
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNoTranscript):
		return http.StatusBadRequest, CategoryCaller
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, CategoryCaller
	case errors.Is(err, ErrConfiguration):
		return http.StatusInternalServerError, CategoryMisconfigured
	case errors.As(err, &upstream):
		if upstream.StatusCode >= 400 && upstream.StatusCode < 600 {
			return upstream.StatusCode, CategoryProvider
		}
		return http.StatusBadGateway, CategoryProvider
	default:
		return http.StatusInternalServerError, CategoryInternal
	}
}
