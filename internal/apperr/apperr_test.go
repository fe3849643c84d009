package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		category Category
	}{
		{"invalid input", InvalidInput("callId is required"), http.StatusBadRequest, CategoryCaller},
		{"not found", NotFound("scenario", "x"), http.StatusNotFound, CategoryCaller},
		{"no transcript", &NoTranscriptError{CallID: "c1"}, http.StatusBadRequest, CategoryCaller},
		{"configuration", Configuration("VAPI credentials not configured"), http.StatusInternalServerError, CategoryMisconfigured},
		{"upstream with status", &UpstreamError{Provider: "vapi", StatusCode: 404}, http.StatusNotFound, CategoryProvider},
		{"upstream without status", &UpstreamError{Provider: "openai", Err: errors.New("dial tcp")}, http.StatusBadGateway, CategoryProvider},
		{"wrapped upstream", fmt.Errorf("fetch call: %w", &UpstreamError{Provider: "vapi", StatusCode: 401}), http.StatusUnauthorized, CategoryProvider},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, CategoryInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, category := Classify(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.category, category)
		})
	}
}

func TestUpstreamErrorUnwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := &UpstreamError{Provider: "vapi", Err: cause}

	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "vapi: timeout", err.Error())
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := &UpstreamError{Provider: "vapi", StatusCode: 400, Message: "customer.number must be a valid phone number"}
	assert.Equal(t, "vapi: 400 - customer.number must be a valid phone number", err.Error())
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "Call ID is required", PublicMessage(InvalidInput("Call ID is required")))
	assert.Equal(t, `report "c1" not found`, PublicMessage(fmt.Errorf("load: %w", NotFound("report", "c1"))))
	assert.Equal(t, "VAPI credentials not configured", PublicMessage(Configuration("VAPI credentials not configured")))
	assert.Equal(t, "Call not found", PublicMessage(&UpstreamError{Provider: "vapi", StatusCode: 404, Message: "Call not found"}))
	assert.Equal(t, "openai: dial tcp", PublicMessage(&UpstreamError{Provider: "openai", Err: errors.New("dial tcp")}))
	assert.Contains(t, PublicMessage(&NoTranscriptError{}), "No transcript available")
	assert.Equal(t, "Internal server error", PublicMessage(errors.New("disk full")))
}
