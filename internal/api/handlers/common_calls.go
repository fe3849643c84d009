package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"calldesk/internal/apperr"
	"calldesk/internal/middleware"
	"calldesk/internal/vapi"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

var validate = validator.New()

// CallPlatform is the part of the calling platform client the handlers use.
type CallPlatform interface {
	CreatePhoneCall(ctx context.Context, req *vapi.CreateCallRequest) (*vapi.Call, error)
	GetCall(ctx context.Context, id string) (*vapi.Call, error)
	ListCalls(ctx context.Context, limit int, assistantID string) ([]vapi.Call, error)
}

type errorResponse struct {
	Error    string          `json:"error"`
	Category apperr.Category `json:"category,omitempty"`
	Details  any             `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeErrorResponse classifies err and answers with the matching status
// and a JSON body.
func writeErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status, category := apperr.Classify(err)
	resp := errorResponse{Error: apperr.PublicMessage(err), Category: category}

	var noText *apperr.NoTranscriptError
	if errors.As(err, &noText) {
		resp.Details = noText
	}

	fields := []zap.Field{
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.String("category", string(category)),
		zap.Error(err),
	}
	if category == apperr.CategoryInternal || category == apperr.CategoryMisconfigured {
		zap.L().Error("request failed", fields...)
	} else {
		zap.L().Warn("request failed", fields...)
	}
	writeJSON(w, status, resp)
}

// decodeJSON reads a JSON body into dst and runs struct validation.
func decodeJSON(r *http.Request, dst any) error {
	body := io.LimitReader(r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return apperr.InvalidInput("Invalid request body: %v", err)
	}
	if err := validate.Struct(dst); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return nil
		}
		return apperr.InvalidInput("Invalid request: %v", err)
	}
	return nil
}

// queryLimit parses ?limit=, using fallback when absent.
func queryLimit(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, apperr.InvalidInput("limit must be a positive integer")
	}
	return n, nil
}

// queryAssistant returns ?assistantId= or the configured default.
func queryAssistant(r *http.Request, fallback string) string {
	if id := r.URL.Query().Get("assistantId"); id != "" {
		return id
	}
	return fallback
}

func HandleHealth() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
