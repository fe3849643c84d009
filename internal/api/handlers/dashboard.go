package handlers

import (
	"context"
	"errors"
	"net/http"

	"calldesk/internal/analytics"
	"calldesk/internal/apperr"
	"calldesk/internal/catalog"
	"calldesk/internal/vapi"
)

// ConnectionChecker reports whether the platform credentials work.
type ConnectionChecker interface {
	CheckConnection(ctx context.Context, assistantID string) (vapi.ConnectionStatus, error)
}

type CallCatalog interface {
	Transcripts(ctx context.Context, limit int, assistantID string) ([]vapi.Call, error)
	Recordings(ctx context.Context, limit int, assistantID string) ([]vapi.Call, error)
}

// HandleStatus answers the dashboard connectivity check. Failures keep the
// isConnected shape so the UI can show them inline.
func HandleStatus(checker ConnectionChecker, assistantID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st, err := checker.CheckConnection(r.Context(), assistantID)
		if err == nil {
			writeJSON(w, http.StatusOK, st)
			return
		}

		status, _ := apperr.Classify(err)
		if errors.Is(err, apperr.ErrConfiguration) {
			status = http.StatusBadRequest
		}
		resp := vapi.ConnectionStatus{IsConnected: false, Error: apperr.PublicMessage(err)}
		var upstream *apperr.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode != http.StatusUnauthorized {
			resp.Error = "Connection failed"
			resp.Details = upstream.Error()
		}
		writeJSON(w, status, resp)
	})
}

func HandleTranscripts(c CallCatalog, defaultAssistant string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryLimit(r, catalog.DefaultLimit)
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		calls, err := c.Transcripts(r.Context(), limit, queryAssistant(r, defaultAssistant))
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, calls)
	})
}

func HandleRecordings(c CallCatalog, defaultAssistant string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryLimit(r, catalog.DefaultLimit)
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		calls, err := c.Recordings(r.Context(), limit, queryAssistant(r, defaultAssistant))
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, calls)
	})
}

func HandleAnalytics(platform CallPlatform, defaultAssistant string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryLimit(r, analytics.DefaultLimit)
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		calls, err := platform.ListCalls(r.Context(), limit, queryAssistant(r, defaultAssistant))
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, analytics.Compute(calls))
	})
}
