package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"calldesk/internal/report"

	"github.com/go-chi/chi/v5"
)

type ReportGenerator interface {
	Generate(ctx context.Context, callID string) (*report.Report, error)
}

type generateReportRequest struct {
	CallID string `json:"callId" validate:"required"`
}

func HandleGenerateReport(gen ReportGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateReportRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		rep, err := gen.Generate(r.Context(), req.CallID)
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rep)
	})
}

func HandleListReports(store report.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reports, err := store.List(r.Context())
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reports)
	})
}

func HandleGetReport(store report.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rep, err := store.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rep)
	})
}

func HandleDeleteReport(store report.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// HandleExportReports renders every stored report as a spreadsheet. The
// workbook is buffered so a failure can still produce a JSON error.
func HandleExportReports(store report.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reports, err := store.List(r.Context())
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}

		var buf bytes.Buffer
		if err := report.WriteXLSX(&buf, reports); err != nil {
			writeErrorResponse(w, r, fmt.Errorf("export reports: %w", err))
			return
		}

		name := fmt.Sprintf("call-reports-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		buf.WriteTo(w)
	})
}
