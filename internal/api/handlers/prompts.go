package handlers

import (
	"context"
	"net/http"

	"calldesk/internal/authoring"
	"calldesk/internal/scenario"

	"github.com/go-chi/chi/v5"
)

// PromptDrafter generates a scenario prompt from a description.
type PromptDrafter interface {
	Generate(ctx context.Context, description, scenarioType string) (authoring.Draft, error)
}

type generatePromptRequest struct {
	Description  string `json:"description"`
	ScenarioType string `json:"scenarioType"`
}

func HandleListScenarios(reg *scenario.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := reg.All(r.Context())
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, all)
	})
}

func HandleGetScenario(reg *scenario.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := reg.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	})
}

func HandleSaveScenario(reg *scenario.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var s scenario.Scenario
		if err := decodeJSON(r, &s); err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		saved, err := reg.SaveCustom(r.Context(), s)
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, saved)
	})
}

func HandleDeleteScenario(reg *scenario.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := reg.DeleteCustom(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func HandleGeneratePrompt(drafter PromptDrafter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generatePromptRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		draft, err := drafter.Generate(r.Context(), req.Description, req.ScenarioType)
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, draft)
	})
}
