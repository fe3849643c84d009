package handlers

import (
	"context"
	"net/http"

	"calldesk/internal/apperr"
	"calldesk/internal/callconfig"
	"calldesk/internal/metrics"
	"calldesk/internal/prompt"
	"calldesk/internal/scenario"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ScenarioLookup resolves a scenario id.
type ScenarioLookup interface {
	Get(ctx context.Context, id string) (scenario.Scenario, error)
}

type outboundCallRequest struct {
	ScenarioID string `json:"scenarioId"`
	// Scenario may carry a custom scenario the server has not stored.
	Scenario  *scenario.Scenario  `json:"scenario,omitempty"`
	Language  string              `json:"language"`
	Customer  callconfig.Customer `json:"customer"`
	Variables map[string]string   `json:"variables"`
}

func HandleOutboundCall(scenarios ScenarioLookup, builder *callconfig.Builder, platform CallPlatform) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req outboundCallRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorResponse(w, r, err)
			return
		}

		lang, err := prompt.ParseLanguage(req.Language)
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}

		sc, err := resolveScenario(r.Context(), scenarios, req)
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}

		payload, err := builder.Build(callconfig.Request{
			Scenario:  sc,
			Language:  lang,
			Customer:  req.Customer,
			Variables: req.Variables,
		})
		if err != nil {
			metrics.OutboundCalls.WithLabelValues(string(lang), "rejected").Inc()
			writeErrorResponse(w, r, err)
			return
		}

		zap.L().Info("creating call",
			zap.String("scenario", sc.Name),
			zap.String("language", string(lang)),
		)
		call, err := platform.CreatePhoneCall(r.Context(), payload)
		if err != nil {
			metrics.OutboundCalls.WithLabelValues(string(lang), "failed").Inc()
			writeErrorResponse(w, r, err)
			return
		}

		metrics.OutboundCalls.WithLabelValues(string(lang), "created").Inc()
		writeJSON(w, http.StatusOK, call)
	})
}

func resolveScenario(ctx context.Context, scenarios ScenarioLookup, req outboundCallRequest) (scenario.Scenario, error) {
	if req.Scenario != nil && req.Scenario.IsCustom && req.Scenario.SystemPrompt != "" {
		return *req.Scenario, nil
	}
	if req.ScenarioID == "" {
		return scenario.Scenario{}, apperr.InvalidInput("Invalid scenario selected")
	}
	return scenarios.Get(ctx, req.ScenarioID)
}

func HandleListCalls(platform CallPlatform, defaultAssistant string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryLimit(r, 100)
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		calls, err := platform.ListCalls(r.Context(), limit, queryAssistant(r, defaultAssistant))
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, calls)
	})
}

func HandleGetCall(platform CallPlatform) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call, err := platform.GetCall(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, call)
	})
}
