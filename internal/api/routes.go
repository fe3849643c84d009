package api

import (
	"net/http"

	h "calldesk/internal/api/handlers"
	"calldesk/internal/callconfig"
	"calldesk/internal/middleware"
	"calldesk/internal/report"
	"calldesk/internal/scenario"
	"calldesk/internal/webhook"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Deps are the services the HTTP surface is built from.
type Deps struct {
	Platform       h.CallPlatform
	Status         h.ConnectionChecker
	AssistantID    string
	Scenarios      *scenario.Registry
	CallBuilder    *callconfig.Builder
	Catalog        h.CallCatalog
	Reports        h.ReportGenerator
	ReportStore    report.Store
	Drafter        h.PromptDrafter
	Webhook        *webhook.Receiver
	SMS            h.SMSSender
	Payments       h.PaymentLinker
	Live           http.Handler
	AllowedOrigins []string
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(chimw.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: d.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Content-Disposition"},
	}).Handler)
	r.Use(func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, "calldesk")
	})

	r.Handle("/healthz", h.HandleHealth())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/status", h.HandleStatus(d.Status, d.AssistantID))

		// Scenarios
		r.Method(http.MethodGet, "/scenarios", h.HandleListScenarios(d.Scenarios))
		r.Method(http.MethodPost, "/scenarios", h.HandleSaveScenario(d.Scenarios))
		r.Method(http.MethodPost, "/scenarios/generate", h.HandleGeneratePrompt(d.Drafter))
		r.Method(http.MethodGet, "/scenarios/{id}", h.HandleGetScenario(d.Scenarios))
		r.Method(http.MethodDelete, "/scenarios/{id}", h.HandleDeleteScenario(d.Scenarios))

		// Calls
		r.Method(http.MethodPost, "/calls", h.HandleOutboundCall(d.Scenarios, d.CallBuilder, d.Platform))
		r.Method(http.MethodGet, "/calls", h.HandleListCalls(d.Platform, d.AssistantID))
		r.Method(http.MethodGet, "/calls/live", d.Live)
		r.Method(http.MethodGet, "/calls/{id}", h.HandleGetCall(d.Platform))
		r.Method(http.MethodGet, "/transcripts", h.HandleTranscripts(d.Catalog, d.AssistantID))
		r.Method(http.MethodGet, "/recordings", h.HandleRecordings(d.Catalog, d.AssistantID))
		r.Method(http.MethodGet, "/analytics", h.HandleAnalytics(d.Platform, d.AssistantID))

		// Reports
		r.Method(http.MethodPost, "/reports", h.HandleGenerateReport(d.Reports))
		r.Method(http.MethodGet, "/reports", h.HandleListReports(d.ReportStore))
		r.Method(http.MethodGet, "/reports/export.xlsx", h.HandleExportReports(d.ReportStore))
		r.Method(http.MethodGet, "/reports/{id}", h.HandleGetReport(d.ReportStore))
		r.Method(http.MethodDelete, "/reports/{id}", h.HandleDeleteReport(d.ReportStore))

		r.Method(http.MethodPost, "/webhook", h.HandleWebhook(d.Webhook))

		// Twilio
		r.Method(http.MethodPost, "/sms", h.HandleSendSMS(d.SMS))

		// Stripe
		r.Method(http.MethodPost, "/payment-links", h.HandleCreatePaymentLink(d.Payments))
	})

	return r
}
