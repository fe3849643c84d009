// Package server assembles the dashboard backend from configuration and
// owns its lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"time"

	"calldesk/internal/api"
	"calldesk/internal/authoring"
	"calldesk/internal/callconfig"
	"calldesk/internal/catalog"
	"calldesk/internal/config"
	"calldesk/internal/live"
	"calldesk/internal/llm"
	"calldesk/internal/llm/anthropic"
	"calldesk/internal/llm/gemini"
	"calldesk/internal/llm/openai"
	"calldesk/internal/notify"
	"calldesk/internal/payments"
	"calldesk/internal/report"
	"calldesk/internal/scenario"
	"calldesk/internal/storage/memory"
	"calldesk/internal/storage/sqlite"
	"calldesk/internal/tracing"
	"calldesk/internal/vapi"
	"calldesk/internal/webhook"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const analysisTemperature = 0.7

// MemoryDatabase as DATABASE_PATH keeps reports in process memory.
const MemoryDatabase = "memory"

type Server struct {
	cfg    *config.Config
	http   *http.Server
	poller *live.Poller

	closeStore    func() error
	pollCtx       context.Context
	stopPoller    context.CancelFunc
	shutdownTrace func(context.Context) error
}

func New(cfg *config.Config) (*Server, error) {
	shutdownTrace, err := tracing.Init("calldesk", cfg.TracingEnabled)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	platform := vapi.New(cfg.VapiBaseURL, cfg.VapiAPIKey, cfg.HTTPTimeout)

	scenarioStore, err := scenario.NewFileStore(cfg.ScenarioFile)
	if err != nil {
		return nil, err
	}
	scenarios := scenario.NewRegistry(scenarioStore)

	store, closeStore, err := openReportStore(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	providers, err := newLLMRegistry(cfg)
	if err != nil {
		closeStore()
		return nil, err
	}

	budget, err := report.NewTokenBudget(cfg.MaxTranscriptTokens)
	if err != nil {
		closeStore()
		return nil, err
	}
	generator := report.NewGenerator(platform, providers.Lookup(cfg.AnalysisProvider), store, report.GeneratorConfig{
		Model:       modelFor(cfg, cfg.AnalysisProvider),
		Temperature: analysisTemperature,
		Budget:      budget,
		Timeout:     cfg.LLMTimeout,
	})
	drafter := authoring.NewGenerator(providers.Lookup(cfg.AuthoringProvider), modelFor(cfg, cfg.AuthoringProvider), cfg.LLMTimeout)

	sms := notify.NewSMSSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	var followUp webhook.SMSSender
	if cfg.FollowUpSMSEnabled {
		followUp = sms
	}
	if cfg.WebhookURL == "" {
		zap.L().Warn("WEBHOOK_URL is not set, end-of-call reports will not be forwarded")
	}
	receiver := webhook.NewReceiver(webhook.NewForwarder(cfg.WebhookURL, cfg.WebhookAuthToken, cfg.HTTPTimeout), followUp)

	poller := live.NewPoller(platform, live.PollerConfig{
		Interval:    cfg.LivePollInterval,
		Timeout:     cfg.HTTPTimeout,
		AssistantID: cfg.VapiAssistantID,
	})
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(cfg.CORSAllowedOrigins),
	}

	router := api.NewRouter(api.Deps{
		Platform:    platform,
		Status:      platform,
		AssistantID: cfg.VapiAssistantID,
		Scenarios:   scenarios,
		CallBuilder: callconfig.NewBuilder(callconfig.Credentials{
			APIKey:        cfg.VapiAPIKey,
			AssistantID:   cfg.VapiAssistantID,
			PhoneNumberID: cfg.VapiPhoneNumberID,
			ServerURL:     cfg.VapiServerURL,
		}),
		Catalog:     catalog.New(platform),
		Reports:     generator,
		ReportStore: store,
		Drafter:     drafter,
		Webhook:     receiver,
		SMS:         sms,
		Payments: payments.NewService(payments.Config{
			LiveKey:     cfg.StripeAPIKeyLive,
			TestKey:     cfg.StripeAPIKeyTest,
			RedirectURL: cfg.PaymentRedirectURL,
		}),
		Live:           live.NewHub(poller, upgrader),
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	pollCtx, stopPoller := context.WithCancel(context.Background())
	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		poller:        poller,
		closeStore:    closeStore,
		pollCtx:       pollCtx,
		stopPoller:    stopPoller,
		shutdownTrace: shutdownTrace,
	}, nil
}

// openReportStore opens the sqlite report database at path, or an
// in-memory store when path is "memory".
func openReportStore(path string) (report.Store, func() error, error) {
	if path == MemoryDatabase {
		zap.L().Warn("reports are kept in memory and will not survive a restart")
		return memory.New(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	st, err := sqlite.New(path)
	if err != nil {
		return nil, nil, err
	}
	return st, st.Close, nil
}

// newLLMRegistry registers a provider for every configured key. They share
// one traced client whose timeout backs up the per-request deadline.
func newLLMRegistry(cfg *config.Config) (*llm.Registry, error) {
	client := &http.Client{
		Timeout:   cfg.LLMTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	var providers []llm.Provider
	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, openai.New(cfg.OpenAIAPIKey, "", client))
	}
	if cfg.GeminiAPIKey != "" {
		p, err := gemini.New(context.Background(), cfg.GeminiAPIKey, "", client)
		if err != nil {
			return nil, fmt.Errorf("init gemini: %w", err)
		}
		providers = append(providers, p)
	}
	if cfg.AnthropicAPIKey != "" {
		providers = append(providers, anthropic.New(cfg.AnthropicAPIKey, option.WithHTTPClient(client)))
	}
	return llm.NewRegistry(providers...), nil
}

func modelFor(cfg *config.Config, provider string) string {
	switch provider {
	case "openai":
		return cfg.OpenAIModel
	case "gemini":
		return cfg.GeminiModel
	case "anthropic":
		return cfg.AnthropicModel
	}
	return ""
}

// originChecker allows websocket upgrades from the configured CORS origins.
func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 || slices.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}

// Start runs the live poller and serves HTTP until Shutdown.
func (s *Server) Start() error {
	go s.poller.Run(s.pollCtx)

	zap.L().Info("starting server",
		zap.String("addr", s.http.Addr),
		zap.String("env", s.cfg.Environment),
		zap.String("analysis_provider", s.cfg.AnalysisProvider),
	)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, then releases the poller, the report
// database and the tracer.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopPoller()

	err := s.http.Shutdown(ctx)

	var g errgroup.Group
	g.Go(s.closeStore)
	g.Go(func() error { return s.shutdownTrace(ctx) })
	return errors.Join(err, g.Wait())
}
