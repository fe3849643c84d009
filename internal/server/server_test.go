package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"calldesk/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		Port:               "0",
		Environment:        "test",
		VapiBaseURL:        "http://127.0.0.1:1",
		AnalysisProvider:   "openai",
		AuthoringProvider:  "gemini",
		DatabasePath:       filepath.Join(dir, "db", "reports.db"),
		ScenarioFile:       filepath.Join(dir, "scenarios.json"),
		HTTPTimeout:        time.Second,
		LLMTimeout:         time.Second,
		LivePollInterval:   time.Second,
		CORSAllowedOrigins: []string{"*"},
	}
}

func TestServerRoutes(t *testing.T) {
	srv, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { srv.Shutdown(context.Background()) })

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		rr := httptest.NewRecorder()
		srv.http.Handler.ServeHTTP(rr, req)
		return rr
	}

	rr := do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	rr = do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(http.MethodGet, "/api/scenarios", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var scenarios []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &scenarios))
	assert.Len(t, scenarios, 4)

	rr = do(http.MethodGet, "/api/reports", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	// No platform credentials.
	rr = do(http.MethodGet, "/api/status", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"isConnected":false`)

	rr = do(http.MethodPost, "/api/calls", `{"scenarioId":"payment-reminder","customer":{"name":"Omar","phoneNumber":"+966501234567"}}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "server_misconfiguration")

	// No LLM keys.
	rr = do(http.MethodPost, "/api/scenarios/generate", `{"description":"collect survey answers"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `LLM provider \"gemini\" is not configured`)

	rr = do(http.MethodGet, "/api/reports/unknown", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMemoryReportStore(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabasePath = MemoryDatabase

	srv, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, srv.Shutdown(context.Background()))
}

func TestOriginChecker(t *testing.T) {
	req := func(origin string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/api/calls/live", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		return r
	}

	all := originChecker([]string{"*"})
	assert.True(t, all(req("https://evil.example.com")))

	only := originChecker([]string{"https://dash.example.com"})
	assert.True(t, only(req("https://dash.example.com")))
	assert.True(t, only(req("")))
	assert.False(t, only(req("https://evil.example.com")))
}

func TestModelFor(t *testing.T) {
	cfg := &config.Config{OpenAIModel: "gpt-4o", GeminiModel: "gemini-2.5-flash", AnthropicModel: "claude"}
	assert.Equal(t, "gpt-4o", modelFor(cfg, "openai"))
	assert.Equal(t, "gemini-2.5-flash", modelFor(cfg, "gemini"))
	assert.Equal(t, "claude", modelFor(cfg, "anthropic"))
	assert.Empty(t, modelFor(cfg, "other"))
}
