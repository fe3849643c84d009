package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"calldesk/internal/apperr"
	"calldesk/internal/callconfig"
	"calldesk/internal/report"
	"calldesk/internal/scenario"
	"calldesk/internal/storage/memory"
	"calldesk/internal/vapi"
	"calldesk/internal/webhook"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phoneNumberID = "8f2c7a4e-1b3d-4e5f-9a6b-7c8d9e0f1a2b"

type fakePlatform struct {
	created   *vapi.CreateCallRequest
	calls     []vapi.Call
	limit     int
	assistant string
	err       error
}

func (f *fakePlatform) CreatePhoneCall(_ context.Context, req *vapi.CreateCallRequest) (*vapi.Call, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = req
	return &vapi.Call{ID: "call-1", Status: "queued"}, nil
}

func (f *fakePlatform) GetCall(_ context.Context, id string) (*vapi.Call, error) {
	for _, c := range f.calls {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, apperr.NotFound("call", id)
}

func (f *fakePlatform) ListCalls(_ context.Context, limit int, assistantID string) ([]vapi.Call, error) {
	f.limit, f.assistant = limit, assistantID
	return f.calls, f.err
}

func newBuilder() *callconfig.Builder {
	return callconfig.NewBuilder(callconfig.Credentials{
		APIKey:        "key",
		AssistantID:   "assistant-1",
		PhoneNumberID: phoneNumberID,
	})
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// withRoute mounts h on pattern so chi URL params resolve.
func withRoute(method, pattern string, h http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Method(method, pattern, h)
	return r
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestHandleOutboundCall(t *testing.T) {
	platform := &fakePlatform{}
	reg := scenario.NewRegistry(scenario.NewMemoryStore())
	h := HandleOutboundCall(reg, newBuilder(), platform)

	body := `{
		"scenarioId": "payment-reminder",
		"language": "ar",
		"customer": {"name": "Omar", "phoneNumber": "+966501234567", "email": "omar@example.com"},
		"variables": {"customer_name": "Omar", "account_balance": "500 SAR", "customer_email": "omar@example.com"}
	}`
	rr := serve(t, h, http.MethodPost, "/api/calls", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var call vapi.Call
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &call))
	assert.Equal(t, "call-1", call.ID)

	require.NotNil(t, platform.created)
	assert.Equal(t, "+966501234567", platform.created.Customer.Number)
	assert.Equal(t, "ar", platform.created.AssistantOverrides.Metadata["language"])
	assert.NotContains(t, platform.created.AssistantOverrides.VariableValues, callconfig.EmailVariable)
}

func TestHandleOutboundCallCustomScenario(t *testing.T) {
	platform := &fakePlatform{}
	h := HandleOutboundCall(scenario.NewRegistry(scenario.NewMemoryStore()), newBuilder(), platform)

	body := `{
		"scenario": {"id": "custom-x", "name": "Survey", "systemPrompt": "Ask {customer_name} about {topic}.", "isCustom": true},
		"customer": {"name": "Sara", "phoneNumber": "+15551234567"},
		"variables": {"customer_name": "Sara"}
	}`
	rr := serve(t, h, http.MethodPost, "/api/calls", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	msgs := platform.created.AssistantOverrides.Model.Messages
	require.Len(t, msgs, 1)
	assert.Equal(t, "Ask Sara about Not available.", msgs[0].Content)
}

func TestHandleOutboundCallErrors(t *testing.T) {
	reg := scenario.NewRegistry(scenario.NewMemoryStore())
	valid := `"customer": {"name": "Omar", "phoneNumber": "+966501234567"}`

	cases := []struct {
		name    string
		builder *callconfig.Builder
		body    string
		status  int
	}{
		{"malformed body", newBuilder(), `{`, http.StatusBadRequest},
		{"bad phone", newBuilder(), `{"scenarioId":"payment-reminder","customer":{"name":"Omar","phoneNumber":"0501"}}`, http.StatusBadRequest},
		{"unknown language", newBuilder(), `{"scenarioId":"payment-reminder","language":"fr",` + valid + `}`, http.StatusBadRequest},
		{"missing scenario", newBuilder(), `{` + valid + `}`, http.StatusBadRequest},
		{"unknown scenario", newBuilder(), `{"scenarioId":"nope",` + valid + `}`, http.StatusNotFound},
		{"no credentials", callconfig.NewBuilder(callconfig.Credentials{}), `{"scenarioId":"payment-reminder",` + valid + `}`, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			platform := &fakePlatform{}
			rr := serve(t, HandleOutboundCall(reg, tc.builder, platform), http.MethodPost, "/api/calls", tc.body)
			assert.Equal(t, tc.status, rr.Code, rr.Body.String())
			assert.Nil(t, platform.created)
			assert.NotEmpty(t, decodeError(t, rr).Error)
		})
	}
}

func TestHandleOutboundCallUpstreamFailure(t *testing.T) {
	platform := &fakePlatform{err: &apperr.UpstreamError{Provider: "vapi", StatusCode: http.StatusBadRequest, Message: "Couldn't get phone number"}}
	h := HandleOutboundCall(scenario.NewRegistry(scenario.NewMemoryStore()), newBuilder(), platform)

	rr := serve(t, h, http.MethodPost, "/api/calls",
		`{"scenarioId":"account-inquiry","customer":{"name":"Omar","phoneNumber":"+966501234567"}}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, "Couldn't get phone number", resp.Error)
	assert.Equal(t, apperr.CategoryProvider, resp.Category)
}

func TestHandleListCalls(t *testing.T) {
	platform := &fakePlatform{calls: []vapi.Call{{ID: "a"}, {ID: "b"}}}

	rr := serve(t, HandleListCalls(platform, "default-assistant"), http.MethodGet, "/api/calls", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 100, platform.limit)
	assert.Equal(t, "default-assistant", platform.assistant)

	rr = serve(t, HandleListCalls(platform, "default-assistant"), http.MethodGet, "/api/calls?limit=5&assistantId=other", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 5, platform.limit)
	assert.Equal(t, "other", platform.assistant)

	rr = serve(t, HandleListCalls(platform, ""), http.MethodGet, "/api/calls?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleGetCall(t *testing.T) {
	platform := &fakePlatform{calls: []vapi.Call{{ID: "call-7", Status: "ended"}}}
	h := withRoute(http.MethodGet, "/api/calls/{id}", HandleGetCall(platform))

	rr := serve(t, h, http.MethodGet, "/api/calls/call-7", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ended"`)

	rr = serve(t, h, http.MethodGet, "/api/calls/missing", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

type fakeChecker struct {
	status vapi.ConnectionStatus
	err    error
}

func (f fakeChecker) CheckConnection(context.Context, string) (vapi.ConnectionStatus, error) {
	return f.status, f.err
}

func TestHandleStatus(t *testing.T) {
	cases := []struct {
		name    string
		checker fakeChecker
		status  int
		want    vapi.ConnectionStatus
	}{
		{
			name:    "connected",
			checker: fakeChecker{status: vapi.ConnectionStatus{IsConnected: true, AssistantName: "Agent Omar", AssistantID: "a1"}},
			status:  http.StatusOK,
			want:    vapi.ConnectionStatus{IsConnected: true, AssistantName: "Agent Omar", AssistantID: "a1"},
		},
		{
			name:    "not configured",
			checker: fakeChecker{err: apperr.Configuration("VAPI credentials not configured")},
			status:  http.StatusBadRequest,
			want:    vapi.ConnectionStatus{Error: "VAPI credentials not configured"},
		},
		{
			name:    "wrong key",
			checker: fakeChecker{err: &apperr.UpstreamError{Provider: "vapi", StatusCode: http.StatusUnauthorized, Message: "use the private key"}},
			status:  http.StatusUnauthorized,
			want:    vapi.ConnectionStatus{Error: "use the private key"},
		},
		{
			name:    "platform down",
			checker: fakeChecker{err: &apperr.UpstreamError{Provider: "vapi", StatusCode: http.StatusServiceUnavailable, Message: "unavailable"}},
			status:  http.StatusServiceUnavailable,
			want:    vapi.ConnectionStatus{Error: "Connection failed", Details: (&apperr.UpstreamError{Provider: "vapi", StatusCode: http.StatusServiceUnavailable, Message: "unavailable"}).Error()},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(t, HandleStatus(tc.checker, "a1"), http.MethodGet, "/api/status", "")
			assert.Equal(t, tc.status, rr.Code)
			var got vapi.ConnectionStatus
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHandleAnalytics(t *testing.T) {
	platform := &fakePlatform{calls: []vapi.Call{
		{ID: "a", Status: "ended", CreatedAt: "2026-03-01T10:00:00Z"},
		{ID: "b", Status: "in-progress", CreatedAt: "2026-03-01T11:00:00Z"},
	}}
	rr := serve(t, HandleAnalytics(platform, "a1"), http.MethodGet, "/api/analytics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1000, platform.limit)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.EqualValues(t, 2, got["totalCalls"])
}

type fakeCatalog struct{ limit int }

func (f *fakeCatalog) Transcripts(_ context.Context, limit int, _ string) ([]vapi.Call, error) {
	f.limit = limit
	return []vapi.Call{{ID: "t1"}}, nil
}

func (f *fakeCatalog) Recordings(_ context.Context, limit int, _ string) ([]vapi.Call, error) {
	f.limit = limit
	return []vapi.Call{{ID: "r1", RecordingURL: "https://rec.example.com/r1.wav"}}, nil
}

func TestHandleCatalog(t *testing.T) {
	c := &fakeCatalog{}

	rr := serve(t, HandleTranscripts(c, ""), http.MethodGet, "/api/transcripts?limit=20", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 20, c.limit)
	assert.Contains(t, rr.Body.String(), `"id":"t1"`)

	rr = serve(t, HandleRecordings(c, ""), http.MethodGet, "/api/recordings", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 100, c.limit)
	assert.Contains(t, rr.Body.String(), "r1.wav")
}

func TestScenarioHandlers(t *testing.T) {
	reg := scenario.NewRegistry(scenario.NewMemoryStore())
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/api/scenarios", HandleListScenarios(reg))
	r.Method(http.MethodPost, "/api/scenarios", HandleSaveScenario(reg))
	r.Method(http.MethodGet, "/api/scenarios/{id}", HandleGetScenario(reg))
	r.Method(http.MethodDelete, "/api/scenarios/{id}", HandleDeleteScenario(reg))

	rr := serve(t, r, http.MethodPost, "/api/scenarios", `{"name":"Survey","systemPrompt":"Hello {customer_name}, about {notes}"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var saved scenario.Scenario
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &saved))
	assert.True(t, saved.IsCustom)
	assert.Equal(t, []string{"customer_name"}, saved.RequiredFields)

	rr = serve(t, r, http.MethodGet, "/api/scenarios", "")
	var all []scenario.Scenario
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	assert.Len(t, all, 5)

	rr = serve(t, r, http.MethodGet, "/api/scenarios/"+saved.ID, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, r, http.MethodPost, "/api/scenarios", `{"name":"No prompt"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(t, r, http.MethodDelete, "/api/scenarios/"+saved.ID, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(t, r, http.MethodGet, "/api/scenarios/"+saved.ID, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

type fakeReports struct {
	store  report.Store
	callID string
	err    error
}

func (f *fakeReports) Generate(ctx context.Context, callID string) (*report.Report, error) {
	f.callID = callID
	if f.err != nil {
		return nil, f.err
	}
	r := &report.Report{ID: "rep-1", CallID: callID, Analysis: report.FallbackAnalysis()}
	return r, f.store.Save(ctx, r)
}

func TestReportHandlers(t *testing.T) {
	store := memory.New()
	gen := &fakeReports{store: store}

	r := chi.NewRouter()
	r.Method(http.MethodPost, "/api/reports", HandleGenerateReport(gen))
	r.Method(http.MethodGet, "/api/reports", HandleListReports(store))
	r.Method(http.MethodGet, "/api/reports/export.xlsx", HandleExportReports(store))
	r.Method(http.MethodGet, "/api/reports/{id}", HandleGetReport(store))
	r.Method(http.MethodDelete, "/api/reports/{id}", HandleDeleteReport(store))

	rr := serve(t, r, http.MethodPost, "/api/reports", `{"callId":"call-3"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "call-3", gen.callID)

	rr = serve(t, r, http.MethodGet, "/api/reports", "")
	var list []report.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 1)

	rr = serve(t, r, http.MethodGet, "/api/reports/export.xlsx", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "call-reports-")
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("PK")))

	rr = serve(t, r, http.MethodGet, "/api/reports/call-3", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, r, http.MethodDelete, "/api/reports/call-3", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = serve(t, r, http.MethodDelete, "/api/reports/call-3", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(t, r, http.MethodPost, "/api/reports", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleGenerateReportNoTranscript(t *testing.T) {
	gen := &fakeReports{err: &apperr.NoTranscriptError{CallID: "call-4", Status: "ended"}}

	rr := serve(t, HandleGenerateReport(gen), http.MethodPost, "/api/reports", `{"callId":"call-4"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeError(t, rr)
	assert.NotNil(t, resp.Details)
	assert.Equal(t, apperr.CategoryCaller, resp.Category)
}

type fakeSMS struct {
	to, body string
	err      error
}

func (f *fakeSMS) Send(_ context.Context, to, body string) (string, error) {
	f.to, f.body = to, body
	return "SM123", f.err
}

func TestHandleSendSMS(t *testing.T) {
	sms := &fakeSMS{}
	rr := serve(t, HandleSendSMS(sms), http.MethodPost, "/api/sms", `{"to":"+966501234567","message":"Thanks for your time"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp SMSResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, SMSResponse{Success: true, Message: "SMS sent successfully", SID: "SM123"}, resp)
	assert.Equal(t, "+966501234567", sms.to)

	rr = serve(t, HandleSendSMS(sms), http.MethodPost, "/api/sms", `{"to":"","message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	sms.err = apperr.Configuration("Twilio is not configured")
	rr = serve(t, HandleSendSMS(sms), http.MethodPost, "/api/sms", `{"to":"+966501234567","message":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Twilio is not configured", decodeError(t, rr).Error)
}

func TestHandleHealth(t *testing.T) {
	rr := serve(t, HandleHealth(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestHandleWebhook(t *testing.T) {
	rcv := webhook.NewReceiver(webhook.NewForwarder("", "", time.Second), nil)

	rr := serve(t, HandleWebhook(rcv), http.MethodPost, "/api/webhook", `{"message":{"type":"status-update"}}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"Message ignored"}`, rr.Body.String())

	rr = serve(t, HandleWebhook(rcv), http.MethodPost, "/api/webhook", `{"message":{"type":"end-of-call-report","call":{"id":"c1"}}}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"End-of-call processed"}`, rr.Body.String())

	rr = serve(t, HandleWebhook(rcv), http.MethodPost, "/api/webhook", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Webhook processing failed", decodeError(t, rr).Error)
}
