package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"calldesk/internal/apperr"
	"calldesk/internal/vapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSMS struct {
	to, body string
	err      error
}

func (f *fakeSMS) Send(_ context.Context, to, body string) (string, error) {
	f.to, f.body = to, body
	return "SM1", f.err
}

func decodeEvent(t *testing.T, raw string) Event {
	t.Helper()
	var ev Event
	require.NoError(t, json.Unmarshal([]byte(raw), &ev))
	return ev
}

const endOfCall = `{
  "message": {
    "type": "end-of-call-report",
    "call": {
      "id": "call-9",
      "status": "ended",
      "duration": 93.5,
      "endedAt": "2026-05-01T10:00:00Z",
      "customer": {"number": "+966511111111", "name": "Omar"},
      "metadata": {"customerEmail": "omar@example.com", "language": "en"},
      "messages": [
        {"role": "assistant", "message": "Hello Omar"},
        {"role": "user", "message": "Hi"}
      ],
      "recordingUrl": "https://rec.example.com/9.wav",
      "analysis": {"successEvaluation": "true"}
    }
  }
}`

func TestHandleForwardsEndOfCallReport(t *testing.T) {
	var got Payload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sms := &fakeSMS{}
	rcv := NewReceiver(NewForwarder(srv.URL, "secret", time.Second), sms)

	res := rcv.Handle(context.Background(), decodeEvent(t, endOfCall))
	assert.Equal(t, Result{Success: true, Message: "End-of-call processed"}, res)

	assert.Equal(t, "secret", auth)
	assert.Equal(t, "call-9", got.CallID)
	assert.Equal(t, "omar@example.com", got.Email)
	assert.Equal(t, "+966511111111", got.PhoneNumber)
	assert.Equal(t, "Omar", got.CustomerName)
	assert.Equal(t, 93.5, got.Duration)
	assert.Equal(t, "Agent: Hello Omar\nCustomer: Hi", got.Transcript)
	assert.Equal(t, "https://rec.example.com/9.wav", got.RecordingURL)
	assert.JSONEq(t, `{"successEvaluation": "true"}`, string(got.Analysis))

	assert.Equal(t, "+966511111111", sms.to)
	assert.Contains(t, sms.body, "Omar")
}

func TestHandleIgnoresOtherMessages(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	defer srv.Close()

	rcv := NewReceiver(NewForwarder(srv.URL, "", time.Second), nil)
	res := rcv.Handle(context.Background(), decodeEvent(t, `{"message": {"type": "status-update"}}`))

	assert.Equal(t, Result{Success: true, Message: "Message ignored"}, res)
	assert.False(t, called)
}

func TestHandleSucceedsWhenForwardFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sms := &fakeSMS{err: errors.New("twilio down")}
	rcv := NewReceiver(NewForwarder(srv.URL, "", time.Second), sms)

	res := rcv.Handle(context.Background(), decodeEvent(t, endOfCall))
	assert.True(t, res.Success)
	assert.Equal(t, "End-of-call processed", res.Message)
}

func TestForwardErrors(t *testing.T) {
	err := NewForwarder("", "", time.Second).Forward(context.Background(), Payload{})
	assert.ErrorIs(t, err, apperr.ErrWebhookForward)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()
	err = NewForwarder(srv.URL, "", time.Second).Forward(context.Background(), Payload{})
	assert.ErrorIs(t, err, apperr.ErrWebhookForward)
	assert.Contains(t, err.Error(), "401")
}

func TestBuildPayloadDefaults(t *testing.T) {
	rcv := NewReceiver(nil, nil)
	rcv.now = func() time.Time { return time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC) }

	p := rcv.BuildPayload(&vapi.Call{
		ID:          "c",
		PhoneNumber: &vapi.PhoneNumber{Number: "+15550000000"},
		Transcript:  "AI: hi\nUser: hello",
	})
	assert.Equal(t, "+15550000000", p.PhoneNumber)
	assert.Equal(t, "2026-05-02T08:00:00Z", p.EndedAt)
	assert.Equal(t, "AI: hi\nUser: hello", p.Transcript)
	assert.Zero(t, p.Duration)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"analysis":null`)
}
