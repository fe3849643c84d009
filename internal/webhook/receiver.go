// Package webhook handles server messages pushed by the calling platform.
// Only end-of-call reports are acted on: they are forwarded to the
// automation endpoint and can trigger an SMS follow-up.
package webhook

import (
	"context"
	"time"

	"calldesk/internal/metrics"
	"calldesk/internal/notify"
	"calldesk/internal/prompt"
	"calldesk/internal/transcript"
	"calldesk/internal/vapi"

	"go.uber.org/zap"
)

const EndOfCallReport = "end-of-call-report"

type Event struct {
	Message struct {
		Type string     `json:"type"`
		Call *vapi.Call `json:"call,omitempty"`
	} `json:"message"`
}

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SMSSender is satisfied by *notify.SMSSender.
type SMSSender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

type Receiver struct {
	forwarder *Forwarder
	sms       SMSSender
	now       func() time.Time
}

// NewReceiver returns a receiver. sms may be nil to disable follow-ups.
func NewReceiver(forwarder *Forwarder, sms SMSSender) *Receiver {
	return &Receiver{forwarder: forwarder, sms: sms, now: time.Now}
}

// Handle always succeeds once the message is read. Forward and follow-up
// failures are logged and counted, never returned.
func (r *Receiver) Handle(ctx context.Context, ev Event) Result {
	msgType := ev.Message.Type
	if msgType != EndOfCallReport {
		metrics.WebhookEvents.WithLabelValues("ignored").Inc()
		zap.L().Debug("webhook message ignored", zap.String("type", msgType))
		return Result{Success: true, Message: "Message ignored"}
	}
	metrics.WebhookEvents.WithLabelValues(EndOfCallReport).Inc()

	call := ev.Message.Call
	if call == nil {
		call = &vapi.Call{}
	}
	log := zap.L().With(zap.String("call_id", call.ID))
	log.Info("processing end-of-call report", zap.String("status", call.Status), zap.String("ended_reason", call.EndedReason))

	payload := r.BuildPayload(call)
	if err := r.forwarder.Forward(ctx, payload); err != nil {
		metrics.WebhookForwards.WithLabelValues("failed").Inc()
		log.Warn("failed to forward end-of-call report", zap.Error(err))
	} else {
		metrics.WebhookForwards.WithLabelValues("ok").Inc()
		log.Info("end-of-call report forwarded")
	}

	r.followUp(ctx, log, call, payload)
	return Result{Success: true, Message: "End-of-call processed"}
}

// BuildPayload normalizes a call record for the automation endpoint.
func (r *Receiver) BuildPayload(call *vapi.Call) Payload {
	endedAt := call.EndedAt
	if endedAt == "" {
		endedAt = r.now().UTC().Format(time.RFC3339Nano)
	}
	return Payload{
		Email:        call.MetadataString("customerEmail"),
		PhoneNumber:  call.CustomerNumber(),
		Transcript:   transcript.Extract(call),
		CallID:       call.ID,
		CustomerName: call.CustomerName(),
		Duration:     call.Duration,
		Status:       call.Status,
		EndedAt:      endedAt,
		RecordingURL: call.Recording(),
		Analysis:     call.Analysis,
	}
}

func (r *Receiver) followUp(ctx context.Context, log *zap.Logger, call *vapi.Call, p Payload) {
	if r.sms == nil || p.PhoneNumber == "" {
		return
	}
	lang, err := prompt.ParseLanguage(call.MetadataString("language"))
	if err != nil {
		lang = prompt.English
	}
	sid, err := r.sms.Send(ctx, p.PhoneNumber, notify.FollowUpMessage(lang, p.CustomerName))
	if err != nil {
		log.Warn("follow-up sms failed", zap.Error(err))
		return
	}
	log.Info("follow-up sms sent", zap.String("sid", sid))
}
