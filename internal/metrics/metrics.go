package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calldesk_reports_generated_total",
		Help: "Reports generated, by analysis outcome (llm or fallback) and provider.",
	}, []string{"outcome", "provider"})

	AssessmentQuestionsPadded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "calldesk_assessment_questions_padded_total",
		Help: "Assessment questions filled in from the default rubric.",
	})

	ReportRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calldesk_report_rejections_total",
		Help: "Report requests that failed before analysis, by reason.",
	}, []string{"reason"})

	OutboundCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calldesk_outbound_calls_total",
		Help: "Outbound call attempts, by language and result.",
	}, []string{"language", "result"})

	WebhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calldesk_webhook_events_total",
		Help: "Inbound webhook messages, by message type.",
	}, []string{"type"})

	WebhookForwards = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calldesk_webhook_forwards_total",
		Help: "End-of-call forwards to the automation endpoint, by result.",
	}, []string{"result"})

	LivePolls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calldesk_live_polls_total",
		Help: "Live call list polls, by result (ok, error, stale).",
	}, []string{"result"})
)
