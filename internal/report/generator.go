package report

import (
	"context"
	"fmt"
	"time"

	"calldesk/internal/ai"
	"calldesk/internal/apperr"
	"calldesk/internal/llm"
	"calldesk/internal/metrics"
	"calldesk/internal/prompt"
	"calldesk/internal/transcript"
	"calldesk/internal/vapi"

	"go.uber.org/zap"
)

// CallFetcher reads a call record from the calling platform.
type CallFetcher interface {
	GetCall(ctx context.Context, id string) (*vapi.Call, error)
}

type GeneratorConfig struct {
	Model       string
	Temperature float32
	Budget      *TokenBudget
	// Timeout bounds the model request. Zero means no bound.
	Timeout time.Duration
}

type Generator struct {
	calls    CallFetcher
	provider llm.Provider
	store    Store
	cfg      GeneratorConfig
	now      func() time.Time
}

func NewGenerator(calls CallFetcher, provider llm.Provider, store Store, cfg GeneratorConfig) *Generator {
	return &Generator{
		calls:    calls,
		provider: provider,
		store:    store,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Generate builds and stores the report for callID. It fails when the call
// cannot be fetched, when the call has no usable transcript (the model is
// not called then) or when the model request itself fails. A model answer
// that cannot be parsed yields the fallback analysis instead of an error.
func (g *Generator) Generate(ctx context.Context, callID string) (*Report, error) {
	if callID == "" {
		return nil, apperr.InvalidInput("Call ID is required")
	}
	log := zap.L().With(zap.String("call_id", callID))

	call, err := g.calls.GetCall(ctx, callID)
	if err != nil {
		metrics.ReportRejections.WithLabelValues("fetch").Inc()
		return nil, fmt.Errorf("fetch call details: %w", err)
	}

	text, source := transcript.ExtractWithSource(call)
	log.Debug("transcript extracted", zap.String("source", string(source)), zap.Int("length", len(text)))
	if !transcript.Usable(text) {
		metrics.ReportRejections.WithLabelValues("no_transcript").Inc()
		return nil, &apperr.NoTranscriptError{
			CallID:        callID,
			Status:        call.Status,
			HasMessages:   call.Messages != nil,
			HasTranscript: call.Transcript != "",
			HasArtifact:   call.Artifact != nil,
		}
	}

	lang, err := prompt.ParseLanguage(call.MetadataString("language"))
	if err != nil {
		lang = prompt.English
	}

	analysisInput, truncated := g.cfg.Budget.Fit(text)
	if truncated {
		log.Info("transcript truncated for analysis")
	}

	resp, err := llm.GenerateWithin(ctx, g.provider, g.cfg.Timeout, llm.Request{
		Model:       g.cfg.Model,
		System:      ai.GetAnalystSystemPrompt(),
		Prompt:      ai.GenerateAnalysisPrompt(analysisInput, lang),
		Temperature: g.cfg.Temperature,
		JSON:        true,
	})
	if err != nil {
		metrics.ReportRejections.WithLabelValues("llm").Inc()
		return nil, fmt.Errorf("generate analysis: %w", err)
	}

	analysis, degraded := g.analyze(log, resp.Content)

	r := g.compose(call, callID, text, analysis)
	r.AnalysisProvider = g.provider.Name()
	r.Degraded = degraded

	if g.store != nil {
		if err := g.store.Save(ctx, r); err != nil {
			return nil, fmt.Errorf("save report: %w", err)
		}
	}
	log.Info("report generated", zap.Bool("degraded", degraded), zap.Float64("overall_score", float64(analysis.OverallScore)))
	return r, nil
}

func (g *Generator) analyze(log *zap.Logger, content string) (Analysis, bool) {
	analysis, err := ParseAnalysis(content)
	if err != nil {
		log.Warn("analysis unparseable, using fallback", zap.Error(err), zap.Int("response_length", len(content)))
		metrics.ReportsGenerated.WithLabelValues("fallback", g.provider.Name()).Inc()
		return FallbackAnalysis(), true
	}

	var added int
	analysis.AssessmentQuestions, added = PadAssessmentQuestions(analysis.AssessmentQuestions)
	if added > 0 {
		log.Info("assessment questions padded", zap.Int("added", added))
		metrics.AssessmentQuestionsPadded.Add(float64(added))
	}
	metrics.ReportsGenerated.WithLabelValues("llm", g.provider.Name()).Inc()
	return analysis, false
}

func (g *Generator) compose(call *vapi.Call, callID, text string, analysis Analysis) *Report {
	now := g.now().UTC()

	name := call.CustomerName()
	if name == "" {
		name = "Unknown"
	}
	status := call.Status
	if status == "" {
		status = "completed"
	}
	createdAt := call.CreatedAt
	if createdAt == "" {
		createdAt = now.Format(time.RFC3339Nano)
	}
	language := call.MetadataString("language")
	if language == "" {
		language = string(prompt.English)
	}

	return &Report{
		ID:            callID,
		CallID:        callID,
		CustomerName:  name,
		PhoneNumber:   call.CustomerNumber(),
		CustomerEmail: call.MetadataString("customerEmail"),
		Duration:      call.DurationSeconds(),
		Status:        status,
		CreatedAt:     createdAt,
		Language:      language,
		Transcript:    text,
		RecordingURL:  call.Recording(),
		Analysis:      analysis,
		GeneratedAt:   now,
	}
}
