package vapi

import (
	"encoding/json"
	"math"
	"time"
)

type Customer struct {
	Number string `json:"number,omitempty"`
	Name   string `json:"name,omitempty"`
}

type PhoneNumber struct {
	ID     string `json:"id,omitempty"`
	Number string `json:"number,omitempty"`
}

type Voice struct {
	Provider        string   `json:"provider"`
	VoiceID         string   `json:"voiceId"`
	Model           string   `json:"model,omitempty"`
	Stability       *float64 `json:"stability,omitempty"`
	SimilarityBoost *float64 `json:"similarityBoost,omitempty"`
	Style           *float64 `json:"style,omitempty"`
	UseSpeakerBoost *bool    `json:"useSpeakerBoost,omitempty"`
}

type Transcriber struct {
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
	Language string `json:"language"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Model struct {
	Provider    string        `json:"provider"`
	Model       string        `json:"model"`
	Temperature *float64      `json:"temperature,omitempty"`
	Messages    []ChatMessage `json:"messages"`
}

type AssistantOverrides struct {
	FirstMessage   string            `json:"firstMessage"`
	Voice          *Voice            `json:"voice,omitempty"`
	Transcriber    *Transcriber      `json:"transcriber,omitempty"`
	Model          *Model            `json:"model,omitempty"`
	ServerURL      string            `json:"serverUrl,omitempty"`
	ServerMessages []string          `json:"serverMessages,omitempty"`
	Metadata       map[string]any    `json:"metadata,omitempty"`
	VariableValues map[string]string `json:"variableValues,omitempty"`
}

// CreateCallRequest is the body of POST /call/phone.
type CreateCallRequest struct {
	AssistantID        string             `json:"assistantId"`
	Customer           Customer           `json:"customer"`
	PhoneNumberID      string             `json:"phoneNumberId"`
	AssistantOverrides AssistantOverrides `json:"assistantOverrides"`
}

// Message is one conversation turn. Depending on where it came from the
// text is in Message or in Content.
type Message struct {
	Role             string  `json:"role"`
	Message          string  `json:"message,omitempty"`
	Content          string  `json:"content,omitempty"`
	Time             float64 `json:"time,omitempty"`
	SecondsFromStart float64 `json:"secondsFromStart,omitempty"`
}

// Text returns Message, falling back to Content.
func (m Message) Text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Content
}

type Artifact struct {
	Messages     []Message `json:"messages,omitempty"`
	Transcript   string    `json:"transcript,omitempty"`
	RecordingURL string    `json:"recordingUrl,omitempty"`
}

// Call is a call record owned by the calling platform. Timestamps are kept
// as the platform sends them; use the accessor methods to parse them.
type Call struct {
	ID           string          `json:"id"`
	AssistantID  string          `json:"assistantId,omitempty"`
	Type         string          `json:"type,omitempty"`
	Status       string          `json:"status,omitempty"`
	EndedReason  string          `json:"endedReason,omitempty"`
	CreatedAt    string          `json:"createdAt,omitempty"`
	StartedAt    string          `json:"startedAt,omitempty"`
	EndedAt      string          `json:"endedAt,omitempty"`
	Customer     *Customer       `json:"customer,omitempty"`
	PhoneNumber  *PhoneNumber    `json:"phoneNumber,omitempty"`
	Messages     []Message       `json:"messages,omitempty"`
	Transcript   string          `json:"transcript,omitempty"`
	Summary      string          `json:"summary,omitempty"`
	RecordingURL string          `json:"recordingUrl,omitempty"`
	Artifact     *Artifact       `json:"artifact,omitempty"`
	Metadata     map[string]any  `json:"metadata,omitempty"`
	Cost         float64         `json:"cost,omitempty"`
	Duration     float64         `json:"duration,omitempty"`
	Analysis     json.RawMessage `json:"analysis,omitempty"`
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (c Call) StartedTime() (time.Time, bool) { return parseTime(c.StartedAt) }
func (c Call) EndedTime() (time.Time, bool)   { return parseTime(c.EndedAt) }
func (c Call) CreatedTime() (time.Time, bool) { return parseTime(c.CreatedAt) }

// DurationSeconds is endedAt minus startedAt in whole seconds, or 0 when
// either timestamp is missing.
func (c Call) DurationSeconds() int {
	start, ok := c.StartedTime()
	if !ok {
		return 0
	}
	end, ok := c.EndedTime()
	if !ok {
		return 0
	}
	return int(math.Floor(end.Sub(start).Seconds()))
}

// MetadataString returns metadata[key] when it is a string.
func (c Call) MetadataString(key string) string {
	v, _ := c.Metadata[key].(string)
	return v
}

// CustomerName returns customer.name or "".
func (c Call) CustomerName() string {
	if c.Customer == nil {
		return ""
	}
	return c.Customer.Name
}

// CustomerNumber returns customer.number, then phoneNumber.number, then "".
func (c Call) CustomerNumber() string {
	if c.Customer != nil && c.Customer.Number != "" {
		return c.Customer.Number
	}
	if c.PhoneNumber != nil {
		return c.PhoneNumber.Number
	}
	return ""
}

// Recording returns the top-level recording URL or the artifact's.
func (c Call) Recording() string {
	if c.RecordingURL != "" {
		return c.RecordingURL
	}
	if c.Artifact != nil {
		return c.Artifact.RecordingURL
	}
	return ""
}

type Assistant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ConnectionStatus is the result of a connectivity check.
type ConnectionStatus struct {
	IsConnected   bool   `json:"isConnected"`
	AssistantName string `json:"assistantName,omitempty"`
	AssistantID   string `json:"assistantId,omitempty"`
	Error         string `json:"error,omitempty"`
	Details       string `json:"details,omitempty"`
}
