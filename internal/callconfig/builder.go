// Package callconfig assembles the outbound call request sent to the
// calling platform from a scenario, a language and a customer.
package callconfig

import (
	"maps"
	"strings"

	"calldesk/internal/ai"
	"calldesk/internal/apperr"
	"calldesk/internal/prompt"
	"calldesk/internal/scenario"
	"calldesk/internal/vapi"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EmailVariable is never substituted into spoken instructions.
const EmailVariable = "customer_email"

// Credentials are the platform settings every outbound call needs.
type Credentials struct {
	APIKey        string
	AssistantID   string
	PhoneNumberID string
	ServerURL     string
}

type Customer struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,e164"`
	Email       string `json:"email" validate:"omitempty,email"`
}

type Request struct {
	Scenario  scenario.Scenario
	Language  prompt.Language
	Customer  Customer
	Variables map[string]string
}

type Builder struct {
	creds    Credentials
	validate *validator.Validate
}

func NewBuilder(creds Credentials) *Builder {
	return &Builder{creds: creds, validate: validator.New()}
}

// Build returns the request payload for POST /call/phone. It does not
// touch the network.
func (b *Builder) Build(req Request) (*vapi.CreateCallRequest, error) {
	if err := b.checkCredentials(); err != nil {
		return nil, err
	}
	if err := b.validate.Struct(req.Customer); err != nil {
		return nil, apperr.InvalidInput("customer: %v", err)
	}

	lang := req.Language
	if lang == "" {
		lang = prompt.English
	}
	prof := profileFor(lang)

	// The email only travels in metadata so the agent can never read it out.
	vars := maps.Clone(req.Variables)
	if vars == nil {
		vars = map[string]string{}
	}
	delete(vars, EmailVariable)

	systemPrompt := scenario.ResolvePrompt(req.Scenario, vars, lang)

	return &vapi.CreateCallRequest{
		AssistantID: b.creds.AssistantID,
		Customer: vapi.Customer{
			Number: req.Customer.PhoneNumber,
			Name:   req.Customer.Name,
		},
		PhoneNumberID: b.creds.PhoneNumberID,
		AssistantOverrides: vapi.AssistantOverrides{
			FirstMessage: ai.GenerateFirstMessage(lang, req.Customer.Name),
			Voice:        prof.voice(),
			Transcriber:  prof.transcriber(),
			Model: &vapi.Model{
				Provider:    prof.modelProvider,
				Model:       prof.model,
				Temperature: floatPtr(prof.temperature),
				Messages:    []vapi.ChatMessage{{Role: "system", Content: systemPrompt}},
			},
			ServerURL:      b.creds.ServerURL,
			ServerMessages: []string{"end-of-call-report"},
			Metadata: map[string]any{
				"customerEmail": req.Customer.Email,
				"customerName":  req.Customer.Name,
				"customerPhone": req.Customer.PhoneNumber,
				"scenarioId":    req.Scenario.ID,
				"language":      string(lang),
			},
			VariableValues: vars,
		},
	}, nil
}

func (b *Builder) checkCredentials() error {
	if b.creds.APIKey == "" || b.creds.AssistantID == "" {
		return apperr.Configuration("VAPI credentials not configured")
	}
	if !IsCanonicalUUID(b.creds.PhoneNumberID) {
		return apperr.Configuration("VAPI Phone Number not configured. Please add VAPI_PHONE_NUMBER_ID environment variable with a valid phone number UUID from your VAPI dashboard.")
	}
	return nil
}

// IsCanonicalUUID accepts only the hyphenated 8-4-4-4-12 hex form.
func IsCanonicalUUID(s string) bool {
	if len(s) != 36 || strings.Count(s, "-") != 4 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
