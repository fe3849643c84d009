// Package scenario keeps the catalogue of call scenarios: the four
// built-in ones shipped with the dashboard and any custom scenarios an
// operator has authored.
package scenario

import (
	"time"

	"calldesk/internal/ai"
	"calldesk/internal/prompt"
)

// Scenario is a call script. Languages lists the languages that have a
// dedicated built-in template; custom scenarios leave it empty.
type Scenario struct {
	ID             string            `json:"id"`
	Name           string            `json:"name" validate:"required"`
	Description    string            `json:"description"`
	SystemPrompt   string            `json:"systemPrompt" validate:"required"`
	RequiredFields []string          `json:"requiredFields"`
	OptionalFields []string          `json:"optionalFields"`
	IsCustom       bool              `json:"isCustom,omitempty"`
	Languages      []prompt.Language `json:"languages,omitempty"`
	CreatedAt      *time.Time        `json:"createdAt,omitempty"`
}

// Template returns the prompt template used for lang. Custom scenarios
// always use their own prompt; built-ins use the per-language template
// table and fall back to SystemPrompt when a language has no entry.
func (s Scenario) Template(lang prompt.Language) string {
	if s.IsCustom && s.SystemPrompt != "" {
		return s.SystemPrompt
	}
	if t, ok := ai.OutboundCallTemplate(s.ID, lang); ok {
		return t
	}
	return s.SystemPrompt
}

// ResolvePrompt renders the scenario template for lang with vars. Missing
// or empty variables become the language's "not available" text.
func ResolvePrompt(s Scenario, vars map[string]string, lang prompt.Language) string {
	return prompt.Render(s.Template(lang), vars, lang.NotAvailable())
}

func builtin(id, name, description string, required, optional []string) Scenario {
	tmpl, _ := ai.OutboundCallTemplate(id, prompt.English)
	return Scenario{
		ID:             id,
		Name:           name,
		Description:    description,
		SystemPrompt:   tmpl,
		RequiredFields: required,
		OptionalFields: optional,
		Languages:      ai.OutboundCallLanguages(id),
	}
}

// Builtins returns a fresh copy of the built-in scenarios in display order.
func Builtins() []Scenario {
	return []Scenario{
		builtin("payment-reminder", "Payment Reminder",
			"Remind customers about overdue payments and collect payment information",
			[]string{"customer_name", "phone_number", "customer_email", "account_balance", "due_date"},
			[]string{"notes"}),
		builtin("account-inquiry", "Account Inquiry",
			"Handle general account questions and provide information",
			[]string{"customer_name", "phone_number", "customer_email", "inquiry_type"},
			[]string{"account_balance", "notes"}),
		builtin("service-upgrade", "Service Upgrade",
			"Offer service upgrades and new features to customers",
			[]string{"customer_name", "phone_number", "customer_email", "current_plan", "recommended_upgrade"},
			[]string{"notes"}),
		builtin("technical-support", "Technical Support",
			"Provide technical assistance and troubleshooting",
			[]string{"customer_name", "phone_number", "customer_email", "issue_type", "issue_description"},
			[]string{"notes"}),
	}
}
