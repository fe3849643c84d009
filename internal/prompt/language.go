package prompt

import (
	"strings"

	"calldesk/internal/apperr"
)

// Language selects the template set, voice and transcription profile for
// a call.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// ParseLanguage accepts "en" or "ar". An empty string means English.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case "", English:
		return English, nil
	case Arabic:
		return Arabic, nil
	default:
		return "", apperr.InvalidInput("unsupported language %q", s)
	}
}

// NotAvailable is the text substituted for a missing variable.
func (l Language) NotAvailable() string {
	if l == Arabic {
		return "غير متوفر"
	}
	return "Not available"
}
