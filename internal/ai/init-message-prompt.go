package ai

import (
	"fmt"

	"calldesk/internal/prompt"
)

// GenerateFirstMessage returns the greeting the voice agent opens the call
// with.
func GenerateFirstMessage(lang prompt.Language, customerName string) string {
	if lang == prompt.Arabic {
		return fmt.Sprintf("السلام عليكم، معك يارا من STC ومن فريق الكوليكشن وخدمة العملاء. هل يمكنني التحدث مع %s؟", customerName)
	}
	return fmt.Sprintf("Hello, this is Omar from STC's Collection and Customer Care team. May I speak with %s?", customerName)
}
