package ai

import (
	"strings"
	"testing"

	"calldesk/internal/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboundTemplatesCarryEmailGuard(t *testing.T) {
	for key, tmpl := range outboundTemplates {
		vars := prompt.Variables(tmpl)
		assert.Contains(t, vars, "customer_name", "%v", key)
		assert.Contains(t, vars, "notes", "%v", key)
		if assert.Contains(t, vars, "customer_email", "%v", key) {
			if key.language == prompt.English {
				assert.Contains(t, tmpl, "Do not mention the customer's email address", "%v", key)
			} else {
				assert.Contains(t, tmpl, "لا تذكري البريد الإلكتروني", "%v", key)
			}
		}
	}
}

func TestOutboundCallTemplate(t *testing.T) {
	en, ok := OutboundCallTemplate("payment-reminder", prompt.English)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(en, "You are Omar"))

	ar, ok := OutboundCallTemplate("payment-reminder", prompt.Arabic)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(ar, "أنت يارا"))

	_, ok = OutboundCallTemplate("custom-123", prompt.English)
	assert.False(t, ok)

	assert.Equal(t, []prompt.Language{prompt.English, prompt.Arabic}, OutboundCallLanguages("technical-support"))
}

func TestGenerateFirstMessage(t *testing.T) {
	assert.Equal(t,
		"Hello, this is Omar from STC's Collection and Customer Care team. May I speak with Ahmed?",
		GenerateFirstMessage(prompt.English, "Ahmed"))
	assert.Contains(t, GenerateFirstMessage(prompt.Arabic, "أحمد"), "هل يمكنني التحدث مع أحمد؟")
}

func TestGenerateAnalysisPrompt(t *testing.T) {
	p := GenerateAnalysisPrompt("Agent: hi\nCustomer: hello", prompt.English)
	assert.Contains(t, p, "Agent: hi\nCustomer: hello")
	assert.Contains(t, p, `"assessmentQuestions"`)
	assert.NotContains(t, p, "held in Arabic")

	assert.Contains(t, GenerateAnalysisPrompt("x", prompt.Arabic), "held in Arabic")
	assert.Len(t, AssessmentRubric, 10)
}

func TestGenerateAuthoringPrompt(t *testing.T) {
	p := GenerateAuthoringPrompt("remind about unpaid roaming bill", "")
	assert.Contains(t, p, "Scenario Type: General")
	assert.Contains(t, p, "remind about unpaid roaming bill")
}
