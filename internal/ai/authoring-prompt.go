package ai

import "fmt"

// GenerateAuthoringPrompt asks the model for a complete agent system prompt
// built around the operator's free-text description.
func GenerateAuthoringPrompt(description, scenarioType string) string {
	if scenarioType == "" {
		scenarioType = "General"
	}

	return fmt.Sprintf(`Create a detailed, professional system prompt for an AI agent named Omar who works for STC.

Scenario Type: %s
User Description: %s

The prompt should include:
1. Clear role definition (Omar from STC)
2. Customer information placeholders: {customer_name}, {phone_number}, {customer_email}, and other relevant fields written as {lowercase_with_underscores}
3. **IMPORTANT: Include a note that the agent should NEVER mention the customer's email during the call - it's for internal records only**
4. Clear objectives and call flow
5. A warm closing that thanks the customer for being an STC customer
6. Professional guidelines for handling different situations
7. Empathy and cultural sensitivity for Saudi Arabian customers
8. A {notes} placeholder for additional notes

Make it comprehensive, professional, and ready to use. Format it clearly with sections.`, scenarioType, description)
}
