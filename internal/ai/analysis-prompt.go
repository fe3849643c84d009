package ai

import (
	"fmt"

	"calldesk/internal/prompt"
)

// AssessmentRubric is the fixed order of assessment topics a report covers.
var AssessmentRubric = []string{
	"Greeting Quality",
	"Issue Understanding",
	"Solution Provided",
	"Professionalism",
	"Communication Clarity",
	"Customer Satisfaction",
	"Problem Resolution",
	"Follow-up Offered",
	"Call Efficiency",
	"Overall Experience",
}

// GenerateAnalysisPrompt builds the user message asking the model to score
// a call transcript. Arabic calls get their free-text fields in Arabic.
func GenerateAnalysisPrompt(transcript string, lang prompt.Language) string {
	languageNote := ""
	if lang == prompt.Arabic {
		languageNote = "\nThe call was held in Arabic. Write every description, key point, answer, summary and recommendation in Arabic. Keep the JSON keys and the status values in English.\n"
	}

	return fmt.Sprintf(`Analyze this customer service call transcript and provide a detailed report.

Transcript:
%s

Evaluate:
1. Customer cooperation level (1-10)
2. Customer engagement level (1-10)
3. Whether customer requested to postpone the call, and why
4. Key discussion points
5. Overall summary
6. 10 assessment questions covering: greeting quality, issue understanding, solution provided, professionalism, communication clarity, customer satisfaction, problem resolution, follow-up offered, call efficiency, and overall experience
7. Recommendations for improvement
8. Overall call score (1-10)
%s
Provide the response in JSON format with the following structure:
{
  "customerCooperation": { "score": number, "description": string },
  "engagement": { "score": number, "description": string },
  "postponementRequested": { "requested": boolean, "reason": string },
  "keyPoints": [string],
  "summary": string,
  "assessmentQuestions": [{ "question": string, "answer": string, "status": "positive" | "negative" | "neutral" }],
  "recommendations": [string],
  "overallScore": number
}`, transcript, languageNote)
}
