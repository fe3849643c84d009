package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"calldesk/internal/apperr"
)

// ParseAnalysis decodes a model response into an Analysis. Markdown code
// fences and prose around the JSON object are tolerated. The error wraps
// apperr.ErrAnalysisParse.
func ParseAnalysis(raw string) (Analysis, error) {
	cleaned := cleanModelJSON(raw)

	a, err := decodeAnalysis(cleaned)
	if err == nil {
		return a, nil
	}
	if obj := extractFirstBalancedJSON(cleaned); obj != "" && obj != cleaned {
		if a, err2 := decodeAnalysis(obj); err2 == nil {
			return a, nil
		}
	}
	return Analysis{}, fmt.Errorf("%w: %v", apperr.ErrAnalysisParse, err)
}

func decodeAnalysis(s string) (Analysis, error) {
	if !strings.HasPrefix(s, "{") {
		return Analysis{}, fmt.Errorf("response is not a JSON object")
	}
	var a Analysis
	if err := json.Unmarshal([]byte(s), &a); err != nil {
		return Analysis{}, err
	}
	if a.KeyPoints == nil {
		a.KeyPoints = []string{}
	}
	if a.Recommendations == nil {
		a.Recommendations = []string{}
	}
	for i := range a.AssessmentQuestions {
		a.AssessmentQuestions[i].Status = normalizeStatus(a.AssessmentQuestions[i].Status)
	}
	return a, nil
}

func normalizeStatus(s Status) Status {
	switch Status(strings.ToLower(strings.TrimSpace(string(s)))) {
	case StatusPositive, "pass":
		return StatusPositive
	case StatusNegative, "fail":
		return StatusNegative
	default:
		return StatusNeutral
	}
}

func cleanModelJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// extractFirstBalancedJSON returns the first complete {...} object in
// input, skipping braces inside strings.
func extractFirstBalancedJSON(input string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(input); i++ {
		ch := input[i]
		if inString {
			if escaped {
				escaped = false
				continue
			}
			if ch == '\\' {
				escaped = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start >= 0 {
				return strings.TrimSpace(input[start : i+1])
			}
		}
	}
	return ""
}
