package report

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"calldesk/internal/ai"
)

// QuestionCount is the number of assessment questions every report carries.
const QuestionCount = 10

type Status string

const (
	StatusPositive Status = "positive"
	StatusNegative Status = "negative"
	StatusNeutral  Status = "neutral"
)

// Score is a 1-10 rating. Models sometimes quote numbers, so a numeric
// string is accepted too.
type Score float64

func (s *Score) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*s = Score(f)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return err
	}
	*s = Score(f)
	return nil
}

// Rating is a score with a short justification.
type Rating struct {
	Score       Score  `json:"score"`
	Description string `json:"description"`
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	var raw struct {
		Score       Score  `json:"score"`
		Description string `json:"description"`
		Assessment  string `json:"assessment"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Score = raw.Score
	r.Description = raw.Description
	if r.Description == "" {
		r.Description = raw.Assessment
	}
	return nil
}

// Postponement records whether the customer asked to be called later.
// Both a bare boolean and {"requested": bool, "reason": string} decode.
type Postponement struct {
	Requested bool   `json:"requested"`
	Reason    string `json:"reason"`
}

func (p *Postponement) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*p = Postponement{Requested: b}
		return nil
	}
	type plain Postponement
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Postponement(v)
	return nil
}

type AssessmentQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Status   Status `json:"status"`
}

type Analysis struct {
	CustomerCooperation   Rating               `json:"customerCooperation"`
	Engagement            Rating               `json:"engagement"`
	PostponementRequested Postponement         `json:"postponementRequested"`
	KeyPoints             []string             `json:"keyPoints"`
	Summary               string               `json:"summary"`
	AssessmentQuestions   []AssessmentQuestion `json:"assessmentQuestions"`
	Recommendations       []string             `json:"recommendations"`
	OverallScore          Score                `json:"overallScore"`
}

var defaultAnswers = [QuestionCount]struct {
	answer string
	status Status
}{
	{"Standard greeting provided", StatusNeutral},
	{"Issue understood correctly", StatusPositive},
	{"Solution offered", StatusPositive},
	{"Professional demeanor maintained", StatusPositive},
	{"Clear communication", StatusPositive},
	{"Customer appeared satisfied", StatusPositive},
	{"Issue addressed", StatusPositive},
	{"Follow-up provided", StatusPositive},
	{"Call handled efficiently", StatusPositive},
	{"Positive experience", StatusPositive},
}

// DefaultQuestions returns the rubric entries used to pad short analyses.
func DefaultQuestions() []AssessmentQuestion {
	out := make([]AssessmentQuestion, QuestionCount)
	for i, topic := range ai.AssessmentRubric {
		out[i] = AssessmentQuestion{Question: topic, Answer: defaultAnswers[i].answer, Status: defaultAnswers[i].status}
	}
	return out
}

// PadAssessmentQuestions fills qs up to QuestionCount. Existing entries
// keep their positions; slot i is filled with default question i. Longer
// lists are returned unchanged. It reports how many entries were added.
func PadAssessmentQuestions(qs []AssessmentQuestion) ([]AssessmentQuestion, int) {
	if len(qs) >= QuestionCount {
		return qs, 0
	}
	defaults := DefaultQuestions()
	added := QuestionCount - len(qs)
	out := make([]AssessmentQuestion, len(qs), QuestionCount)
	copy(out, qs)
	return append(out, defaults[len(qs):]...), added
}

// FallbackAnalysis is the complete neutral analysis used when the model
// response cannot be parsed.
func FallbackAnalysis() Analysis {
	qs := make([]AssessmentQuestion, QuestionCount)
	for i, topic := range ai.AssessmentRubric {
		qs[i] = AssessmentQuestion{Question: topic, Answer: "Requires manual review", Status: StatusNeutral}
	}
	return Analysis{
		CustomerCooperation: Rating{Score: 7, Description: "Analysis could not be completed. Manual review recommended."},
		Engagement:          Rating{Score: 7, Description: "Unable to assess engagement automatically."},
		KeyPoints:           []string{"Call transcript available for manual review"},
		Summary:             "Automated analysis failed. Please review the transcript manually for detailed insights.",
		AssessmentQuestions: qs,
		Recommendations:     []string{"Manual review of transcript recommended"},
		OverallScore:        7,
	}
}
