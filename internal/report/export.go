package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet    = "Reports"
	assessmentSheet = "Assessment"
)

// WriteXLSX writes reports as a workbook with one summary row per report
// and one row per assessment question.
func WriteXLSX(w io.Writer, reports []Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(assessmentSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	summaryHeader := []any{
		"Call ID", "Customer", "Phone", "Email", "Language", "Status", "Duration (s)",
		"Cooperation", "Engagement", "Postponement Requested", "Postponement Reason",
		"Overall Score", "Summary", "Key Points", "Recommendations", "Recording", "Generated At", "Degraded",
	}
	if err := writeRow(f, summarySheet, 1, summaryHeader, bold); err != nil {
		return err
	}
	assessmentHeader := []any{"Call ID", "#", "Question", "Answer", "Status"}
	if err := writeRow(f, assessmentSheet, 1, assessmentHeader, bold); err != nil {
		return err
	}

	qRow := 2
	for i, r := range reports {
		a := r.Analysis
		row := []any{
			r.CallID, r.CustomerName, r.PhoneNumber, r.CustomerEmail, r.Language, r.Status, r.Duration,
			float64(a.CustomerCooperation.Score), float64(a.Engagement.Score),
			a.PostponementRequested.Requested, a.PostponementRequested.Reason,
			float64(a.OverallScore), a.Summary,
			strings.Join(a.KeyPoints, "\n"), strings.Join(a.Recommendations, "\n"),
			r.RecordingURL, r.GeneratedAt.Format(time.RFC3339), r.Degraded,
		}
		if err := writeRow(f, summarySheet, i+2, row, 0); err != nil {
			return err
		}
		for n, q := range a.AssessmentQuestions {
			if err := writeRow(f, assessmentSheet, qRow, []any{r.CallID, n + 1, q.Question, q.Answer, string(q.Status)}, 0); err != nil {
				return err
			}
			qRow++
		}
	}

	if err := f.SetColWidth(summarySheet, "M", "O", 60); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, row int, values []any, style int) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, start, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	if style == 0 {
		return nil
	}
	end, err := excelize.CoordinatesToCellName(len(values), row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, start, end, style)
}
