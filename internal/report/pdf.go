package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/gruntled/assessment-backend/internal/catalog"
	"github.com/gruntled/assessment-backend/internal/scoring"
	"github.com/gruntled/assessment-backend/internal/storage/models"
)

// PDF writes the printable assessment report: coachee details, then per
// dimension the total, interpretation, development focus and the rated
// statements.
func PDF(w io.Writer, record models.StoredAssessment, summaries []scoring.DimensionSummary) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Leadership Assessment Report", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Coachee Information", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Name: %s", orUnknown(record.CoacheeName)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Email: %s", orUnknown(record.CoacheeEmail)), "", 1, "L", false, 0, "")
	phone := record.CoacheePhone
	if phone == "" {
		phone = "Not provided"
	}
	pdf.CellFormat(0, 8, fmt.Sprintf("Phone: %s", phone), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Assessment Date: %s", displayDate(record.AssessmentStart)), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "Leadership Dimensions Analysis", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, s := range summaries {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("%s: %d/%d", s.Title, s.Total, s.MaxTotal), "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf("Analysis: %s", s.Interpretation), "", "L", false)
		pdf.MultiCell(0, 6, fmt.Sprintf("Development Focus: %s", s.Development), "", "L", false)

		pdf.SetFont("Arial", "I", 9)
		for _, stmt := range catalog.StatementsFor(s.Key) {
			rating, answered := record.Scores[s.Key][stmt.Key]
			detail := fmt.Sprintf("- %s: %d/%d", stmt.Prompt, rating, catalog.MaxRating)
			if !answered {
				detail = fmt.Sprintf("- %s: not answered", stmt.Prompt)
			}
			pdf.MultiCell(0, 5, detail, "", "L", false)
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}

func orUnknown(value string) string {
	if value == "" {
		return "Unknown"
	}
	return value
}

// displayDate renders an ISO-8601 timestamp for humans, falling back to the
// raw string for legacy formats.
func displayDate(iso string) string {
	if t, err := time.Parse(time.RFC3339, iso); err == nil {
		return t.Format("January 2, 2006 at 3:04 PM")
	}
	if t, err := time.Parse("2006-01-02T15:04:05", iso); err == nil {
		return t.Format("January 2, 2006 at 3:04 PM")
	}
	return iso
}
