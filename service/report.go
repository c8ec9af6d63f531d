package service

import (
	"bytes"
	"fmt"

	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/config"
	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/model"
	"github.com/go-pdf/fpdf"
)

// ReportRenderer renders a finished analysis into an A4 PDF: a cover
// section with the executive summary, then one block per clause with
// its risk tier and explanation. Long prose is truncated to the
// configured limits so a single clause cannot flood the report.
type ReportRenderer struct {
	summaryLimit     int
	explanationLimit int
}

func NewReportRenderer(cfg *config.ReportConfig) *ReportRenderer {
	return &ReportRenderer{
		summaryLimit:     cfg.SummaryLimit,
		explanationLimit: cfg.ExplanationLimit,
	}
}

// Render produces the PDF bytes for one analysis.
func (r *ReportRenderer) Render(filename string, result *model.AnalysisResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Contract Risk Analysis Report", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Contract Risk Analysis Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("File: %s", filename)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Contract Type: %s (confidence %.2f)",
		result.Classification.ContractType, result.Classification.Confidence)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Overall Risk: %s", result.OverallRisk), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Language: %s", result.Language), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Executive Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(truncateText(result.Summary, r.summaryLimit)), "", "L", false)
	pdf.Ln(4)

	for _, clause := range result.Clauses {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s - Risk: %s", clause.Title, clause.Risk)), "", "L", false)

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(truncateText(clause.Explanation, r.explanationLimit)), "", "L", false)
		if clause.Suggestion != "" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 5, tr("Suggested alternative: "+truncateText(clause.Suggestion, r.explanationLimit)), "", "L", false)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}
