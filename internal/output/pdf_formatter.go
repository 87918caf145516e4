package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// PDFFormatter renders a printable one-profile report
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

type pdfReport struct {
	pdf    *fpdf.Fpdf
	report *Report
}

func (p PDFFormatter) Format(report *Report) ([]byte, error) {
	r := &pdfReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		report: report,
	}

	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	r.pdf.SetTitle("Life Expectancy Report", false)

	r.pdf.AddPage()
	r.addHeader()
	r.addSummary()
	r.addFactorTable()
	r.addSuggestions()
	r.addAssumptions()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addHeader() {
	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, "Life Expectancy Report", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "", 12)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(contentWidth, 8,
		fmt.Sprintf("%s - age %d, %s", r.report.DisplayName(), r.report.Profile.Age, r.report.Profile.Sex),
		"", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.CellFormat(contentWidth, 6,
		fmt.Sprintf("Generated: %s", r.report.GeneratedAt.Format("2 January 2006")),
		"", 1, "C", false, 0, "")
	r.pdf.Ln(8)
}

func (r *pdfReport) sectionTitle(title string) {
	r.pdf.SetFont("Arial", "B", 13)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, title, "", 1, "L", false, 0, "")
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *pdfReport) addSummary() {
	res := r.report.Result
	r.sectionTitle("Summary")

	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	rows := [][2]string{
		{"Base life expectancy", calculation.FormatYears(res.BaseLifeExpectancy) + " years"},
		{"Lifestyle adjustment", calculation.FormatSignedYears(res.YearsGainedLost) + " years"},
		{"Adjusted life expectancy", calculation.FormatYears(res.AdjustedLifeExpectancy) + " years"},
		{"Estimated years remaining", calculation.FormatYears(res.TotalYearsRemaining) + " years"},
	}
	for _, row := range rows {
		r.pdf.SetFont("Arial", "", 11)
		r.pdf.CellFormat(contentWidth*0.6, 7, row[0], "1", 0, "L", true, 0, "")
		r.pdf.SetFont("Arial", "B", 11)
		r.pdf.CellFormat(contentWidth*0.4, 7, row[1], "1", 1, "R", true, 0, "")
	}

	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.CellFormat(contentWidth, 7, calculation.Summary(res), "", 1, "L", false, 0, "")
	r.pdf.Ln(4)
}

func (r *pdfReport) addFactorTable() {
	r.sectionTitle("Factor Impacts")

	widths := []float64{contentWidth * 0.35, contentWidth * 0.4, contentWidth * 0.25}
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.SetFillColor(230, 235, 242)
	for i, h := range []string{"Factor", "Your Choice", "Years"} {
		r.pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 10)
	for _, f := range domain.Factors {
		years := r.report.Result.Impact(f)
		r.pdf.SetTextColor(50, 50, 50)
		r.pdf.CellFormat(widths[0], 7, calculation.FactorName(f), "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(widths[1], 7, calculation.ChoiceLabel(f, r.report.Profile.Choice(f)), "1", 0, "L", false, 0, "")
		r.setToneColor(years)
		r.pdf.CellFormat(widths[2], 7, calculation.FormatSignedYears(years), "1", 1, "R", false, 0, "")
	}
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.Ln(4)
}

func (r *pdfReport) setToneColor(d decimal.Decimal) {
	switch calculation.ImpactTone(d) {
	case calculation.TonePositive:
		r.pdf.SetTextColor(26, 127, 55)
	case calculation.ToneNegative:
		r.pdf.SetTextColor(207, 34, 46)
	default:
		r.pdf.SetTextColor(110, 110, 110)
	}
}

func (r *pdfReport) addSuggestions() {
	r.sectionTitle("Suggestions")
	r.pdf.SetFont("Arial", "", 10)

	if len(r.report.Suggestions) == 0 {
		r.pdf.CellFormat(contentWidth, 7, "Every factor is already at its best choice.", "", 1, "L", false, 0, "")
		r.pdf.Ln(4)
		return
	}

	for i, s := range r.report.Suggestions {
		line := fmt.Sprintf("%d. %s: %s -> %s (%s years)", i+1,
			calculation.FactorName(s.Factor),
			calculation.ChoiceLabel(s.Factor, s.CurrentChoice),
			calculation.ChoiceLabel(s.Factor, s.BestChoice),
			calculation.FormatSignedYears(s.PotentialImprovement))
		r.pdf.CellFormat(contentWidth, 6, line, "", 1, "L", false, 0, "")
	}
	r.pdf.Ln(4)
}

func (r *pdfReport) addAssumptions() {
	r.sectionTitle("Assumptions")
	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(120, 120, 120)
	for _, a := range DefaultAssumptions {
		r.pdf.MultiCell(contentWidth, 4.5, "- "+a, "", "L", false)
	}
}
