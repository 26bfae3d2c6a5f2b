package output

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/myinhand/payroll-calculator/internal/domain"
)

// PDFFormatter renders a one-page payslip PDF. Amounts are labeled INR
// because the core PDF fonts cannot encode the rupee sign.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }
func (p PDFFormatter) Ext() string  { return "pdf" }

func (p PDFFormatter) Format(result *domain.PayrollResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Monthly CTC: INR %s", result.MonthlyCTC.RoundUnit()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, e := range result.Earnings {
		pdf.Cell(120, 7, e.Label)
		pdf.CellFormat(40, 7, e.Amount.RoundUnit().String(), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(120, 7, "Total Earnings (A)")
	pdf.CellFormat(40, 7, result.GrossMonthly.RoundUnit().String(), "T", 0, "R", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, d := range result.Deductions {
		pdf.Cell(120, 7, d.Label)
		pdf.CellFormat(40, 7, d.Amount.RoundUnit().String(), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(120, 7, "Total Deductions (B)")
	pdf.CellFormat(40, 7, result.TotalDeductions.RoundUnit().String(), "T", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 9, fmt.Sprintf("In-Hand Salary: INR %s", result.NetInHand.RoundUnit()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
