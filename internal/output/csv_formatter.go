package output

import (
	"bytes"
	"encoding/csv"

	"github.com/myinhand/payroll-calculator/internal/domain"
)

// CSVFormatter renders the payslip lines as CSV rows, one line item per
// row plus the totals.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }
func (c CSVFormatter) Ext() string  { return "csv" }

func (c CSVFormatter) Format(result *domain.PayrollResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"section", "key", "label", "amount"}); err != nil {
		return nil, err
	}
	for _, e := range result.Earnings {
		if err := w.Write([]string{"earning", string(e.Key), e.Label, e.Amount.RoundUnit().String()}); err != nil {
			return nil, err
		}
	}
	for _, d := range result.Deductions {
		if err := w.Write([]string{"deduction", string(d.Key), d.Label, d.Amount.RoundUnit().String()}); err != nil {
			return nil, err
		}
	}

	totals := [][]string{
		{"total", "GROSS", "Total Earnings", result.GrossMonthly.RoundUnit().String()},
		{"total", "DEDUCTIONS", "Total Deductions", result.TotalDeductions.RoundUnit().String()},
		{"total", "NET", "In-Hand Salary", result.NetInHand.RoundUnit().String()},
	}
	for _, row := range totals {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
