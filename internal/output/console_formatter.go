package output

import (
	"bytes"
	"fmt"

	"github.com/myinhand/payroll-calculator/internal/domain"
)

// ConsoleFormatter renders the payslip as sectioned plain text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }
func (c ConsoleFormatter) Ext() string  { return "txt" }

func (c ConsoleFormatter) Format(result *domain.PayrollResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "MONTHLY SALARY BREAKDOWN")
	fmt.Fprintln(&buf, "========================")
	fmt.Fprintf(&buf, "Monthly CTC: %s\n", result.MonthlyCTC.RoundUnit().Format())
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Earnings")
	for _, e := range result.Earnings {
		fmt.Fprintf(&buf, "  %-34s %12s\n", e.Label, e.Amount.RoundUnit().Format())
	}
	fmt.Fprintf(&buf, "  %-34s %12s\n", "Total Earnings (A)", result.GrossMonthly.RoundUnit().Format())
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Deductions")
	for _, d := range result.Deductions {
		fmt.Fprintf(&buf, "  %-34s %12s\n", d.Label, d.Amount.RoundUnit().Format())
	}
	fmt.Fprintf(&buf, "  %-34s %12s\n", "Total Deductions (B)", result.TotalDeductions.RoundUnit().Format())
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Employer PF (not deducted): %s\n", result.EmployerPF.Format())
	fmt.Fprintf(&buf, "Taxable Income (annual): %s\n", result.TaxableAnnual.RoundUnit().Format())
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "In-Hand Salary: %s\n", result.NetInHand.RoundUnit().Format())
	return buf.Bytes(), nil
}
