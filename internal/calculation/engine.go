package calculation

import (
	"github.com/myinhand/payroll-calculator/internal/domain"
	"github.com/myinhand/payroll-calculator/pkg/money"
)

// ProfessionalTax is the flat monthly professional tax component.
var ProfessionalTax = money.NewFromInt(200)

// CalculationEngine orchestrates the payroll pipeline: decompose the CTC,
// compute PF off the resulting Basic, tax the gross, aggregate the net.
type CalculationEngine struct {
	Decomposer *CompensationDecomposer
	PfCalc     *PfCalculator
	TaxCalc    *TaxCalculator
	Logger     Logger
}

// NewCalculationEngine creates an engine with default tax options.
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithOptions(domain.DefaultTaxOptions())
}

// NewCalculationEngineWithOptions creates an engine with explicit tax
// options.
func NewCalculationEngineWithOptions(opts domain.TaxOptions) *CalculationEngine {
	return &CalculationEngine{
		Decomposer: NewCompensationDecomposer(),
		PfCalc:     NewPfCalculator(),
		TaxCalc:    NewTaxCalculatorWithOptions(opts),
		Logger:     NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate runs the full monthly breakdown. The second return value is
// false when the inputs are not yet presentable (CTC or basic percent not
// positive); every arithmetic path below is still total, so this is a
// presentation gate rather than an error.
func (ce *CalculationEngine) Calculate(in domain.PayrollInput) (*domain.PayrollResult, bool) {
	if !in.Valid() {
		ce.Logger.Debugf("inputs not presentable: ctc=%s basic%%=%s", in.AnnualCTC, in.BasicPercent)
		return nil, false
	}

	earnings := ce.Decomposer.Decompose(in)
	gross := SumEarnings(earnings)

	basic := money.Zero()
	if line, ok := earningByKey(earnings, domain.EarningBasic); ok {
		basic = line.Amount
	}

	pf := ce.PfCalc.ComputePf(basic, in.PF)

	taxCalc := ce.taxCalcFor(in.TaxOptions)
	taxable := taxCalc.TaxableIncome(gross, in.Regime, in.TaxDeductions)
	annualTax := taxCalc.ComputeTax(taxable, in.Regime)
	monthlyTax := taxCalc.MonthlyTax(annualTax)

	deductions := []domain.DeductionLine{
		{Key: domain.DeductionPF, Amount: pf.EmployeePF},
		{Key: domain.DeductionProfessionalTax, Amount: ProfessionalTax},
		{Key: domain.DeductionIncomeTax, Amount: monthlyTax},
	}
	totalDeductions := money.Zero()
	for i := range deductions {
		deductions[i].Label = domain.DeductionLabels[deductions[i].Key]
		totalDeductions = totalDeductions.Add(deductions[i].Amount)
	}

	// Net may go negative when deductions exceed earnings; surfaced as-is.
	result := &domain.PayrollResult{
		Earnings:         earnings,
		Deductions:       deductions,
		MonthlyCTC:       in.AnnualCTC.Monthly(),
		GrossMonthly:     gross,
		TotalDeductions:  totalDeductions,
		NetInHand:        gross.Sub(totalDeductions),
		EmployerPF:       pf.EmployerPF,
		TaxableAnnual:    taxable,
		AnnualIncomeTax:  annualTax,
		MonthlyIncomeTax: monthlyTax,
	}
	return result, true
}

func (ce *CalculationEngine) taxCalcFor(opts domain.TaxOptions) *TaxCalculator {
	if ce.TaxCalc != nil && ce.TaxCalc.Options == opts {
		return ce.TaxCalc
	}
	return NewTaxCalculatorWithOptions(opts)
}

func earningByKey(earnings []domain.EarningLine, key domain.EarningKey) (domain.EarningLine, bool) {
	for _, e := range earnings {
		if e.Key == key {
			return e, true
		}
	}
	return domain.EarningLine{}, false
}
