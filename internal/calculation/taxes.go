package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/myinhand/payroll-calculator/internal/domain"
	"github.com/myinhand/payroll-calculator/pkg/money"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Slabs are the FY 2023-24 Indian income tax slabs for both regimes,
//    encoded as the breakpoint formulas relied on by existing callers.
//    The new regime is not a continuous bracket walk: income at or below
//    ₹7,00,000 pays zero, then tax resumes from the ₹6,00,000 anchor, so
//    each slab carries its own base amount and anchor.
//
// 2. Standard deduction ₹50,000 applies under the old regime only; new
//    regime taxable income is annual gross unmodified.
//
// 3. The 4% health-and-education cess is policy-dependent and sits behind
//    TaxOptions.ApplyCess.
//
// 4. No Section 87A rebate, no surcharge beyond the cess, no negative tax.

// TaxSlab is one row of a regime's slab table. Income at or below Ceiling
// (unbounded when zero) is taxed Base plus Rate on the excess over Anchor.
type TaxSlab struct {
	Ceiling money.Money
	Base    money.Money
	Anchor  money.Money
	Rate    decimal.Decimal
}

// TaxCalculator computes annual income tax under either regime.
type TaxCalculator struct {
	StandardDeduction money.Money
	CessRate          decimal.Decimal
	Options           domain.TaxOptions

	newRegimeSlabs []TaxSlab
	oldRegimeSlabs []TaxSlab
}

// NewTaxCalculator creates a tax calculator with the default options.
func NewTaxCalculator() *TaxCalculator {
	return NewTaxCalculatorWithOptions(domain.DefaultTaxOptions())
}

// NewTaxCalculatorWithOptions creates a tax calculator with explicit
// cess/itemized toggles.
func NewTaxCalculatorWithOptions(opts domain.TaxOptions) *TaxCalculator {
	return &TaxCalculator{
		StandardDeduction: money.NewFromInt(50000),
		CessRate:          decimal.NewFromFloat(0.04),
		Options:           opts,
		newRegimeSlabs: []TaxSlab{
			{Ceiling: money.NewFromInt(700000)},
			{Ceiling: money.NewFromInt(900000), Anchor: money.NewFromInt(600000), Rate: decimal.NewFromFloat(0.10)},
			{Ceiling: money.NewFromInt(1200000), Base: money.NewFromInt(30000), Anchor: money.NewFromInt(900000), Rate: decimal.NewFromFloat(0.15)},
			{Ceiling: money.NewFromInt(1500000), Base: money.NewFromInt(75000), Anchor: money.NewFromInt(1200000), Rate: decimal.NewFromFloat(0.20)},
			{Base: money.NewFromInt(135000), Anchor: money.NewFromInt(1500000), Rate: decimal.NewFromFloat(0.30)},
		},
		oldRegimeSlabs: []TaxSlab{
			{Ceiling: money.NewFromInt(250000)},
			{Ceiling: money.NewFromInt(500000), Anchor: money.NewFromInt(250000), Rate: decimal.NewFromFloat(0.05)},
			{Ceiling: money.NewFromInt(1000000), Base: money.NewFromInt(12500), Anchor: money.NewFromInt(500000), Rate: decimal.NewFromFloat(0.20)},
			{Base: money.NewFromInt(112500), Anchor: money.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.30)},
		},
	}
}

// TaxableIncome derives annual taxable income from gross monthly earnings.
// Old-regime deductions (standard plus itemized when allowed) are
// subtracted before slabbing and the result floors at zero.
func (tc *TaxCalculator) TaxableIncome(grossMonthly money.Money, regime domain.TaxRegime, deductions domain.TaxDeductions) money.Money {
	grossAnnual := grossMonthly.Annual()
	if regime == domain.RegimeNew {
		return grossAnnual
	}

	total := tc.StandardDeduction
	if tc.Options.AllowItemized {
		total = total.Add(deductions.Total())
	}
	return grossAnnual.Sub(total).ClampNonNegative()
}

// ComputeTax returns the annual income tax on the given taxable income
// under the selected regime, including cess when enabled.
func (tc *TaxCalculator) ComputeTax(taxableAnnual money.Money, regime domain.TaxRegime) money.Money {
	slabs := tc.oldRegimeSlabs
	if regime == domain.RegimeNew {
		slabs = tc.newRegimeSlabs
	}

	income := taxableAnnual.ClampNonNegative()
	tax := slabTax(income, slabs)

	if tc.Options.ApplyCess {
		tax = tax.Add(tax.Mul(tc.CessRate))
	}
	return tax
}

// MonthlyTax is the annual tax spread over twelve months, rounded to the
// nearest rupee.
func (tc *TaxCalculator) MonthlyTax(annualTax money.Money) money.Money {
	return annualTax.Monthly().RoundUnit()
}

func slabTax(income money.Money, slabs []TaxSlab) money.Money {
	for _, slab := range slabs {
		if slab.Ceiling.IsZero() || income.LessThanOrEqual(slab.Ceiling) {
			if slab.Rate.IsZero() {
				return slab.Base
			}
			return slab.Base.Add(income.Sub(slab.Anchor).Mul(slab.Rate))
		}
	}
	return money.Zero()
}
