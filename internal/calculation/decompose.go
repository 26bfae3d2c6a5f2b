package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/myinhand/payroll-calculator/internal/domain"
	"github.com/myinhand/payroll-calculator/pkg/money"
)

// hraPercentOfBasic is the conventional auto-derivation rate for HRA.
var hraPercentOfBasic = decimal.NewFromInt(40)

// CompensationDecomposer splits an annual CTC into the earning line items.
// The Special allowance absorbs whatever remains of monthly CTC after
// Basic, HRA and the fixed allowances, so the earnings sum back to the
// monthly CTC whenever the CTC is the binding constraint.
type CompensationDecomposer struct{}

// NewCompensationDecomposer creates a new decomposer
func NewCompensationDecomposer() *CompensationDecomposer {
	return &CompensationDecomposer{}
}

// Decompose produces the full earnings list for the given input, in
// display order: Basic first, Special last.
//
// The computation is total: out-of-range inputs (zero or negative CTC,
// basic percent outside the advertised 30-50 window) still produce a
// result, degenerate where the arithmetic says so. Callers gate
// presentation on domain.PayrollInput.Valid, not on errors from here.
func (cd *CompensationDecomposer) Decompose(in domain.PayrollInput) []domain.EarningLine {
	monthlyCTC := in.AnnualCTC.Monthly()
	basic := monthlyCTC.Percent(in.BasicPercent)

	hra := in.HRA.Resolve(func() money.Money {
		return basic.Percent(hraPercentOfBasic).RoundUnit()
	})

	fixed := []domain.EarningLine{
		{Key: domain.EarningConveyance, Amount: in.Conveyance},
		{Key: domain.EarningMeal, Amount: in.Meal},
		{Key: domain.EarningMedical, Amount: in.Medical},
		{Key: domain.EarningPhone, Amount: in.Phone},
	}
	if in.LTA.IsPositive() {
		fixed = append(fixed, domain.EarningLine{Key: domain.EarningLTA, Amount: in.LTA})
	}

	withoutSpecial := basic.Add(hra)
	for _, line := range fixed {
		withoutSpecial = withoutSpecial.Add(line.Amount)
	}

	// When the fixed lines already exceed monthly CTC the Special line
	// clamps to zero and total earnings overshoot the CTC. Accepted: the
	// fixed allowances are floor commitments, not scaled down.
	special := in.Special.Resolve(func() money.Money {
		return monthlyCTC.Sub(withoutSpecial).ClampNonNegative().RoundUnit()
	})

	earnings := make([]domain.EarningLine, 0, len(fixed)+3)
	earnings = append(earnings,
		domain.EarningLine{Key: domain.EarningBasic, Amount: basic},
		domain.EarningLine{Key: domain.EarningHRA, Amount: hra},
	)
	earnings = append(earnings, fixed...)
	earnings = append(earnings, domain.EarningLine{Key: domain.EarningSpecial, Amount: special})

	for i := range earnings {
		earnings[i].Label = domain.EarningLabels[earnings[i].Key]
	}
	return earnings
}

// SumEarnings totals a list of earning lines.
func SumEarnings(earnings []domain.EarningLine) money.Money {
	total := money.Zero()
	for _, e := range earnings {
		total = total.Add(e.Amount)
	}
	return total
}
