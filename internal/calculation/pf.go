package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/myinhand/payroll-calculator/internal/domain"
	"github.com/myinhand/payroll-calculator/pkg/money"
)

var (
	// statutoryPfWageCeiling is the monthly wage ceiling for PF under the
	// statutory base (EPF wage ceiling, ₹15,000).
	statutoryPfWageCeiling = money.NewFromInt(15000)
	// maxPfRate is the statutory maximum employee contribution rate.
	maxPfRate = decimal.NewFromInt(12)
)

// PfContribution is the monthly Provident Fund outcome. The employer share
// mirrors the employee share and is reported only for transparency; it is
// not deducted from in-hand pay.
type PfContribution struct {
	EmployeePF money.Money `json:"employee_pf"`
	EmployerPF money.Money `json:"employer_pf"`
}

// PfCalculator computes the capped employee PF contribution under a policy.
type PfCalculator struct{}

// NewPfCalculator creates a new PF calculator
func NewPfCalculator() *PfCalculator {
	return &PfCalculator{}
}

// ComputePf applies the policy to the monthly Basic. The contribution
// never exceeds 12% of the applicable wage base, whatever the caller asks
// for: a larger percentage or fixed amount is silently capped, never
// rejected.
func (pc *PfCalculator) ComputePf(basic money.Money, policy domain.PfPolicy) PfContribution {
	wage := basic
	if policy.Base == domain.PfBaseStatutory {
		wage = money.Min(basic, statutoryPfWageCeiling)
	}

	ceiling := wage.Percent(maxPfRate)

	var raw money.Money
	if policy.Type == domain.PfValuePercentage {
		raw = wage.Percent(policy.Value)
	} else {
		raw = money.NewFromDecimal(policy.Value)
	}

	employee := money.Min(raw, ceiling).ClampNonNegative().RoundUnit()
	return PfContribution{EmployeePF: employee, EmployerPF: employee}
}
