package domain

import (
	"github.com/shopspring/decimal"

	"github.com/myinhand/payroll-calculator/pkg/money"
)

// PfBase selects the wage base used for PF math
type PfBase string

const (
	// PfBaseStatutory caps the PF wage at the statutory ceiling regardless
	// of actual Basic.
	PfBaseStatutory PfBase = "STATUTORY"
	// PfBaseFullBasic uses the actual monthly Basic as the wage.
	PfBaseFullBasic PfBase = "FULL_BASIC"
)

// PfValueType selects how PfPolicy.Value is interpreted
type PfValueType string

const (
	PfValuePercentage PfValueType = "PERCENTAGE"
	PfValueFixed      PfValueType = "FIXED"
)

// PfPolicy describes the employee Provident Fund contribution rule.
// Value is percentage points when Type is PERCENTAGE, a rupee amount when
// Type is FIXED. The 12%-of-wage statutory ceiling applies either way.
type PfPolicy struct {
	Base  PfBase          `json:"base"`
	Type  PfValueType     `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// DefaultStatutoryPfPolicy is the flat ₹1,800/month contribution used when
// no policy detail is available.
func DefaultStatutoryPfPolicy() PfPolicy {
	return PfPolicy{
		Base:  PfBaseStatutory,
		Type:  PfValueFixed,
		Value: decimal.NewFromInt(1800),
	}
}

// TaxRegime selects one of the two mutually exclusive slab schemes
type TaxRegime string

const (
	RegimeOld TaxRegime = "OLD"
	RegimeNew TaxRegime = "NEW"
)

// TaxDeductions holds the annual old-regime itemized deductions. They are
// ignored under the new regime.
type TaxDeductions struct {
	Sec80C           money.Money `json:"sec_80c"`
	Sec80DSelf       money.Money `json:"sec_80d_self"`
	Sec80DParents    money.Money `json:"sec_80d_parents"`
	HomeLoanInterest money.Money `json:"home_loan_interest"`
	Other            money.Money `json:"other"`
}

// DefaultTaxDeductions returns the conventional starting values offered to
// users declaring old-regime deductions.
func DefaultTaxDeductions() TaxDeductions {
	return TaxDeductions{
		Sec80C:           money.NewFromInt(150000),
		Sec80DSelf:       money.NewFromInt(50000),
		Sec80DParents:    money.Zero(),
		HomeLoanInterest: money.NewFromInt(200000),
		Other:            money.Zero(),
	}
}

// Total sums all itemized deductions.
func (td TaxDeductions) Total() money.Money {
	return td.Sec80C.
		Add(td.Sec80DSelf).
		Add(td.Sec80DParents).
		Add(td.HomeLoanInterest).
		Add(td.Other)
}

// TaxOptions toggles the policy points that differ between deployments.
type TaxOptions struct {
	// ApplyCess adds the 4% health-and-education cess on top of the slab
	// result.
	ApplyCess bool `yaml:"apply_cess" json:"apply_cess"`
	// AllowItemized honors TaxDeductions under the old regime. When false
	// only the standard deduction applies.
	AllowItemized bool `yaml:"allow_itemized" json:"allow_itemized"`
}

// DefaultTaxOptions mirrors the deployed behavior: no cess, itemized
// deductions honored.
func DefaultTaxOptions() TaxOptions {
	return TaxOptions{ApplyCess: false, AllowItemized: true}
}
