package domain

import (
	"github.com/myinhand/payroll-calculator/pkg/money"
)

// EarningKey identifies a salary earning component
type EarningKey string

const (
	EarningBasic      EarningKey = "BASIC"
	EarningHRA        EarningKey = "HRA"
	EarningLTA        EarningKey = "LTA"
	EarningConveyance EarningKey = "CONVEYANCE"
	EarningMeal       EarningKey = "MEAL"
	EarningMedical    EarningKey = "MEDICAL"
	EarningPhone      EarningKey = "PHONE"
	EarningSpecial    EarningKey = "SPECIAL"
)

// DeductionKey identifies a payslip deduction component
type DeductionKey string

const (
	DeductionPF              DeductionKey = "PF"
	DeductionProfessionalTax DeductionKey = "PROFESSIONAL_TAX"
	DeductionIncomeTax       DeductionKey = "INCOME_TAX"
	DeductionInsurance       DeductionKey = "INSURANCE"
	DeductionMeal            DeductionKey = "MEAL_DEDUCTION"
)

// EarningLine is a single earning row on the payslip. Order is display
// order: Basic first, Special last.
type EarningLine struct {
	Key    EarningKey  `json:"key"`
	Label  string      `json:"label"`
	Amount money.Money `json:"amount"`
}

// DeductionLine is a single deduction row on the payslip
type DeductionLine struct {
	Key    DeductionKey `json:"key"`
	Label  string       `json:"label"`
	Amount money.Money  `json:"amount"`
}

// EarningLabels maps earning keys to their payslip display labels
var EarningLabels = map[EarningKey]string{
	EarningBasic:      "Basic Salary",
	EarningHRA:        "HRA",
	EarningLTA:        "Leave Travel Allowance",
	EarningConveyance: "Conveyance",
	EarningMeal:       "Meal Voucher",
	EarningMedical:    "Medical Allowance",
	EarningPhone:      "Phone / Internet",
	EarningSpecial:    "Special / Consolidated Allowance",
}

// DeductionLabels maps deduction keys to their payslip display labels
var DeductionLabels = map[DeductionKey]string{
	DeductionPF:              "Employee PF",
	DeductionProfessionalTax: "Professional Tax",
	DeductionIncomeTax:       "Income Tax (monthly)",
	DeductionInsurance:       "Insurance",
	DeductionMeal:            "Meal Deduction",
}

// PayrollResult is the full monthly breakdown for one computation. It is a
// value: rebuilt from scratch on every input change, never mutated.
type PayrollResult struct {
	Earnings   []EarningLine   `json:"earnings"`
	Deductions []DeductionLine `json:"deductions"`

	MonthlyCTC      money.Money `json:"monthly_ctc"`
	GrossMonthly    money.Money `json:"gross_monthly"`
	TotalDeductions money.Money `json:"total_deductions"`
	NetInHand       money.Money `json:"net_in_hand"`

	// Reported for transparency; the employer share is not deducted in-hand.
	EmployerPF money.Money `json:"employer_pf"`

	TaxableAnnual    money.Money `json:"taxable_annual"`
	AnnualIncomeTax  money.Money `json:"annual_income_tax"`
	MonthlyIncomeTax money.Money `json:"monthly_income_tax"`
}

// Earning returns the earning line with the given key, if present.
func (r *PayrollResult) Earning(key EarningKey) (EarningLine, bool) {
	for _, e := range r.Earnings {
		if e.Key == key {
			return e, true
		}
	}
	return EarningLine{}, false
}

// Deduction returns the deduction line with the given key, if present.
func (r *PayrollResult) Deduction(key DeductionKey) (DeductionLine, bool) {
	for _, d := range r.Deductions {
		if d.Key == key {
			return d, true
		}
	}
	return DeductionLine{}, false
}
