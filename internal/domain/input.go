package domain

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/myinhand/payroll-calculator/pkg/money"
)

// Default fixed allowance amounts, independently editable by the caller.
var (
	DefaultConveyance = money.NewFromInt(1600)
	DefaultMeal       = money.NewFromInt(2200)
	DefaultMedical    = money.NewFromInt(1250)
	DefaultPhone      = money.NewFromInt(1500)
)

// LineSetting records whether an auto-derived payslip line has been
// manually overridden for the current session. The zero value is Auto:
// the line is re-derived on every computation. Once Manual, the supplied
// value is used verbatim until the setting is reset.
type LineSetting struct {
	manual bool
	value  money.Money
}

// Auto returns a setting that re-derives the line each computation.
func Auto() LineSetting {
	return LineSetting{}
}

// Manual returns a setting that pins the line to a caller-supplied value.
func Manual(v money.Money) LineSetting {
	return LineSetting{manual: true, value: v}
}

// IsManual reports whether the line is pinned.
func (s LineSetting) IsManual() bool {
	return s.manual
}

// Resolve returns the pinned value when manual, otherwise the derived one.
func (s LineSetting) Resolve(derive func() money.Money) money.Money {
	if s.manual {
		return s.value
	}
	return derive()
}

// PayrollInput carries everything one computation needs. It is passed in
// fresh each time; the engine holds no state between invocations.
type PayrollInput struct {
	AnnualCTC    money.Money
	BasicPercent decimal.Decimal

	// HRA and Special are auto-derived unless manually overridden.
	HRA     LineSetting
	Special LineSetting

	// Fixed allowances, treated as floor commitments.
	Conveyance money.Money
	Meal       money.Money
	Medical    money.Money
	Phone      money.Money
	LTA        money.Money

	PF            PfPolicy
	Regime        TaxRegime
	TaxDeductions TaxDeductions
	TaxOptions    TaxOptions
}

// NewPayrollInput returns an input with the conventional defaults applied.
func NewPayrollInput(annualCTC money.Money, basicPercent decimal.Decimal) PayrollInput {
	return PayrollInput{
		AnnualCTC:     annualCTC,
		BasicPercent:  basicPercent,
		Conveyance:    DefaultConveyance,
		Meal:          DefaultMeal,
		Medical:       DefaultMedical,
		Phone:         DefaultPhone,
		LTA:           money.Zero(),
		PF:            DefaultStatutoryPfPolicy(),
		Regime:        RegimeOld,
		TaxDeductions: DefaultTaxDeductions(),
		TaxOptions:    DefaultTaxOptions(),
	}
}

// Valid reports whether the inputs are presentable. The engine itself is
// total over the reals; this gate is for callers deciding what to show.
func (in PayrollInput) Valid() bool {
	return in.AnnualCTC.IsPositive() && in.BasicPercent.IsPositive()
}

// UpdateCTC changes the annual CTC and releases the manual-override
// latches on the derived lines, which must be re-derived from the new
// residual.
func (in *PayrollInput) UpdateCTC(v money.Money) {
	in.AnnualCTC = v
	in.HRA = Auto()
	in.Special = Auto()
}

// UpdateBasicPercent changes the basic percentage and releases the
// manual-override latches on the derived lines.
func (in *PayrollInput) UpdateBasicPercent(p decimal.Decimal) {
	in.BasicPercent = p
	in.HRA = Auto()
	in.Special = Auto()
}

// PfPolicySpec mirrors PfPolicy with plain scalars for wire decoding.
type PfPolicySpec struct {
	Base  string  `yaml:"base" json:"base"`
	Type  string  `yaml:"type" json:"type"`
	Value float64 `yaml:"value" json:"value"`
}

// TaxDeductionsSpec mirrors TaxDeductions with optional scalars; absent
// fields keep their conventional defaults.
type TaxDeductionsSpec struct {
	Sec80C           *float64 `yaml:"sec_80c" json:"sec_80c"`
	Sec80DSelf       *float64 `yaml:"sec_80d_self" json:"sec_80d_self"`
	Sec80DParents    *float64 `yaml:"sec_80d_parents" json:"sec_80d_parents"`
	HomeLoanInterest *float64 `yaml:"home_loan_interest" json:"home_loan_interest"`
	Other            *float64 `yaml:"other" json:"other"`
}

// InputSpec is the wire shape of a payroll input, shared by the YAML file
// format and the HTTP calculate endpoint. Pointer fields distinguish
// "absent, keep the default" from an explicit zero; hra and special, when
// present, become manual overrides.
type InputSpec struct {
	AnnualCTC     float64            `yaml:"annual_ctc" json:"annual_ctc"`
	BasicPercent  float64            `yaml:"basic_percent" json:"basic_percent"`
	HRA           *float64           `yaml:"hra" json:"hra"`
	Special       *float64           `yaml:"special" json:"special"`
	Conveyance    *float64           `yaml:"conveyance" json:"conveyance"`
	Meal          *float64           `yaml:"meal" json:"meal"`
	Medical       *float64           `yaml:"medical" json:"medical"`
	Phone         *float64           `yaml:"phone" json:"phone"`
	LTA           *float64           `yaml:"lta" json:"lta"`
	PF            *PfPolicySpec      `yaml:"pf" json:"pf"`
	Regime        string             `yaml:"regime" json:"regime"`
	TaxDeductions *TaxDeductionsSpec `yaml:"tax_deductions" json:"tax_deductions"`
	TaxOptions    *TaxOptions        `yaml:"tax_options" json:"tax_options"`
}

// Build resolves the wire values against the conventional defaults.
func (spec InputSpec) Build() PayrollInput {
	in := NewPayrollInput(money.New(spec.AnnualCTC), decimal.NewFromFloat(spec.BasicPercent))

	if spec.HRA != nil {
		in.HRA = Manual(money.New(*spec.HRA))
	}
	if spec.Special != nil {
		in.Special = Manual(money.New(*spec.Special))
	}
	if spec.Conveyance != nil {
		in.Conveyance = money.New(*spec.Conveyance)
	}
	if spec.Meal != nil {
		in.Meal = money.New(*spec.Meal)
	}
	if spec.Medical != nil {
		in.Medical = money.New(*spec.Medical)
	}
	if spec.Phone != nil {
		in.Phone = money.New(*spec.Phone)
	}
	if spec.LTA != nil {
		in.LTA = money.New(*spec.LTA)
	}
	if spec.PF != nil {
		in.PF = PfPolicy{
			Base:  PfBase(spec.PF.Base),
			Type:  PfValueType(spec.PF.Type),
			Value: decimal.NewFromFloat(spec.PF.Value),
		}
	}
	if spec.Regime != "" {
		in.Regime = TaxRegime(spec.Regime)
	}
	if spec.TaxDeductions != nil {
		td := &in.TaxDeductions
		if spec.TaxDeductions.Sec80C != nil {
			td.Sec80C = money.New(*spec.TaxDeductions.Sec80C)
		}
		if spec.TaxDeductions.Sec80DSelf != nil {
			td.Sec80DSelf = money.New(*spec.TaxDeductions.Sec80DSelf)
		}
		if spec.TaxDeductions.Sec80DParents != nil {
			td.Sec80DParents = money.New(*spec.TaxDeductions.Sec80DParents)
		}
		if spec.TaxDeductions.HomeLoanInterest != nil {
			td.HomeLoanInterest = money.New(*spec.TaxDeductions.HomeLoanInterest)
		}
		if spec.TaxDeductions.Other != nil {
			td.Other = money.New(*spec.TaxDeductions.Other)
		}
	}
	if spec.TaxOptions != nil {
		in.TaxOptions = *spec.TaxOptions
	}

	return in
}

// UnmarshalYAML decodes a payroll input file through InputSpec.
func (in *PayrollInput) UnmarshalYAML(value *yaml.Node) error {
	var spec InputSpec
	if err := value.Decode(&spec); err != nil {
		return err
	}
	*in = spec.Build()
	return nil
}
