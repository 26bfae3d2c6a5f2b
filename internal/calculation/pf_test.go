package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/myinhand/payroll-calculator/internal/domain"
	"github.com/myinhand/payroll-calculator/pkg/money"
)

// TestComputePf tests the PF contribution under the policy matrix
func TestComputePf(t *testing.T) {
	calculator := NewPfCalculator()

	tests := []struct {
		name        string
		basic       money.Money
		policy      domain.PfPolicy
		expected    money.Money
		description string
	}{
		{
			name:        "Full basic at the statutory rate",
			basic:       money.NewFromInt(144000),
			policy:      domain.PfPolicy{Base: domain.PfBaseFullBasic, Type: domain.PfValuePercentage, Value: decimal.NewFromInt(12)},
			expected:    money.NewFromInt(17280),
			description: "12% of 144000 exactly meets the cap",
		},
		{
			name:        "Statutory flat default",
			basic:       money.NewFromInt(144000),
			policy:      domain.DefaultStatutoryPfPolicy(),
			expected:    money.NewFromInt(1800),
			description: "Flat 1800 is exactly 12% of the 15000 ceiling",
		},
		{
			name:        "Statutory base caps the wage",
			basic:       money.NewFromInt(144000),
			policy:      domain.PfPolicy{Base: domain.PfBaseStatutory, Type: domain.PfValuePercentage, Value: decimal.NewFromInt(12)},
			expected:    money.NewFromInt(1800),
			description: "Wage capped at 15000 before the 12% rate",
		},
		{
			name:        "Low basic under the statutory ceiling",
			basic:       money.NewFromInt(10000),
			policy:      domain.PfPolicy{Base: domain.PfBaseStatutory, Type: domain.PfValuePercentage, Value: decimal.NewFromInt(12)},
			expected:    money.NewFromInt(1200),
			description: "Actual basic used when below the ceiling",
		},
		{
			name:        "Percentage above the ceiling rate is capped",
			basic:       money.NewFromInt(50000),
			policy:      domain.PfPolicy{Base: domain.PfBaseFullBasic, Type: domain.PfValuePercentage, Value: decimal.NewFromInt(20)},
			expected:    money.NewFromInt(6000),
			description: "Hard ceiling at 12% of wage, not a warning",
		},
		{
			name:        "Fixed amount above the cap is capped",
			basic:       money.NewFromInt(10000),
			policy:      domain.PfPolicy{Base: domain.PfBaseStatutory, Type: domain.PfValueFixed, Value: decimal.NewFromInt(5000)},
			expected:    money.NewFromInt(1200),
			description: "Fixed requests obey the same ceiling",
		},
		{
			name:        "Negative fixed amount clamps to zero",
			basic:       money.NewFromInt(50000),
			policy:      domain.PfPolicy{Base: domain.PfBaseFullBasic, Type: domain.PfValueFixed, Value: decimal.NewFromInt(-100)},
			expected:    money.Zero(),
			description: "Contribution never goes negative",
		},
		{
			name:        "Zero basic yields zero",
			basic:       money.Zero(),
			policy:      domain.DefaultStatutoryPfPolicy(),
			expected:    money.Zero(),
			description: "Cap of zero swallows any fixed request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculator.ComputePf(tt.basic, tt.policy)
			assert.True(t, got.EmployeePF.Equal(tt.expected),
				"%s: expected %s, got %s", tt.description,
				tt.expected.String(), got.EmployeePF.String())
			assert.True(t, got.EmployerPF.Equal(got.EmployeePF),
				"employer share mirrors the employee share")
		})
	}
}

// TestPfCeilingProperty sweeps wage bases and rates and checks the
// contribution never exceeds 12% of the applicable wage
func TestPfCeilingProperty(t *testing.T) {
	calculator := NewPfCalculator()

	for _, base := range []domain.PfBase{domain.PfBaseStatutory, domain.PfBaseFullBasic} {
		for basic := int64(0); basic <= 200000; basic += 12500 {
			for rate := int64(0); rate <= 40; rate += 4 {
				policy := domain.PfPolicy{Base: base, Type: domain.PfValuePercentage, Value: decimal.NewFromInt(rate)}
				got := calculator.ComputePf(money.NewFromInt(basic), policy)

				wage := money.NewFromInt(basic)
				if base == domain.PfBaseStatutory {
					wage = money.Min(wage, money.NewFromInt(15000))
				}
				ceiling := wage.Percent(decimal.NewFromInt(12))

				assert.False(t, got.EmployeePF.IsNegative())
				// RoundUnit may push the contribution at most half a rupee
				// past the exact ceiling.
				assert.True(t, got.EmployeePF.Sub(ceiling).LessThanOrEqual(money.New(0.5)),
					"base=%s basic=%d rate=%d: pf %s exceeds ceiling %s",
					base, basic, rate, got.EmployeePF.String(), ceiling.String())
			}
		}
	}
}
