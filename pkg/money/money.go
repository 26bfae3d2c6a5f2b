package money

import (
	"github.com/shopspring/decimal"
)

// Money represents a rupee amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// New creates a new Money instance from a float64
func New(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewFromInt creates a new Money instance from an int64 rupee amount
func NewFromInt(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// NewFromDecimal creates a new Money instance from a decimal.Decimal
func NewFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewFromString creates a new Money instance from a string
func NewFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// RoundUnit rounds the amount to the nearest whole rupee. Indian payroll
// line items are conventionally reported in whole rupees.
func (m Money) RoundUnit() Money {
	return Money{m.Decimal.Round(0)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Percent returns the given percentage of the amount (value in percentage
// points, e.g. 40 for 40%).
func (m Money) Percent(points decimal.Decimal) Money {
	return Money{m.Decimal.Mul(points).Div(decimal.NewFromInt(100))}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// GreaterThanOrEqual checks if this amount is greater than or equal to another
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// LessThanOrEqual checks if this amount is less than or equal to another
func (m Money) LessThanOrEqual(other Money) bool {
	return m.Decimal.LessThanOrEqual(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsPositive checks if the amount is positive
func (m Money) IsPositive() bool {
	return m.Decimal.IsPositive()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Min returns the minimum of two Money amounts
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the maximum of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// ClampNonNegative floors the amount at zero
func (m Money) ClampNonNegative() Money {
	if m.IsNegative() {
		return Zero()
	}
	return m
}

// String returns the whole-rupee string representation
func (m Money) String() string {
	return m.Decimal.StringFixed(0)
}

// Format formats the amount with the rupee sign
func (m Money) Format() string {
	return "₹" + m.String()
}
