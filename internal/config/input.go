package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/myinhand/payroll-calculator/internal/domain"
)

// InputParser handles parsing of payroll input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a payroll input from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.PayrollInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Load(data)
}

// Load parses a payroll input from raw YAML
func (ip *InputParser) Load(data []byte) (*domain.PayrollInput, error) {
	var in domain.PayrollInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&in); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return &in, nil
}

// ValidateInput checks structural validity. Out-of-policy-range values
// (negative CTC, basic percent outside the advertised 30-50 window) are
// deliberately not rejected here: the engine is total over the reals and
// presentation gating is the caller's job. Only values the engine cannot
// interpret at all are errors.
func (ip *InputParser) ValidateInput(in *domain.PayrollInput) error {
	switch in.PF.Base {
	case domain.PfBaseStatutory, domain.PfBaseFullBasic:
	default:
		return fmt.Errorf("unknown pf base %q", in.PF.Base)
	}

	switch in.PF.Type {
	case domain.PfValuePercentage, domain.PfValueFixed:
	default:
		return fmt.Errorf("unknown pf value type %q", in.PF.Type)
	}

	switch in.Regime {
	case domain.RegimeOld, domain.RegimeNew:
	default:
		return fmt.Errorf("unknown tax regime %q", in.Regime)
	}

	return nil
}
