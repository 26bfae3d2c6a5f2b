package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myinhand/payroll-calculator/internal/calculation"
	"github.com/myinhand/payroll-calculator/internal/config"
	"github.com/myinhand/payroll-calculator/internal/domain"
	"github.com/myinhand/payroll-calculator/internal/output"
)

func TestEndToEndCalculation(t *testing.T) {
	// Load a real input file and run it through the engine
	parser := config.NewInputParser()
	in, err := parser.LoadFromFile("../testdata/example_input.yaml")

	assert.NoError(t, err)
	require.NotNil(t, in)

	engine := calculation.NewCalculationEngine()
	result, ok := engine.Calculate(*in)
	require.True(t, ok)
	require.NotNil(t, result)

	assert.Equal(t, "300000", result.GrossMonthly.String())
	assert.Equal(t, "218770", result.NetInHand.String())
	assert.Equal(t, "63750", result.MonthlyIncomeTax.String())

	basic, found := result.Earning(domain.EarningBasic)
	require.True(t, found)
	assert.Equal(t, "144000", basic.Amount.String())

	hra, found := result.Earning(domain.EarningHRA)
	require.True(t, found)
	assert.Equal(t, "57600", hra.Amount.String())

	pf, found := result.Deduction(domain.DeductionPF)
	require.True(t, found)
	assert.Equal(t, "17280", pf.Amount.String())
	assert.Equal(t, "17280", result.EmployerPF.String())
}

func TestAllFormattersOnRealInput(t *testing.T) {
	parser := config.NewInputParser()
	in, err := parser.LoadFromFile("../testdata/example_input.yaml")
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	result, ok := engine.Calculate(*in)
	require.True(t, ok)

	for _, name := range output.AvailableFormatterNames() {
		f := output.GetFormatterByName(name)
		require.NotNil(t, f, "formatter %s should be registered", name)

		data, err := f.Format(result)
		assert.NoError(t, err, "formatter %s should not fail", name)
		assert.NotEmpty(t, data, "formatter %s should produce output", name)
	}
}

func TestJSONOutputRoundTrips(t *testing.T) {
	parser := config.NewInputParser()
	in, err := parser.LoadFromFile("../testdata/example_input.yaml")
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	result, ok := engine.Calculate(*in)
	require.True(t, ok)

	f := output.GetFormatterByName("json")
	require.NotNil(t, f)
	data, err := f.Format(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "218770", decoded["net_in_hand"])
}
