package http

import (
	"encoding/json"
	"net/http"

	"github.com/myinhand/payroll-calculator/internal/calculation"
	"github.com/myinhand/payroll-calculator/internal/config"
	"github.com/myinhand/payroll-calculator/internal/domain"
	"github.com/myinhand/payroll-calculator/internal/handler/http/response"
)

// PayrollHandler exposes the payroll engine over HTTP.
type PayrollHandler struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
}

// NewPayrollHandler creates a new payroll handler.
func NewPayrollHandler(engine *calculation.CalculationEngine) *PayrollHandler {
	return &PayrollHandler{engine: engine, parser: config.NewInputParser()}
}

// Calculate handles POST /payroll/calculate. The body is a
// domain.InputSpec; absent fields keep their conventional defaults.
func (h *PayrollHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var spec domain.InputSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	in := spec.Build()
	if err := h.parser.ValidateInput(&in); err != nil {
		response.ValidationError(w, map[string]string{"input": err.Error()})
		return
	}

	result, ok := h.engine.Calculate(in)
	if !ok {
		response.ValidationError(w, map[string]string{
			"annual_ctc":    "must be positive",
			"basic_percent": "must be positive",
		})
		return
	}
	response.Success(w, result)
}
