package output

import (
	"encoding/json"

	"github.com/myinhand/payroll-calculator/internal/domain"
)

// JSONFormatter renders the full payroll result as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }
func (j JSONFormatter) Ext() string  { return "json" }

func (j JSONFormatter) Format(result *domain.PayrollResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
