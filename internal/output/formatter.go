package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/myinhand/payroll-calculator/internal/domain"
)

// Formatter defines a pluggable payslip formatter that returns a byte
// slice. Implementations should be pure (no side effects besides
// deterministic formatting).
type Formatter interface {
	Format(result *domain.PayrollResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Ext returns the file extension used by WriteFormatted.
	Ext() string
}

// WriteFormatted runs a formatter and writes output to a timestamped file.
func WriteFormatted(f Formatter, result *domain.PayrollResult) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("payslip_%s.%s", time.Now().Format("20060102_150405"), f.Ext())
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
	PDFFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"plain":       "console",
	"json-pretty": "json",
	"payslip-pdf": "pdf",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}
