package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/myinhand/payroll-calculator/internal/calculation"
	"github.com/myinhand/payroll-calculator/internal/config"
	"github.com/myinhand/payroll-calculator/internal/feedback"
	appHTTP "github.com/myinhand/payroll-calculator/internal/handler/http"
	"github.com/myinhand/payroll-calculator/internal/output"
	"github.com/myinhand/payroll-calculator/internal/repository/postgresql"
)

var (
	inputFile    string
	outputFormat string
	writeToFile  bool
	memoryStore  bool
)

var rootCmd = &cobra.Command{
	Use:   "inhand",
	Short: "Monthly in-hand salary calculator for Indian CTC structures",
	Long: `inhand breaks an annual CTC into a monthly payslip: basic, HRA and
fixed allowances on the earnings side, PF, professional tax and income
tax (old or new regime) on the deductions side.`,
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Compute a monthly payslip from a YAML input file",
	RunE:  runCalculate,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the payroll and feedback HTTP API",
	RunE:  runServe,
}

func init() {
	calculateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "path to YAML input file (required)")
	calculateCmd.Flags().StringVarP(&outputFormat, "format", "f", "console",
		fmt.Sprintf("output format (%s)", strings.Join(output.AvailableFormatterNames(), ", ")))
	calculateCmd.Flags().BoolVarP(&writeToFile, "output", "o", false, "write to a timestamped payslip file instead of stdout")
	_ = calculateCmd.MarkFlagRequired("input")

	serveCmd.Flags().BoolVar(&memoryStore, "memory", false, "keep feedback in memory instead of postgres")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(serveCmd)
}

func runCalculate(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	in, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return fmt.Errorf("error loading input: %w", err)
	}

	engine := calculation.NewCalculationEngine()
	result, ok := engine.Calculate(*in)
	if !ok {
		return fmt.Errorf("annual CTC and basic percent must both be positive")
	}

	formatter := output.GetFormatterByName(outputFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %s)",
			outputFormat, strings.Join(output.AvailableFormatterNames(), ", "))
	}

	if writeToFile {
		filename, err := output.WriteFormatted(formatter, result)
		if err != nil {
			return fmt.Errorf("error writing payslip: %w", err)
		}
		fmt.Printf("Payslip written to %s\n", filename)
		return nil
	}

	data, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("error formatting payslip: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if memoryStore {
		cfg.MemoryStore = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	var store feedback.Store
	if cfg.MemoryStore {
		store = feedback.NewMemoryStore()
	} else {
		pool, err := postgresql.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("error connecting to database: %w", err)
		}
		defer pool.Close()
		if err := postgresql.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("error running migrations: %w", err)
		}
		store = postgresql.NewFeedbackStore(pool)
	}

	payrollHandler := appHTTP.NewPayrollHandler(calculation.NewCalculationEngine())
	feedbackHandler := appHTTP.NewFeedbackHandler(feedback.NewService(store))

	router := appHTTP.NewRouter(payrollHandler, feedbackHandler, appHTTP.RouterOptions{
		CORSOrigin: cfg.CORSOrigin,
		LogLevel:   parseLogLevel(cfg.LogLevel),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	return http.ListenAndServe(addr, router)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
