package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagInput  string
	flagFormat string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "debtpro",
	Short: "Mortgage payoff and debt recycling projections",
	Long: "Compare household mortgage strategies year by year: minimum repayments,\n" +
		"extra repayments, or leveraging equity into an investment property with\n" +
		"debt recycling into a share portfolio.",
	RunE: runProject,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "plan.yaml", "Plan input file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console", "Report format")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable engine debug output")
}

// stderrLogger writes engine traces to stderr when --debug is on.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { logLine("DEBUG", format, args...) }
func (stderrLogger) Infof(format string, args ...any)  { logLine("INFO", format, args...) }
func (stderrLogger) Warnf(format string, args ...any)  { logLine("WARN", format, args...) }
func (stderrLogger) Errorf(format string, args ...any) { logLine("ERROR", format, args...) }

func logLine(level, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}
