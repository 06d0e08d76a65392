package cmd

import (
	"context"
	"fmt"

	"github.com/fintoolbox/debtpro/internal/calculation"
	"github.com/fintoolbox/debtpro/internal/config"
	"github.com/fintoolbox/debtpro/internal/output"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run the projections in a plan file and write a report",
	RunE:  runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(flagInput)
	if err != nil {
		return fmt.Errorf("loading plan: %w", err)
	}

	engine := calculation.NewProjectionEngine()
	if flagDebug {
		engine.Debug = true
		engine.SetLogger(stderrLogger{})
	}

	results, err := engine.RunPlan(context.Background(), plan)
	if err != nil {
		return fmt.Errorf("running projections: %w", err)
	}

	if err := output.GenerateReport(results, flagFormat); err != nil {
		return err
	}
	fmt.Printf("Projected %d strategies over %s.\n", len(results.Strategies), flagInput)
	return nil
}
