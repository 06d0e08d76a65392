package cmd

import (
	"fmt"

	"github.com/fintoolbox/debtpro/internal/config"
	"github.com/fintoolbox/debtpro/internal/output"
	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write a starter plan file to edit",
	RunE:  runExample,
}

var flagExampleOut string

func init() {
	exampleCmd.Flags().StringVarP(&flagExampleOut, "output", "o", "plan.yaml", "Where to write the example plan")
	rootCmd.AddCommand(exampleCmd)
}

func runExample(_ *cobra.Command, _ []string) error {
	plan := config.NewInputParser().CreateExamplePlan()
	if err := output.SavePlan(plan, flagExampleOut); err != nil {
		return fmt.Errorf("writing example plan: %w", err)
	}
	fmt.Printf("Example plan written to %s. Edit it and run: debtpro project -i %s\n", flagExampleOut, flagExampleOut)
	return nil
}
