package main

import (
	"fmt"

	"github.com/fintoolbox/debtpro/internal/calculation"
	"github.com/fintoolbox/debtpro/internal/config"
)

// Quick debugging aid: runs the built-in example plan and dumps the
// year-by-year balances for each strategy without going through a formatter.
func main() {
	plan := config.NewInputParser().CreateExamplePlan()
	engine := calculation.NewProjectionEngine()

	for _, strategy := range plan.Strategies {
		result := engine.Simulate(plan.Base, strategy, plan.Assumptions)
		fmt.Printf("== %s (%d years) ==\n", strategy.Name, len(result.Years))
		for _, year := range result.Years {
			fmt.Printf("year %2d  loan %12s  offset %10s  ip %12s  portfolio %12s  nw %12s  clearable %t\n",
				year.YearIndex,
				year.HomeLoanBalance.StringFixed(2),
				year.OffsetBalance.StringFixed(2),
				year.IPValue.StringFixed(2),
				year.PortfolioValue.StringFixed(2),
				year.NetWorth.StringFixed(2),
				year.CouldClearHomeLoan,
			)
		}
		if result.DebtFreeYearIndex != nil {
			fmt.Printf("liquidation covers the loan from year index %d\n", *result.DebtFreeYearIndex)
		}
		fmt.Println()
	}
}
