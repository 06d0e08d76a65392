package calculation

import (
	"context"
	"fmt"

	"github.com/fintoolbox/debtpro/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectionEngine orchestrates strategy projections over a plan.
type ProjectionEngine struct {
	Debug  bool // Enable debug output for stage-level traces
	Logger Logger
}

// NewProjectionEngine creates a new projection engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// RunPlan projects every strategy in the plan and builds the comparison.
// Input sanity rules live here, not in Simulate: the core stays a pure
// function that trusts its caller.
func (pe *ProjectionEngine) RunPlan(ctx context.Context, plan *domain.Plan) (*domain.PlanComparison, error) {
	if len(plan.Strategies) == 0 {
		return nil, fmt.Errorf("plan has no strategies")
	}

	assumptions := domain.ResolveAssumptions(plan.Assumptions)
	if assumptions.ProjectionYears <= 0 {
		return nil, fmt.Errorf("projection years must be positive, got %d", assumptions.ProjectionYears)
	}

	// Cap extreme rates the way we cap extreme inflation elsewhere: a loan
	// rate above 25% is almost certainly a percentage entered as a fraction.
	if plan.Base.HomeLoanRate.IsNegative() || plan.Base.HomeLoanRate.GreaterThan(decimal.NewFromFloat(0.25)) {
		return nil, fmt.Errorf("home loan rate must be a fraction between 0 and 0.25, got %s",
			plan.Base.HomeLoanRate.String())
	}

	summaries := make([]domain.StrategySummary, len(plan.Strategies))
	for i, strategy := range plan.Strategies {
		if strategy.PortfolioYieldRate.GreaterThan(strategy.PortfolioReturnRate) {
			return nil, fmt.Errorf("strategy %q: portfolio yield rate (%s) cannot exceed total return rate (%s)",
				strategy.Name, strategy.PortfolioYieldRate.String(), strategy.PortfolioReturnRate.String())
		}

		result := pe.Simulate(plan.Base, strategy, plan.Assumptions)
		summaries[i] = summarizeStrategy(strategy.Name, result)

		if pe.Debug {
			pe.Logger.Debugf("strategy %q: %d years simulated, payoff year %d",
				strategy.Name, len(result.Years), summaries[i].PayoffYearIndex)
		}
	}

	return &domain.PlanComparison{
		StartingNetWorth: plan.Base.StartingNetWorth(),
		Strategies:       summaries,
		Assumptions:      assumptions.Describe(),
	}, nil
}

// summarizeStrategy derives the headline metrics from a projection.
func summarizeStrategy(name string, result domain.SimulationResult) domain.StrategySummary {
	summary := domain.StrategySummary{
		Name:              name,
		PayoffYearIndex:   -1,
		DebtFreeYearIndex: result.DebtFreeYearIndex,
		Projection:        result.Years,
	}

	var totalInterest decimal.Decimal
	for i := range result.Years {
		year := &result.Years[i]
		totalInterest = totalInterest.Add(year.MortgageInterest)
		if summary.PayoffYearIndex < 0 && year.IsDebtFree() {
			summary.PayoffYearIndex = year.YearIndex
		}
		if summary.AcquisitionYearIndex == nil && year.IPValue.IsPositive() {
			idx := year.YearIndex
			summary.AcquisitionYearIndex = &idx
		}
	}
	summary.TotalInterestPaid = totalInterest

	// Guard the milestone years for projections shortened by early payoff.
	if len(result.Years) > 4 {
		summary.Year5NetWorth = result.Years[4].NetWorth
	}
	if len(result.Years) > 9 {
		summary.Year10NetWorth = result.Years[9].NetWorth
	}
	if final := result.FinalYear(); final != nil {
		summary.FinalNetWorth = final.NetWorth
		summary.FinalPortfolioValue = final.PortfolioValue
	}

	return summary
}
