package output

import (
	"sort"

	"github.com/fintoolbox/debtpro/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best strategy.
type Recommendation struct {
	StrategyName    string
	FinalNetWorth   decimal.Decimal
	NetWorthChange  decimal.Decimal // against the starting net worth
	PayoffYearIndex int
}

// AnalyzeStrategies determines the strategy with the highest final net worth.
// Ties break toward the earlier payoff year. Extracted from the console
// formatter for testability.
func AnalyzeStrategies(results *domain.PlanComparison) Recommendation {
	if len(results.Strategies) == 0 {
		return Recommendation{}
	}

	ranked := append([]domain.StrategySummary(nil), results.Strategies...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].FinalNetWorth.Equal(ranked[j].FinalNetWorth) {
			return ranked[i].FinalNetWorth.GreaterThan(ranked[j].FinalNetWorth)
		}
		// -1 means never paid off; sort it last
		pi, pj := ranked[i].PayoffYearIndex, ranked[j].PayoffYearIndex
		if pi < 0 {
			return false
		}
		if pj < 0 {
			return true
		}
		return pi < pj
	})

	best := ranked[0]
	return Recommendation{
		StrategyName:    best.Name,
		FinalNetWorth:   best.FinalNetWorth,
		NetWorthChange:  best.FinalNetWorth.Sub(results.StartingNetWorth),
		PayoffYearIndex: best.PayoffYearIndex,
	}
}
