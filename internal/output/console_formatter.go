package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/fintoolbox/debtpro/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "MORTGAGE STRATEGY SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Starting Net Worth: %s\n", FormatCurrency(results.StartingNetWorth))
	fmt.Fprintln(&buf)
	strategies := append([]domain.StrategySummary(nil), results.Strategies...)
	sort.Slice(strategies, func(i, j int) bool { return strategies[i].Name < strategies[j].Name })
	for _, sc := range strategies {
		payoff := "not within horizon"
		if sc.PayoffYearIndex >= 0 {
			payoff = FormatYearIndex(sc.PayoffYearIndex)
		}
		fmt.Fprintf(&buf, "%s: Payoff=%s Year5NW=%s Year10NW=%s FinalNW=%s\n",
			sc.Name,
			payoff,
			FormatCurrency(sc.Year5NetWorth),
			FormatCurrency(sc.Year10NetWorth),
			FormatCurrency(sc.FinalNetWorth),
		)
		if sc.DebtFreeYearIndex != nil {
			fmt.Fprintf(&buf, "  Liquidation could clear the loan from %s\n", FormatYearIndex(*sc.DebtFreeYearIndex))
		}
		fmt.Fprintf(&buf, "  InterestPaid=%s Portfolio=%s\n", FormatCurrency(sc.TotalInterestPaid), FormatCurrency(sc.FinalPortfolioValue))
	}
	rec := AnalyzeStrategies(results)
	if rec.StrategyName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (final net worth %s, Δ %s)\n", rec.StrategyName, FormatCurrency(rec.FinalNetWorth), FormatCurrency(rec.NetWorthChange))
	}
	return buf.Bytes(), nil
}
