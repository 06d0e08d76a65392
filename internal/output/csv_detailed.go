package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/fintoolbox/debtpro/internal/domain"
)

// CSVDetailedExporter provides raw annual projection detail per strategy/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Strategy", "YearIndex", "NetIncome", "MortgageRepayment", "MortgageInterest",
		"HomeValue", "HomeLoanBalance", "IPValue", "IPLoanBalance", "IPRent",
		"PortfolioValue", "InvestmentLoanBalance", "PortfolioDividends", "NetTaxEffect",
		"TotalIncome", "TotalExpenses", "Surplus", "NetWorth",
		"LiquidationProceeds", "CouldClearHomeLoan",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	strategies := append([]domain.StrategySummary(nil), results.Strategies...)
	sort.Slice(strategies, func(i, j int) bool { return strategies[i].Name < strategies[j].Name })
	for _, sc := range strategies {
		for _, yr := range sc.Projection {
			row := []string{
				sc.Name,
				intToString(yr.YearIndex),
				yr.NetIncome.StringFixed(2),
				yr.MortgageRepayment.StringFixed(2),
				yr.MortgageInterest.StringFixed(2),
				yr.HomeValue.StringFixed(2),
				yr.HomeLoanBalance.StringFixed(2),
				yr.IPValue.StringFixed(2),
				yr.IPLoanBalance.StringFixed(2),
				yr.IPRent.StringFixed(2),
				yr.PortfolioValue.StringFixed(2),
				yr.InvestmentLoanBalance.StringFixed(2),
				yr.PortfolioDividends.StringFixed(2),
				yr.NetTaxEffect.StringFixed(2),
				yr.TotalIncome.StringFixed(2),
				yr.TotalExpenses.StringFixed(2),
				yr.Surplus.StringFixed(2),
				yr.NetWorth.StringFixed(2),
				yr.LiquidationProceeds.StringFixed(2),
				boolToString(yr.CouldClearHomeLoan),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
