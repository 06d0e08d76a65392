package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/fintoolbox/debtpro/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per strategy).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Strategy", "PayoffYearIndex", "DebtFreeYearIndex", "AcquisitionYearIndex", "Year5NetWorth", "Year10NetWorth", "FinalNetWorth", "FinalPortfolioValue", "TotalInterestPaid"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	strategies := append([]domain.StrategySummary(nil), results.Strategies...)
	sort.Slice(strategies, func(i, j int) bool { return strategies[i].Name < strategies[j].Name })
	for _, sc := range strategies {
		row := []string{
			sc.Name,
			intToString(sc.PayoffYearIndex),
			optionalIndex(sc.DebtFreeYearIndex),
			optionalIndex(sc.AcquisitionYearIndex),
			sc.Year5NetWorth.StringFixed(2),
			sc.Year10NetWorth.StringFixed(2),
			sc.FinalNetWorth.StringFixed(2),
			sc.FinalPortfolioValue.StringFixed(2),
			sc.TotalInterestPaid.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}

// optionalIndex renders a nullable year index; empty cell means "never".
func optionalIndex(idx *int) string {
	if idx == nil {
		return ""
	}
	return intToString(*idx)
}
