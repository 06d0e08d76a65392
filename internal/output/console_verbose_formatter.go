package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fintoolbox/debtpro/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED MORTGAGE STRATEGY ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range results.Assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "STARTING POSITION")
	fmt.Fprintln(&buf, "=================")
	fmt.Fprintf(&buf, "Starting Net Worth: %s\n", FormatCurrency(results.StartingNetWorth))
	fmt.Fprintln(&buf)

	for i, strategy := range results.Strategies {
		fmt.Fprintf(&buf, "STRATEGY %d: %s\n", i+1, strategy.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))

		if len(strategy.Projection) > 0 {
			writeYearBreakdown(&buf, "FIRST YEAR CASH FLOW", &strategy.Projection[0])
		}
		if strategy.AcquisitionYearIndex != nil {
			idx := *strategy.AcquisitionYearIndex
			year := findYear(strategy.Projection, idx)
			if year != nil {
				fmt.Fprintf(&buf, "INVESTMENT PROPERTY ACQUIRED IN %s:\n", strings.ToUpper(FormatYearIndex(idx)))
				fmt.Fprintf(&buf, "  Property Value:       %s\n", FormatCurrency(year.IPValue))
				fmt.Fprintf(&buf, "  Property Loan:        %s\n", FormatCurrency(year.IPLoanBalance))
				fmt.Fprintln(&buf)
			}
		}

		fmt.Fprintln(&buf, "LONG-TERM PROJECTION:")
		fmt.Fprintln(&buf, "---------------------")
		fmt.Fprintf(&buf, "  Year 5 Net Worth:        %s\n", FormatCurrency(strategy.Year5NetWorth))
		fmt.Fprintf(&buf, "  Year 10 Net Worth:       %s\n", FormatCurrency(strategy.Year10NetWorth))
		fmt.Fprintf(&buf, "  Final Net Worth:         %s\n", FormatCurrency(strategy.FinalNetWorth))
		fmt.Fprintf(&buf, "  Total Interest Paid:     %s\n", FormatCurrency(strategy.TotalInterestPaid))
		if strategy.PayoffYearIndex >= 0 {
			fmt.Fprintf(&buf, "  Home Loan Paid Off:      %s\n", FormatYearIndex(strategy.PayoffYearIndex))
		} else {
			fmt.Fprintln(&buf, "  Home Loan Paid Off:      not within horizon")
		}
		if strategy.DebtFreeYearIndex != nil {
			fmt.Fprintf(&buf, "  Liquidation Covers Loan: from %s\n", FormatYearIndex(*strategy.DebtFreeYearIndex))
		} else {
			fmt.Fprintln(&buf, "  Liquidation Covers Loan: never")
		}
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf)
	}

	rec := AnalyzeStrategies(results)
	if rec.StrategyName != "" {
		fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
		fmt.Fprintln(&buf, "=========================")
		fmt.Fprintf(&buf, "Best strategy: %s\n", rec.StrategyName)
		fmt.Fprintf(&buf, "Final Net Worth: %s\n", FormatCurrency(rec.FinalNetWorth))
		fmt.Fprintf(&buf, "Net Worth Change: %s\n", FormatCurrency(rec.NetWorthChange))
	}

	return buf.Bytes(), nil
}

// writeYearBreakdown renders one snapshot's income and expense components.
func writeYearBreakdown(buf *bytes.Buffer, title string, year *domain.YearSnapshot) {
	fmt.Fprintf(buf, "%s (%s):\n", title, FormatYearIndex(year.YearIndex))
	fmt.Fprintln(buf, "----------------------------------------")
	fmt.Fprintln(buf, "INCOME:")
	fmt.Fprintf(buf, "  Net Salary:             %s\n", FormatCurrency(year.NetIncome))
	fmt.Fprintf(buf, "  Rent:                   %s\n", FormatCurrency(year.IPRent))
	fmt.Fprintf(buf, "  Portfolio Dividends:    %s\n", FormatCurrency(year.PortfolioDividends))
	if year.NetTaxEffect.GreaterThan(decimal.Zero) {
		fmt.Fprintf(buf, "  Tax Benefit:            %s\n", FormatCurrency(year.NetTaxEffect))
	}
	fmt.Fprintf(buf, "  TOTAL INCOME:           %s\n", FormatCurrency(year.TotalIncome))
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "EXPENSES:")
	fmt.Fprintf(buf, "  Living Expenses:        %s\n", FormatCurrency(year.LivingExpenses))
	fmt.Fprintf(buf, "  Mortgage Repayment:     %s\n", FormatCurrency(year.MortgageRepayment))
	fmt.Fprintf(buf, "  Holding Costs:          %s\n", FormatCurrency(year.IPHoldingCosts))
	fmt.Fprintf(buf, "  Property Loan Interest: %s\n", FormatCurrency(year.IPLoanInterest))
	if year.NetTaxEffect.LessThan(decimal.Zero) {
		fmt.Fprintf(buf, "  Extra Tax Owed:         %s\n", FormatCurrency(year.NetTaxEffect.Neg()))
	}
	fmt.Fprintf(buf, "  TOTAL EXPENSES:         %s\n", FormatCurrency(year.TotalExpenses))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "SURPLUS:                  %s\n", FormatCurrency(year.Surplus))
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "END OF YEAR BALANCES:")
	fmt.Fprintf(buf, "  Home Value:             %s\n", FormatCurrency(year.HomeValue))
	fmt.Fprintf(buf, "  Home Loan:              %s\n", FormatCurrency(year.HomeLoanBalance))
	fmt.Fprintf(buf, "  Net Worth:              %s\n", FormatCurrency(year.NetWorth))
	fmt.Fprintln(buf)
}

// findYear returns the snapshot with the given index, or nil.
func findYear(projection []domain.YearSnapshot, index int) *domain.YearSnapshot {
	for i := range projection {
		if projection[i].YearIndex == index {
			return &projection[i]
		}
	}
	return nil
}
