package output

import (
	"strings"
	"testing"

	"github.com/fintoolbox/debtpro/internal/domain"
	"github.com/shopspring/decimal"
)

func buildTestComparison() *domain.PlanComparison {
	year := func(idx int, loan int64) domain.YearSnapshot {
		return domain.YearSnapshot{
			YearIndex:       idx,
			NetIncome:       decimal.NewFromInt(145000),
			HomeValue:       decimal.NewFromInt(900000),
			HomeLoanBalance: decimal.NewFromInt(loan),
			NetWorth:        decimal.NewFromInt(900000 - loan),
		}
	}
	five := 5
	return &domain.PlanComparison{
		StartingNetWorth: decimal.NewFromInt(300000),
		Assumptions:      domain.DefaultAssumptions().Describe(),
		Strategies: []domain.StrategySummary{
			{
				Name:              "Minimum",
				PayoffYearIndex:   24,
				Year5NetWorth:     decimal.NewFromInt(400000),
				Year10NetWorth:    decimal.NewFromInt(520000),
				FinalNetWorth:     decimal.NewFromInt(1500000),
				TotalInterestPaid: decimal.NewFromInt(420000),
				Projection:        []domain.YearSnapshot{year(0, 587500), year(1, 574000)},
			},
			{
				Name:                "Recycling",
				PayoffYearIndex:     20,
				DebtFreeYearIndex:   &five,
				Year5NetWorth:       decimal.NewFromInt(450000),
				Year10NetWorth:      decimal.NewFromInt(600000),
				FinalNetWorth:       decimal.NewFromInt(1800000),
				FinalPortfolioValue: decimal.NewFromInt(250000),
				TotalInterestPaid:   decimal.NewFromInt(380000),
				Projection:          []domain.YearSnapshot{year(0, 587500), year(1, 570000)},
			},
		},
	}
}

func TestConsoleLiteFormatter(t *testing.T) {
	f := ConsoleFormatter{}
	out, err := f.Format(buildTestComparison())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "Recommended: Recycling") {
		t.Fatalf("expected recommendation for Recycling, got: %s", content)
	}
	if !strings.Contains(content, "Liquidation could clear the loan from year 6") {
		t.Fatalf("expected liquidation note, got: %s", content)
	}
}

func TestConsoleVerboseFormatter(t *testing.T) {
	f := ConsoleVerboseFormatter{}
	out, err := f.Format(buildTestComparison())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "DETAILED MORTGAGE STRATEGY ANALYSIS") {
		t.Fatalf("expected verbose heading, got: %s", content[:120])
	}
	if !strings.Contains(content, "STRATEGY 1: Minimum") || !strings.Contains(content, "STRATEGY 2: Recycling") {
		t.Fatalf("expected both strategy sections")
	}
	if !strings.Contains(content, "KEY ASSUMPTIONS:") {
		t.Fatalf("expected assumptions section")
	}
}

func TestCSVSummarizerDeterministicOrder(t *testing.T) {
	f := CSVSummarizer{}
	out, err := f.Format(buildTestComparison())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (header+2 rows), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "Minimum,") || !strings.HasPrefix(lines[2], "Recycling,") {
		t.Fatalf("rows not sorted deterministically: %v", lines)
	}
	// Never-reached indices render as empty cells.
	if !strings.Contains(lines[1], "24,,") {
		t.Fatalf("expected empty debt-free cell for Minimum: %s", lines[1])
	}
}

func TestCSVDetailedOneRowPerYear(t *testing.T) {
	f := CSVDetailedExporter{}
	out, err := f.Format(buildTestComparison())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	// header + 2 strategies x 2 years
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %v", len(lines), lines)
	}
}

func TestHTMLFormatterBasic(t *testing.T) {
	f := HTMLFormatter{}
	out, err := f.Format(buildTestComparison())
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "Strategy Comparison") {
		t.Fatalf("expected Strategy Comparison section in HTML output")
	}
	if !strings.Contains(content, "Recommended strategy: Recycling") {
		t.Fatalf("expected recommendation block in HTML output")
	}
	if !strings.Contains(content, "$1,800,000.00") && !strings.Contains(content, "$1800000.00") {
		t.Fatalf("expected formatted final net worth in HTML output")
	}
}

func TestJSONFormatterRoundtrips(t *testing.T) {
	f := JSONFormatter{}
	out, err := f.Format(buildTestComparison())
	if err != nil {
		t.Fatalf("json format error: %v", err)
	}
	if !strings.Contains(string(out), "\"starting_net_worth\"") {
		t.Fatalf("expected snake_case fields in JSON output")
	}
}

func TestFormatterAliasResolution(t *testing.T) {
	f := GetFormatterByName("console-verbose")
	if f == nil {
		t.Fatalf("alias console-verbose did not resolve to a formatter")
	}
	if f.Name() != "console" {
		t.Fatalf("alias resolved to %q, want 'console'", f.Name())
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	err := GenerateReport(&domain.PlanComparison{}, "definitely-not-a-format")
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	msg := err.Error()
	if !strings.Contains(msg, "unsupported report format") || !strings.Contains(msg, "Try one of:") {
		t.Fatalf("error message missing suggestions: %s", msg)
	}
}
