package domain

import (
	"github.com/shopspring/decimal"
)

// YearSnapshot captures the complete financial picture for a single simulated
// year. Snapshots are immutable once emitted; the engine appends one per year.
type YearSnapshot struct {
	// YearIndex is 0-based: year 0 is the first simulated year.
	YearIndex int `json:"year_index"`

	// Income side
	NetIncome          decimal.Decimal `json:"net_income"`
	SalaryDiversion    decimal.Decimal `json:"salary_diversion"` // half of this year's raise, redirected to the mortgage
	IPRent             decimal.Decimal `json:"ip_rent"`
	PortfolioDividends decimal.Decimal `json:"portfolio_dividends"`

	// Expense side
	LivingExpenses    decimal.Decimal `json:"living_expenses"`
	MortgageRepayment decimal.Decimal `json:"mortgage_repayment"` // scheduled + extra + salary diversion
	MortgageInterest  decimal.Decimal `json:"mortgage_interest"`
	IPHoldingCosts    decimal.Decimal `json:"ip_holding_costs"`
	IPLoanInterest    decimal.Decimal `json:"ip_loan_interest"`
	RecycledInterest  decimal.Decimal `json:"recycled_interest"`

	// Investment flows
	RecycledContribution decimal.Decimal `json:"recycled_contribution"`
	PortfolioGrowth      decimal.Decimal `json:"portfolio_growth"`

	// Net tax effect across the property and the portfolio. Positive is a
	// benefit (cash in), negative is extra tax owed (cash out).
	NetTaxEffect decimal.Decimal `json:"net_tax_effect"`

	// Aggregates
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Surplus       decimal.Decimal `json:"surplus"`

	// End-of-year balance sheet
	HomeValue             decimal.Decimal `json:"home_value"`
	HomeLoanBalance       decimal.Decimal `json:"home_loan_balance"`
	OffsetBalance         decimal.Decimal `json:"offset_balance"`
	IPValue               decimal.Decimal `json:"ip_value"`
	IPLoanBalance         decimal.Decimal `json:"ip_loan_balance"`
	PortfolioValue        decimal.Decimal `json:"portfolio_value"`
	InvestmentLoanBalance decimal.Decimal `json:"investment_loan_balance"`
	TotalAssets           decimal.Decimal `json:"total_assets"`
	TotalLiabilities      decimal.Decimal `json:"total_liabilities"`
	NetWorth              decimal.Decimal `json:"net_worth"`

	// Liquidation feasibility: could selling the property and portfolio
	// (after selling costs and effective CGT) clear the remaining home loan.
	LiquidationProceeds decimal.Decimal `json:"liquidation_proceeds"`
	CouldClearHomeLoan  bool            `json:"could_clear_home_loan"`
}

// PayoffTolerance is the absolute home-loan balance at or below which the
// loan is treated as paid off. It is a floor against residue from repeated
// arithmetic, not a business rule.
var PayoffTolerance = decimal.NewFromFloat(0.01)

// TotalLiquidAssets returns the non-home asset value backing the liquidation
// test: investment property plus portfolio.
func (ys *YearSnapshot) TotalLiquidAssets() decimal.Decimal {
	return ys.IPValue.Add(ys.PortfolioValue)
}

// IsDebtFree reports whether the home loan has been paid down to (or below)
// the payoff tolerance.
func (ys *YearSnapshot) IsDebtFree() bool {
	return ys.HomeLoanBalance.LessThanOrEqual(PayoffTolerance)
}

// SimulationResult is the ordered year-by-year output of a single engine run.
type SimulationResult struct {
	Years []YearSnapshot `json:"years"`

	// DebtFreeYearIndex is the first year whose liquidation test passed, or
	// nil if it never did. Only the first occurrence is recorded.
	DebtFreeYearIndex *int `json:"debt_free_year_index,omitempty"`
}

// FinalYear returns the last emitted snapshot, or nil for an empty run.
func (sr *SimulationResult) FinalYear() *YearSnapshot {
	if len(sr.Years) == 0 {
		return nil
	}
	return &sr.Years[len(sr.Years)-1]
}

// StrategySummary condenses one strategy's projection into headline metrics.
type StrategySummary struct {
	Name string `json:"name"`

	// PayoffYearIndex is the year the home loan reached zero through
	// repayments, or -1 if it never did within the horizon.
	PayoffYearIndex int `json:"payoff_year_index"`

	// DebtFreeYearIndex mirrors SimulationResult.DebtFreeYearIndex.
	DebtFreeYearIndex *int `json:"debt_free_year_index,omitempty"`

	// AcquisitionYearIndex is the year the investment property was bought,
	// or nil if the equity trigger never fired.
	AcquisitionYearIndex *int `json:"acquisition_year_index,omitempty"`

	Year5NetWorth       decimal.Decimal `json:"year_5_net_worth"`
	Year10NetWorth      decimal.Decimal `json:"year_10_net_worth"`
	FinalNetWorth       decimal.Decimal `json:"final_net_worth"`
	FinalPortfolioValue decimal.Decimal `json:"final_portfolio_value"`
	TotalInterestPaid   decimal.Decimal `json:"total_interest_paid"` // home loan interest over the whole run

	Projection []YearSnapshot `json:"projection"`
}

// PlanComparison holds the results for every strategy in a plan.
type PlanComparison struct {
	StartingNetWorth decimal.Decimal   `json:"starting_net_worth"`
	Strategies       []StrategySummary `json:"strategies"`
	Assumptions      []string          `json:"assumptions"`
}

// StartingNetWorth computes the pre-simulation net position from the base
// inputs: home plus offset, less the home loan.
func (b *BaseInputs) StartingNetWorth() decimal.Decimal {
	return b.HomeValue.Add(b.OffsetBalance).Sub(b.HomeLoanBalance)
}
