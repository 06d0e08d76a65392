package calculation

import (
	"github.com/fintoolbox/debtpro/internal/domain"
	"github.com/fintoolbox/debtpro/pkg/money"
	"github.com/shopspring/decimal"
)

// repaymentPeriodsPerYear models an accelerated fortnightly-equivalent
// cadence: 13 monthly-sized payments per year instead of 12.
const repaymentPeriodsPerYear = 13

// salaryDiversionShare is the portion of each year's pay rise that is
// earmarked as an extra mortgage repayment rather than absorbed into
// spending.
var salaryDiversionShare = decimal.NewFromFloat(0.5)

// runningState is the mutable per-run state carried across simulated years.
// It is created at the start of a run and discarded at the end; the engine
// holds nothing between invocations.
type runningState struct {
	netIncome      decimal.Decimal
	livingExpenses decimal.Decimal
	homeValue      decimal.Decimal
	homeLoan       decimal.Decimal
	offset         decimal.Decimal
	ipValue        decimal.Decimal
	ipLoan         decimal.Decimal
	portfolio      decimal.Decimal
	recycledLoan   decimal.Decimal
}

func newRunningState(base domain.BaseInputs) *runningState {
	return &runningState{
		netIncome:      base.NetAnnualIncome,
		livingExpenses: base.AnnualLivingExpenses,
		homeValue:      base.HomeValue,
		homeLoan:       base.HomeLoanBalance,
		offset:         base.OffsetBalance,
	}
}

// mortgageFlows are the cash figures produced by the repayment stage.
type mortgageFlows struct {
	repayment decimal.Decimal
	interest  decimal.Decimal
}

// propertyFlows are the investment property's cash figures for one year.
type propertyFlows struct {
	rent         decimal.Decimal
	holdingCosts decimal.Decimal
	loanInterest decimal.Decimal
}

// portfolioFlows are the debt-recycling and portfolio figures for one year.
type portfolioFlows struct {
	contribution decimal.Decimal
	dividends    decimal.Decimal
	growth       decimal.Decimal
	loanInterest decimal.Decimal
}

// Simulate runs the year-by-year projection for one strategy. It is a pure
// function of its inputs: no validation, no I/O, no state shared between
// invocations. Overrides may be nil to run with default assumptions.
func (pe *ProjectionEngine) Simulate(base domain.BaseInputs, strategy domain.StrategyInputs, overrides *domain.AssumptionOverrides) domain.SimulationResult {
	assumptions := domain.ResolveAssumptions(overrides)
	st := newRunningState(base)
	trigger := &acquisitionTrigger{}

	result := domain.SimulationResult{
		Years: make([]domain.YearSnapshot, 0, assumptions.ProjectionYears),
	}

	for year := 0; year < assumptions.ProjectionYears; year++ {
		// Recycling keys off the acquisition state as of the start of the
		// year: contributions begin the year after the purchase.
		recyclingActive := trigger.Acquired()

		st.applyHomeGrowth(year, assumptions)
		diversion := st.applySalaryGrowth(year, strategy)
		mort := st.applyMortgage(base, strategy, diversion)

		if st.applyAcquisition(strategy, trigger) && pe.Debug {
			pe.Logger.Debugf("year %d: investment property acquired for %s (loan %s, usable equity %s)",
				year, st.ipValue.StringFixed(2), st.ipLoan.StringFixed(2),
				UsableEquity(st.homeValue, st.homeLoan).StringFixed(2))
		}
		prop := st.applyProperty(strategy, assumptions, trigger)
		port := st.applyRecycling(base, strategy, recyclingActive)
		tax := taxEffect(base.MarginalTaxRate, prop, port)

		snapshot := st.snapshot(year, diversion, mort, prop, port, tax, assumptions)
		result.Years = append(result.Years, snapshot)

		if snapshot.CouldClearHomeLoan && result.DebtFreeYearIndex == nil {
			idx := year
			result.DebtFreeYearIndex = &idx
		}

		// Early exit once the loan is paid off; the payoff year is included.
		if snapshot.HomeLoanBalance.LessThanOrEqual(domain.PayoffTolerance) {
			if pe.Debug {
				pe.Logger.Debugf("year %d: home loan cleared, stopping projection", year)
			}
			break
		}
	}

	return result
}

// applyHomeGrowth appreciates the home for years after the first.
func (st *runningState) applyHomeGrowth(year int, assumptions domain.Assumptions) {
	if year == 0 {
		return
	}
	st.homeValue = st.homeValue.Mul(money.GrowthFactor(assumptions.HomeGrowthRate))
}

// applySalaryGrowth grows net income and returns the half-of-raise amount
// diverted to the mortgage this year. Year 0 sees no growth or diversion.
func (st *runningState) applySalaryGrowth(year int, strategy domain.StrategyInputs) decimal.Decimal {
	if year == 0 || !strategy.SalaryGrowthRate.IsPositive() {
		return decimal.Zero
	}
	previous := st.netIncome
	st.netIncome = st.netIncome.Mul(money.GrowthFactor(strategy.SalaryGrowthRate))
	return st.netIncome.Sub(previous).Mul(salaryDiversionShare)
}

// applyMortgage makes the year's repayment and accrues interest. Offset funds
// above the emergency target reduce the interest-bearing balance; the offset
// itself is a static input and is never drawn down here.
func (st *runningState) applyMortgage(base domain.BaseInputs, strategy domain.StrategyInputs, diversion decimal.Decimal) mortgageFlows {
	scheduled := money.Annualize(base.MinRepaymentMonthly.Add(strategy.ExtraRepaymentMonthly), repaymentPeriodsPerYear)
	repayment := scheduled.Add(diversion)

	surplusOffset := money.FloorZero(st.offset.Sub(base.EmergencyFundTarget))
	effectiveDebt := money.FloorZero(st.homeLoan.Sub(surplusOffset))
	interest := effectiveDebt.Mul(base.HomeLoanRate)

	principal := repayment.Sub(interest)
	if principal.IsNegative() {
		// Repayment does not cover interest: no principal reduction and the
		// interest capitalises onto the balance.
		st.homeLoan = st.homeLoan.Add(interest)
	} else {
		st.homeLoan = money.FloorZero(st.homeLoan.Sub(principal))
	}

	return mortgageFlows{repayment: repayment, interest: interest}
}

// applyAcquisition fires the once-only purchase when the equity gate opens.
// The purchase is 100% debt-funded including costs; equity is only a gating
// test, nothing is drawn down. Returns true on the acquisition year.
func (st *runningState) applyAcquisition(strategy domain.StrategyInputs, trigger *acquisitionTrigger) bool {
	if !trigger.Evaluate(st.homeValue, st.homeLoan, strategy.PurchasePrice) {
		return false
	}
	st.ipValue = strategy.PurchasePrice
	st.ipLoan = strategy.PurchasePrice.Mul(money.GrowthFactor(strategy.PurchaseCostsRate))
	return true
}

// applyProperty grows the property and produces its cash flows. Growth
// applies from the acquisition year onward; rent and holding costs are taken
// verbatim from inputs (no CPI indexing); the loan is interest-only.
func (st *runningState) applyProperty(strategy domain.StrategyInputs, assumptions domain.Assumptions, trigger *acquisitionTrigger) propertyFlows {
	if !trigger.Acquired() {
		return propertyFlows{}
	}
	st.ipValue = st.ipValue.Mul(money.GrowthFactor(assumptions.IPGrowthRate))
	return propertyFlows{
		rent:         strategy.AnnualRent,
		holdingCosts: strategy.AnnualHoldingCosts,
		loanInterest: st.ipLoan.Mul(strategy.PropertyLoanRate),
	}
}

// applyRecycling contributes borrowed funds to the portfolio (capped at the
// remaining home loan) and accrues portfolio income and growth against the
// pre-growth balance. The recycled loan bears the home loan rate.
func (st *runningState) applyRecycling(base domain.BaseInputs, strategy domain.StrategyInputs, active bool) portfolioFlows {
	var flows portfolioFlows

	if active && strategy.RecyclePerYear.IsPositive() && st.homeLoan.IsPositive() {
		flows.contribution = money.Min(strategy.RecyclePerYear, st.homeLoan)
		st.recycledLoan = st.recycledLoan.Add(flows.contribution)
		st.portfolio = st.portfolio.Add(flows.contribution)
	}

	if st.portfolio.IsPositive() {
		flows.dividends = st.portfolio.Mul(strategy.PortfolioYieldRate)
		flows.growth = st.portfolio.Mul(strategy.PortfolioReturnRate.Sub(strategy.PortfolioYieldRate))
		st.portfolio = st.portfolio.Add(flows.dividends).Add(flows.growth)
	}

	if st.recycledLoan.IsPositive() && strategy.PortfolioReturnRate.IsPositive() {
		flows.loanInterest = st.recycledLoan.Mul(base.HomeLoanRate)
	}

	return flows
}

// taxEffect sums two independent net-of-tax calculations: the property's
// (rent less costs less interest) and the portfolio's (dividends less
// recycled loan interest). A negative pre-tax net yields a positive tax
// benefit at the marginal rate; a positive net yields an equivalent cost.
func taxEffect(marginalRate decimal.Decimal, prop propertyFlows, port portfolioFlows) decimal.Decimal {
	propertyNet := prop.rent.Sub(prop.holdingCosts).Sub(prop.loanInterest)
	portfolioNet := port.dividends.Sub(port.loanInterest)
	return propertyNet.Neg().Mul(marginalRate).Add(portfolioNet.Neg().Mul(marginalRate))
}

// snapshot aggregates the year's flows and balances into an immutable record.
func (st *runningState) snapshot(year int, diversion decimal.Decimal, mort mortgageFlows, prop propertyFlows, port portfolioFlows, tax decimal.Decimal, assumptions domain.Assumptions) domain.YearSnapshot {
	taxBenefit := money.FloorZero(tax)
	taxOwed := money.FloorZero(tax.Neg())

	totalIncome := st.netIncome.Add(prop.rent).Add(port.dividends).Add(taxBenefit)
	totalExpenses := st.livingExpenses.Add(mort.repayment).Add(prop.holdingCosts).Add(prop.loanInterest).Add(taxOwed)
	totalAssets := st.homeValue.Add(st.ipValue).Add(st.portfolio).Add(st.offset)
	totalLiabilities := st.homeLoan.Add(st.ipLoan).Add(st.recycledLoan)

	proceeds, couldClear := st.liquidation(assumptions)

	return domain.YearSnapshot{
		YearIndex: year,

		NetIncome:          st.netIncome,
		SalaryDiversion:    diversion,
		IPRent:             prop.rent,
		PortfolioDividends: port.dividends,

		LivingExpenses:    st.livingExpenses,
		MortgageRepayment: mort.repayment,
		MortgageInterest:  mort.interest,
		IPHoldingCosts:    prop.holdingCosts,
		IPLoanInterest:    prop.loanInterest,
		RecycledInterest:  port.loanInterest,

		RecycledContribution: port.contribution,
		PortfolioGrowth:      port.growth,

		NetTaxEffect: tax,

		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Surplus:       totalIncome.Sub(totalExpenses),

		HomeValue:             st.homeValue,
		HomeLoanBalance:       st.homeLoan,
		OffsetBalance:         st.offset,
		IPValue:               st.ipValue,
		IPLoanBalance:         st.ipLoan,
		PortfolioValue:        st.portfolio,
		InvestmentLoanBalance: st.recycledLoan,
		TotalAssets:           totalAssets,
		TotalLiabilities:      totalLiabilities,
		NetWorth:              totalAssets.Sub(totalLiabilities),

		LiquidationProceeds: proceeds,
		CouldClearHomeLoan:  couldClear,
	}
}
