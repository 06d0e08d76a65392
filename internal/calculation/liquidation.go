package calculation

import (
	"github.com/fintoolbox/debtpro/internal/domain"
	"github.com/fintoolbox/debtpro/pkg/money"
	"github.com/shopspring/decimal"
)

// sellingCostRate is the fixed cost of selling the investment property
// (agent fees and conveyancing), applied to the sale price.
var sellingCostRate = decimal.NewFromFloat(0.03)

// liquidation runs the feasibility test: would selling the portfolio (after
// effective CGT) and the investment property (after selling costs and loan
// discharge) raise enough to clear the remaining home loan. The flag is only
// meaningful while the home loan is still outstanding.
func (st *runningState) liquidation(assumptions domain.Assumptions) (decimal.Decimal, bool) {
	portfolioAfterTax := decimal.Zero
	if st.portfolio.IsPositive() {
		portfolioAfterTax = st.portfolio.Mul(decimal.NewFromInt(1).Sub(assumptions.EffectiveCGTRate))
	}

	salePrice := st.ipValue.Mul(decimal.NewFromInt(1).Sub(sellingCostRate))
	propertyProceeds := money.FloorZero(salePrice.Sub(st.ipLoan))

	proceeds := propertyProceeds.Add(portfolioAfterTax)
	couldClear := st.homeLoan.IsPositive() && proceeds.GreaterThanOrEqual(st.homeLoan)
	return proceeds, couldClear
}
