package calculation

import (
	"github.com/fintoolbox/debtpro/pkg/money"
	"github.com/shopspring/decimal"
)

// Lender constants for the equity gate on an investment property purchase.
// Usable equity is what a bank would lend against: 80% of the home's value
// less the outstanding loan. The purchase requires equity covering 30% of the
// price (20% deposit plus a buffer for costs).
var (
	usableLVRLimit     = decimal.NewFromFloat(0.8)
	requiredEquityRate = decimal.NewFromFloat(0.3)
)

// acquisitionPhase models the once-only purchase trigger as an explicit
// two-state machine. The transition fires at most once per run.
type acquisitionPhase int

const (
	phaseNotAcquired acquisitionPhase = iota
	phaseAcquired
)

// acquisitionTrigger tracks the purchase state across simulated years.
type acquisitionTrigger struct {
	phase acquisitionPhase
}

// Acquired reports whether the purchase has happened.
func (t *acquisitionTrigger) Acquired() bool {
	return t.phase == phaseAcquired
}

// Evaluate re-checks the equity predicate while not yet acquired and
// transitions on the first year it holds. Returns true only on the
// transition year.
func (t *acquisitionTrigger) Evaluate(homeValue, homeLoan, purchasePrice decimal.Decimal) bool {
	if t.phase == phaseAcquired {
		return false
	}
	if !EquityCoversPurchase(homeValue, homeLoan, purchasePrice) {
		return false
	}
	t.phase = phaseAcquired
	return true
}

// UsableEquity returns the equity a lender would recognise: 80% of the home
// value less the home loan, floored at zero.
func UsableEquity(homeValue, homeLoan decimal.Decimal) decimal.Decimal {
	return money.FloorZero(homeValue.Mul(usableLVRLimit).Sub(homeLoan))
}

// EquityCoversPurchase is the pure acquisition predicate: a positive purchase
// price is configured and usable equity covers 30% of it.
func EquityCoversPurchase(homeValue, homeLoan, purchasePrice decimal.Decimal) bool {
	if !purchasePrice.IsPositive() {
		return false
	}
	required := purchasePrice.Mul(requiredEquityRate)
	return UsableEquity(homeValue, homeLoan).GreaterThanOrEqual(required)
}
