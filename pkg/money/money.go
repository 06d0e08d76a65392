// Package money provides small helpers for the decimal arithmetic the
// projection engine leans on: zero floors, min/max, and rate factors.
package money

import (
	"github.com/shopspring/decimal"
)

// FloorZero clamps a value at zero. Balances and equity figures are never
// allowed to go negative.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Min returns the smaller of two amounts.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// GrowthFactor converts a fractional rate into a multiplier (0.03 -> 1.03).
func GrowthFactor(rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(rate)
}

// Annualize converts a per-period amount into an annual amount for the given
// number of periods. The engine's repayment cadence uses 13 periods to model
// fortnightly-equivalent payments.
func Annualize(perPeriod decimal.Decimal, periods int64) decimal.Decimal {
	return perPeriod.Mul(decimal.NewFromInt(periods))
}

// Round rounds an amount to cents.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders an amount as currency with two decimals.
func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
