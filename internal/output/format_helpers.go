package output

import (
	"strconv"

	"github.com/fintoolbox/debtpro/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.Format(amount) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatYearIndex renders a 0-based year index as a 1-based ordinal label.
func FormatYearIndex(index int) string { return "year " + strconv.Itoa(index+1) }

func intToString(i int) string   { return strconv.Itoa(i) }
func boolToString(b bool) string { return strconv.FormatBool(b) }
