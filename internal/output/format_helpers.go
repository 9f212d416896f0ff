package output

import (
	"github.com/johnxli92/retirement-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.FromDecimal(amount).Round().Format()
}

// FormatPercentage formats a fractional rate as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
