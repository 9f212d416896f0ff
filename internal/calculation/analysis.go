package calculation

import (
	"github.com/johnxli92/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Summarize derives headline metrics from a completed projection.
func Summarize(cfg *domain.PlanConfig, records []domain.YearRecord) domain.ProjectionSummary {
	summary := domain.ProjectionSummary{
		PortfolioLongevity: len(records),
	}
	if len(records) == 0 {
		return summary
	}

	summary.FinalTotalBalance = records[len(records)-1].TotalBalance
	summary.PeakBalanceAge = records[0].Age

	for i, rec := range records {
		if rec.TotalBalance.GreaterThan(summary.PeakTotalBalance) {
			summary.PeakTotalBalance = rec.TotalBalance
			summary.PeakBalanceAge = rec.Age
		}
		summary.TotalTaxesPaid = summary.TotalTaxesPaid.Add(rec.TaxTotal)

		if rec.IsRetirementYear && rec.Age == cfg.RetireAge {
			summary.FirstRetirementYearNetIncome = rec.NetIncomeAfterTax
		}

		// Longevity stops at the first depleted year
		if rec.IsDepleted() && summary.PortfolioLongevity == len(records) {
			summary.PortfolioLongevity = i + 1
		}
	}

	return summary
}

// TotalLifetimeIncome discounts each year's net income back to present value
// at the given rate and sums the result.
func TotalLifetimeIncome(records []domain.YearRecord, discountRate decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	total := decimal.Zero
	for i, rec := range records {
		discountFactor := one.Add(discountRate).Pow(decimal.NewFromInt(int64(i)))
		total = total.Add(rec.NetIncomeAfterTax.Div(discountFactor))
	}
	return total
}
