package calculation

import (
	"github.com/johnxli92/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX ESTIMATION ASSUMPTIONS:
//
// 1. Federal Tax Brackets: 2024 brackets for single and married-filing-jointly,
//    applied to every projection year with no inflation indexing.
//    Standard deduction: $14,600 single / $29,200 married.
//
// 2. Capital gains: flat 15% rate, no bracket structure, no loss offsetting.
//
// 3. State tax: flat configured rate on total income (ordinary + gains).
//
// 4. Social Security benefits are reported but excluded from taxable totals;
//    the partially-taxable provisional income rules are out of scope.

// TaxBracket represents one federal marginal bracket. Threshold is the lower
// bound of the band; the band extends to the next bracket's threshold, and the
// final bracket is open-ended.
type TaxBracket struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

var federalBracketsSingle = []TaxBracket{
	{decimal.Zero, decimal.NewFromFloat(0.10)},
	{decimal.NewFromInt(11600), decimal.NewFromFloat(0.12)},
	{decimal.NewFromInt(47150), decimal.NewFromFloat(0.22)},
	{decimal.NewFromInt(100525), decimal.NewFromFloat(0.24)},
	{decimal.NewFromInt(191950), decimal.NewFromFloat(0.32)},
	{decimal.NewFromInt(243725), decimal.NewFromFloat(0.35)},
	{decimal.NewFromInt(609350), decimal.NewFromFloat(0.37)},
}

var federalBracketsMarried = []TaxBracket{
	{decimal.Zero, decimal.NewFromFloat(0.10)},
	{decimal.NewFromInt(23200), decimal.NewFromFloat(0.12)},
	{decimal.NewFromInt(94300), decimal.NewFromFloat(0.22)},
	{decimal.NewFromInt(201050), decimal.NewFromFloat(0.24)},
	{decimal.NewFromInt(383900), decimal.NewFromFloat(0.32)},
	{decimal.NewFromInt(487450), decimal.NewFromFloat(0.35)},
	{decimal.NewFromInt(731200), decimal.NewFromFloat(0.37)},
}

var standardDeduction = map[domain.FilingStatus]decimal.Decimal{
	domain.FilingSingle:  decimal.NewFromInt(14600),
	domain.FilingMarried: decimal.NewFromInt(29200),
}

// capitalGainsRate is the flat preferential rate applied to gains.
var capitalGainsRate = decimal.NewFromFloat(0.15)

// DefaultGainFraction is the share of a brokerage withdrawal treated as
// taxable gain when no cost basis is tracked.
var DefaultGainFraction = decimal.NewFromFloat(0.5)

// TaxEstimator computes federal and state taxes under simplified progressive
// rules. It has no failure modes: malformed inputs are clamped, never rejected.
type TaxEstimator struct {
	BracketsSingle  []TaxBracket
	BracketsMarried []TaxBracket
	Deductions      map[domain.FilingStatus]decimal.Decimal
	GainsRate       decimal.Decimal
}

// NewTaxEstimator creates a tax estimator with the 2024 bracket tables.
func NewTaxEstimator() *TaxEstimator {
	return &TaxEstimator{
		BracketsSingle:  federalBracketsSingle,
		BracketsMarried: federalBracketsMarried,
		Deductions:      standardDeduction,
		GainsRate:       capitalGainsRate,
	}
}

// brackets selects the bracket table for a filing status. Unrecognized
// statuses silently fall back to single.
func (te *TaxEstimator) brackets(status domain.FilingStatus) []TaxBracket {
	if status == domain.FilingMarried {
		return te.BracketsMarried
	}
	return te.BracketsSingle
}

// applyOrdinaryBrackets runs taxable income through the marginal brackets.
// Only income within each band is taxed at that band's rate.
func applyOrdinaryBrackets(taxableIncome decimal.Decimal, brackets []TaxBracket) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	tax := decimal.Zero
	for i, bracket := range brackets {
		var amountInBracket decimal.Decimal
		if i+1 < len(brackets) {
			next := brackets[i+1].Threshold
			amountInBracket = decimal.Min(taxableIncome, next).Sub(bracket.Threshold)
		} else {
			amountInBracket = taxableIncome.Sub(bracket.Threshold)
		}
		if amountInBracket.LessThanOrEqual(decimal.Zero) {
			continue
		}
		tax = tax.Add(amountInBracket.Mul(bracket.Rate))
	}
	return tax
}

// ComputeTaxes estimates the total tax burden for a single year's income.
// Pure function: no side effects, no errors.
func (te *TaxEstimator) ComputeTaxes(ti domain.TaxInput) domain.TaxResult {
	status := ti.FilingStatus
	if status != domain.FilingSingle && status != domain.FilingMarried {
		status = domain.FilingSingle
	}

	deduction, ok := te.Deductions[status]
	if !ok {
		deduction = te.Deductions[domain.FilingSingle]
	}

	taxableOrdinary := decimal.Max(decimal.Zero, ti.OrdinaryIncome.Sub(deduction))
	federalOrdinaryTax := applyOrdinaryBrackets(taxableOrdinary, te.brackets(status))

	federalCapitalTax := decimal.Max(decimal.Zero, ti.CapitalGainsIncome).Mul(te.GainsRate)
	federalTax := federalOrdinaryTax.Add(federalCapitalTax)

	totalIncome := ti.OrdinaryIncome.Add(ti.CapitalGainsIncome)
	stateTax := decimal.Max(decimal.Zero, totalIncome).Mul(decimal.Max(decimal.Zero, ti.StateRate))

	totalTax := federalTax.Add(stateTax)
	effectiveRate := decimal.Zero
	if totalIncome.GreaterThan(decimal.Zero) {
		effectiveRate = totalTax.Div(totalIncome)
	}

	return domain.TaxResult{
		TotalTax:            totalTax,
		EffectiveRate:       effectiveRate,
		FederalTax:          federalTax,
		StateTax:            stateTax,
		OrdinaryIncomeTaxed: taxableOrdinary,
		CapitalGainsTaxed:   ti.CapitalGainsIncome,
	}
}

// EstimateBrokerageGains treats a fixed fraction of a brokerage withdrawal as
// taxable capital gain, standing in for actual cost-basis tracking. Returns
// zero for non-positive withdrawals; gainFraction is clamped to [0, 1].
func EstimateBrokerageGains(withdrawal, gainFraction decimal.Decimal) decimal.Decimal {
	if withdrawal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	fraction := decimal.Max(decimal.Zero, decimal.Min(decimal.NewFromInt(1), gainFraction))
	return withdrawal.Mul(fraction)
}
