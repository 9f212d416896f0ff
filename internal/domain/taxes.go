package domain

import (
	"github.com/shopspring/decimal"
)

// TaxInput is a per-year snapshot of taxable amounts fed to the tax
// estimator. Constructed and consumed within a single year's computation.
type TaxInput struct {
	FilingStatus FilingStatus    `json:"filing_status"`
	StateRate    decimal.Decimal `json:"state_rate"`

	// OrdinaryIncome is taxed through the progressive brackets; in a
	// projection this is the 401k withdrawal for the year.
	OrdinaryIncome decimal.Decimal `json:"ordinary_income"`

	// CapitalGainsIncome is taxed at the flat preferential rate.
	CapitalGainsIncome decimal.Decimal `json:"capital_gains_income"`

	// SocialSecurityIncome is carried for reporting only; it is not part
	// of the taxable totals. Real SS taxation rules are out of scope.
	SocialSecurityIncome decimal.Decimal `json:"social_security_income"`
}

// TaxResult reports the estimated tax burden for a single year.
type TaxResult struct {
	TotalTax      decimal.Decimal `json:"total_tax"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
	FederalTax    decimal.Decimal `json:"federal_tax"`
	StateTax      decimal.Decimal `json:"state_tax"`

	OrdinaryIncomeTaxed decimal.Decimal `json:"ordinary_income_taxed"`
	CapitalGainsTaxed   decimal.Decimal `json:"capital_gains_taxed"`
}
