package domain

import (
	"github.com/shopspring/decimal"
)

// YearRecord represents the complete simulated state for a single age.
// The ordered slice of records, one per integer age, is the projection's
// sole output and the stable contract with presentation layers: column
// names and semantics must not change without a version note.
type YearRecord struct {
	Age              int  `yaml:"age" json:"age"`
	YearIndex        int  `yaml:"year_index" json:"year_index"`
	IsRetirementYear bool `yaml:"is_retirement_year" json:"is_retirement_year"`

	// End-of-year balances, after growth and any withdrawal
	Balance401k      decimal.Decimal `yaml:"balance_401k" json:"balance_401k"`
	BalanceBrokerage decimal.Decimal `yaml:"balance_brokerage" json:"balance_brokerage"`
	TotalBalance     decimal.Decimal `yaml:"total_balance" json:"total_balance"`

	WithdrawalTotal     decimal.Decimal `yaml:"withdrawal_total" json:"withdrawal_total"`
	Withdrawal401k      decimal.Decimal `yaml:"withdrawal_401k" json:"withdrawal_401k"`
	WithdrawalBrokerage decimal.Decimal `yaml:"withdrawal_brokerage" json:"withdrawal_brokerage"`

	SocialSecurityIncome decimal.Decimal `yaml:"social_security_income" json:"social_security_income"`

	TaxTotal          decimal.Decimal `yaml:"tax_total" json:"tax_total"`
	NetIncomeAfterTax decimal.Decimal `yaml:"net_income_after_tax" json:"net_income_after_tax"`
	TaxEffectiveRate  decimal.Decimal `yaml:"tax_effective_rate" json:"tax_effective_rate"`
	FederalTax        decimal.Decimal `yaml:"federal_tax" json:"federal_tax"`
	StateTax          decimal.Decimal `yaml:"state_tax" json:"state_tax"`
}

// IsDepleted reports whether the portfolio is exhausted at end of year.
func (yr *YearRecord) IsDepleted() bool {
	return yr.TotalBalance.LessThanOrEqual(decimal.Zero)
}

// ProjectionSummary provides headline metrics for a completed projection run.
type ProjectionSummary struct {
	FirstRetirementYearNetIncome decimal.Decimal `json:"first_retirement_year_net_income"`
	FinalTotalBalance            decimal.Decimal `json:"final_total_balance"`
	PeakTotalBalance             decimal.Decimal `json:"peak_total_balance"`
	PeakBalanceAge               int             `json:"peak_balance_age"`

	// PortfolioLongevity counts simulated years until the portfolio is
	// depleted; equals the full horizon when it never runs out.
	PortfolioLongevity int             `json:"portfolio_longevity"`
	TotalTaxesPaid     decimal.Decimal `json:"total_taxes_paid"`
}

// ProjectionResult packages the config echo, the per-age records and the
// derived summary for output formatting.
type ProjectionResult struct {
	Config  PlanConfig        `json:"config"`
	Records []YearRecord      `json:"records"`
	Summary ProjectionSummary `json:"summary"`
}

// RecordAtAge returns the record for a specific age, or nil when the age is
// outside the projected range.
func (pr *ProjectionResult) RecordAtAge(age int) *YearRecord {
	for i := range pr.Records {
		if pr.Records[i].Age == age {
			return &pr.Records[i]
		}
	}
	return nil
}

// RetirementRecords filters the projection down to retirement-year rows.
func (pr *ProjectionResult) RetirementRecords() []YearRecord {
	var out []YearRecord
	for _, rec := range pr.Records {
		if rec.IsRetirementYear {
			out = append(out, rec)
		}
	}
	return out
}
