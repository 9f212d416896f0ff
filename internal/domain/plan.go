package domain

import (
	"github.com/shopspring/decimal"
)

// FilingStatus identifies the federal filing status used for tax estimation
type FilingStatus = string

const (
	FilingSingle  FilingStatus = "single"
	FilingMarried FilingStatus = "married"
)

// WithdrawalOrder controls which account retirement withdrawals are drawn from first
type WithdrawalOrder = string

const (
	WithdrawBrokerageFirst   WithdrawalOrder = "brokerage_first"
	WithdrawTaxDeferredFirst WithdrawalOrder = "tax_deferred_first"
)

// PlanConfig holds all inputs for a single retirement projection run.
// It is created once per run by the caller and never mutated by the engine.
type PlanConfig struct {
	CurrentAge int `yaml:"current_age" json:"current_age"`
	RetireAge  int `yaml:"retire_age" json:"retire_age"`
	EndAge     int `yaml:"end_age" json:"end_age"`

	Current401kBalance      decimal.Decimal `yaml:"current_401k_balance" json:"current_401k_balance"`
	CurrentBrokerageBalance decimal.Decimal `yaml:"current_brokerage_balance" json:"current_brokerage_balance"`

	Annual401kContribution      decimal.Decimal `yaml:"annual_401k_contribution" json:"annual_401k_contribution"`
	AnnualBrokerageContribution decimal.Decimal `yaml:"annual_brokerage_contribution" json:"annual_brokerage_contribution"`

	RealReturn401k      decimal.Decimal `yaml:"real_return_401k" json:"real_return_401k"`
	RealReturnBrokerage decimal.Decimal `yaml:"real_return_brokerage" json:"real_return_brokerage"`

	// SWR is the safe withdrawal rate, a fraction of the current year's
	// post-growth portfolio withdrawn annually during retirement.
	SWR decimal.Decimal `yaml:"swr" json:"swr"`

	FilingStatus    FilingStatus    `yaml:"filing_status" json:"filing_status"`
	StateTaxRate    decimal.Decimal `yaml:"state_tax_rate" json:"state_tax_rate"`
	WithdrawalOrder WithdrawalOrder `yaml:"withdrawal_order" json:"withdrawal_order"`

	// SocialSecurityStartAge is carried for reporting but not consulted by
	// the projection engine: benefit eligibility is pinned at age 62.
	SocialSecurityStartAge int `yaml:"social_security_start_age" json:"social_security_start_age"`
}

// IsRetirementAge reports whether the given age falls in the retirement phase.
func (pc *PlanConfig) IsRetirementAge(age int) bool {
	return age >= pc.RetireAge
}

// ProjectionYears returns the number of simulated years, one per integer age.
func (pc *PlanConfig) ProjectionYears() int {
	return pc.EndAge - pc.CurrentAge + 1
}
