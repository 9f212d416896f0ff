package config

import (
	"fmt"
	"os"

	"github.com/johnxli92/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan configuration from a YAML file, applies defaults
// for omitted enumeration fields and validates the result.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg domain.PlanConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&cfg)

	if err := ip.ValidatePlan(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills in omitted enumeration and horizon fields. Numeric
// amounts and rates are taken literally: a zero return or zero state rate is
// a meaningful input, not an omission.
func (ip *InputParser) ApplyDefaults(cfg *domain.PlanConfig) {
	if cfg.EndAge == 0 {
		cfg.EndAge = 100
	}
	if cfg.FilingStatus == "" {
		cfg.FilingStatus = domain.FilingSingle
	}
	if cfg.WithdrawalOrder == "" {
		cfg.WithdrawalOrder = domain.WithdrawBrokerageFirst
	}
	if cfg.SocialSecurityStartAge == 0 {
		cfg.SocialSecurityStartAge = 62
	}
}

// ValidatePlan validates the loaded plan configuration
func (ip *InputParser) ValidatePlan(cfg *domain.PlanConfig) error {
	if cfg.CurrentAge <= 0 {
		return fmt.Errorf("current_age must be positive, got %d", cfg.CurrentAge)
	}
	if cfg.RetireAge < cfg.CurrentAge {
		return fmt.Errorf("retire_age (%d) cannot be before current_age (%d)", cfg.RetireAge, cfg.CurrentAge)
	}
	if cfg.EndAge < cfg.RetireAge {
		return fmt.Errorf("end_age (%d) cannot be before retire_age (%d)", cfg.EndAge, cfg.RetireAge)
	}
	if cfg.EndAge > 120 {
		return fmt.Errorf("end_age must be at most 120, got %d", cfg.EndAge)
	}

	if cfg.Current401kBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("current_401k_balance cannot be negative")
	}
	if cfg.CurrentBrokerageBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("current_brokerage_balance cannot be negative")
	}
	if cfg.Annual401kContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("annual_401k_contribution cannot be negative")
	}
	if cfg.AnnualBrokerageContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("annual_brokerage_contribution cannot be negative")
	}

	// Allow losses but cap extreme values
	lowerReturn := decimal.NewFromFloat(-0.50)
	upperReturn := decimal.NewFromFloat(0.50)
	if cfg.RealReturn401k.LessThan(lowerReturn) || cfg.RealReturn401k.GreaterThan(upperReturn) {
		return fmt.Errorf("real_return_401k must be between -50%% and 50%%, got %s%%",
			cfg.RealReturn401k.Mul(decimal.NewFromInt(100)).StringFixed(2))
	}
	if cfg.RealReturnBrokerage.LessThan(lowerReturn) || cfg.RealReturnBrokerage.GreaterThan(upperReturn) {
		return fmt.Errorf("real_return_brokerage must be between -50%% and 50%%, got %s%%",
			cfg.RealReturnBrokerage.Mul(decimal.NewFromInt(100)).StringFixed(2))
	}

	if cfg.SWR.LessThan(decimal.Zero) || cfg.SWR.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("swr must be a fraction between 0 and 1, got %s", cfg.SWR.String())
	}
	if cfg.StateTaxRate.LessThan(decimal.Zero) || cfg.StateTaxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("state_tax_rate must be a fraction in [0, 1), got %s", cfg.StateTaxRate.String())
	}

	if cfg.FilingStatus != domain.FilingSingle && cfg.FilingStatus != domain.FilingMarried {
		return fmt.Errorf("filing_status must be %q or %q, got %q",
			domain.FilingSingle, domain.FilingMarried, cfg.FilingStatus)
	}
	if cfg.WithdrawalOrder != domain.WithdrawBrokerageFirst && cfg.WithdrawalOrder != domain.WithdrawTaxDeferredFirst {
		return fmt.Errorf("withdrawal_order must be %q or %q, got %q",
			domain.WithdrawBrokerageFirst, domain.WithdrawTaxDeferredFirst, cfg.WithdrawalOrder)
	}

	if cfg.SocialSecurityStartAge < 62 || cfg.SocialSecurityStartAge > 70 {
		return fmt.Errorf("social_security_start_age must be between 62 and 70, got %d", cfg.SocialSecurityStartAge)
	}

	return nil
}
