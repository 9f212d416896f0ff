package calculation

import (
	"fmt"

	"github.com/johnxli92/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectionEngine advances two account balances year by year across an age
// range, applying contributions, growth, retirement withdrawals, Social
// Security income and tax estimation. Each invocation is independent and
// reentrant; the only carried state is the two running balances inside a
// single run.
type ProjectionEngine struct {
	TaxCalc *TaxEstimator
	Logger  Logger
}

// NewProjectionEngine creates a projection engine with the default tax
// estimator and a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		TaxCalc: NewTaxEstimator(),
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// validateAges rejects malformed age ranges instead of inheriting the
// boundary anomalies a silent run would produce.
func validateAges(cfg *domain.PlanConfig) error {
	if cfg.RetireAge < cfg.CurrentAge {
		return fmt.Errorf("retire_age (%d) cannot be before current_age (%d)", cfg.RetireAge, cfg.CurrentAge)
	}
	if cfg.EndAge < cfg.RetireAge {
		return fmt.Errorf("end_age (%d) cannot be before retire_age (%d)", cfg.EndAge, cfg.RetireAge)
	}
	return nil
}

// RunProjection simulates one year per integer age from CurrentAge through
// EndAge and returns the ordered records. The sequence always has exactly
// EndAge - CurrentAge + 1 entries with strictly increasing contiguous ages.
func (pe *ProjectionEngine) RunProjection(cfg *domain.PlanConfig) ([]domain.YearRecord, error) {
	if err := validateAges(cfg); err != nil {
		return nil, err
	}

	records := make([]domain.YearRecord, 0, cfg.ProjectionYears())

	balance401k := cfg.Current401kBalance
	balanceBrokerage := cfg.CurrentBrokerageBalance

	one := decimal.NewFromInt(1)
	growth401k := one.Add(cfg.RealReturn401k)
	growthBrokerage := one.Add(cfg.RealReturnBrokerage)

	for age := cfg.CurrentAge; age <= cfg.EndAge; age++ {
		yearIndex := age - cfg.CurrentAge
		isRetirementYear := cfg.IsRetirementAge(age)

		// Contribution phase: retirement years receive no new money
		preGrowth401k := balance401k
		preGrowthBrokerage := balanceBrokerage
		if !isRetirementYear {
			preGrowth401k = preGrowth401k.Add(cfg.Annual401kContribution)
			preGrowthBrokerage = preGrowthBrokerage.Add(cfg.AnnualBrokerageContribution)
		}

		// Growth is applied once per year, after any contribution
		postGrowth401k := preGrowth401k.Mul(growth401k)
		postGrowthBrokerage := preGrowthBrokerage.Mul(growthBrokerage)

		socialSecurityIncome := SocialSecurityBenefit(age, isRetirementYear)

		withdrawalTotal := decimal.Zero
		withdrawal401k := decimal.Zero
		withdrawalBrokerage := decimal.Zero

		var taxResult domain.TaxResult

		if isRetirementYear {
			// Withdraw a fixed fraction of the current year's grown
			// portfolio, split by the configured account order. Draws
			// are capped by availability before spilling over, so
			// balances cannot go negative.
			portfolio := postGrowth401k.Add(postGrowthBrokerage)
			withdrawalTotal = portfolio.Mul(cfg.SWR)

			if cfg.WithdrawalOrder == domain.WithdrawTaxDeferredFirst {
				withdrawal401k = decimal.Min(withdrawalTotal, postGrowth401k)
				withdrawalBrokerage = withdrawalTotal.Sub(withdrawal401k)
			} else {
				withdrawalBrokerage = decimal.Min(withdrawalTotal, postGrowthBrokerage)
				withdrawal401k = withdrawalTotal.Sub(withdrawalBrokerage)
			}

			balance401k = postGrowth401k.Sub(withdrawal401k)
			balanceBrokerage = postGrowthBrokerage.Sub(withdrawalBrokerage)

			estimatedGains := EstimateBrokerageGains(withdrawalBrokerage, DefaultGainFraction)

			taxResult = pe.TaxCalc.ComputeTaxes(domain.TaxInput{
				FilingStatus:         cfg.FilingStatus,
				StateRate:            cfg.StateTaxRate,
				OrdinaryIncome:       withdrawal401k,
				CapitalGainsIncome:   estimatedGains,
				SocialSecurityIncome: socialSecurityIncome,
			})

			if age == cfg.RetireAge {
				pe.Logger.Debugf("first retirement year at age %d: withdrawal=%s tax=%s ss=%s",
					age, withdrawalTotal.StringFixed(2), taxResult.TotalTax.StringFixed(2), socialSecurityIncome.StringFixed(2))
			}
		} else {
			balance401k = postGrowth401k
			balanceBrokerage = postGrowthBrokerage
		}

		totalBalance := balance401k.Add(balanceBrokerage)

		// Net income covers withdrawals plus Social Security, less taxes
		totalIncome := withdrawalTotal.Add(socialSecurityIncome)
		netIncome := totalIncome.Sub(taxResult.TotalTax)

		records = append(records, domain.YearRecord{
			Age:                  age,
			YearIndex:            yearIndex,
			IsRetirementYear:     isRetirementYear,
			Balance401k:          balance401k,
			BalanceBrokerage:     balanceBrokerage,
			TotalBalance:         totalBalance,
			WithdrawalTotal:      withdrawalTotal,
			Withdrawal401k:       withdrawal401k,
			WithdrawalBrokerage:  withdrawalBrokerage,
			SocialSecurityIncome: socialSecurityIncome,
			TaxTotal:             taxResult.TotalTax,
			NetIncomeAfterTax:    netIncome,
			TaxEffectiveRate:     taxResult.EffectiveRate,
			FederalTax:           taxResult.FederalTax,
			StateTax:             taxResult.StateTax,
		})
	}

	return records, nil
}

// RunPlan runs the projection and packages the records with a derived
// summary for output formatting.
func (pe *ProjectionEngine) RunPlan(cfg *domain.PlanConfig) (*domain.ProjectionResult, error) {
	records, err := pe.RunProjection(cfg)
	if err != nil {
		return nil, fmt.Errorf("projection failed: %w", err)
	}

	return &domain.ProjectionResult{
		Config:  *cfg,
		Records: records,
		Summary: Summarize(cfg, records),
	}, nil
}
