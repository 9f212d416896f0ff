package main

import (
	"fmt"

	"github.com/johnxli92/retirement-planner/internal/calculation"
	"github.com/johnxli92/retirement-planner/internal/domain"
	"github.com/johnxli92/retirement-planner/internal/output"
	"github.com/johnxli92/retirement-planner/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var taxesCmd = &cobra.Command{
	Use:   "taxes",
	Short: "Estimate one year of taxes for given income amounts",
	RunE:  runTaxes,
}

var (
	taxesOrdinary  string
	taxesGains     string
	taxesSS        string
	taxesFiling    string
	taxesStateRate string
)

func init() {
	taxesCmd.Flags().StringVar(&taxesOrdinary, "ordinary", "0", "Ordinary income (e.g. 401k withdrawals)")
	taxesCmd.Flags().StringVar(&taxesGains, "gains", "0", "Capital gains income")
	taxesCmd.Flags().StringVar(&taxesSS, "social-security", "0", "Social Security income (reported, not taxed)")
	taxesCmd.Flags().StringVar(&taxesFiling, "filing", "single", "Filing status: single or married")
	taxesCmd.Flags().StringVar(&taxesStateRate, "state-rate", "0", "Flat state tax rate as a fraction, e.g. 0.05")

	rootCmd.AddCommand(taxesCmd)
}

func runTaxes(_ *cobra.Command, _ []string) error {
	ordinary, err := money.FromString(taxesOrdinary)
	if err != nil {
		return fmt.Errorf("invalid --ordinary amount %q: %w", taxesOrdinary, err)
	}
	gains, err := money.FromString(taxesGains)
	if err != nil {
		return fmt.Errorf("invalid --gains amount %q: %w", taxesGains, err)
	}
	ss, err := money.FromString(taxesSS)
	if err != nil {
		return fmt.Errorf("invalid --social-security amount %q: %w", taxesSS, err)
	}
	stateRate, err := decimal.NewFromString(taxesStateRate)
	if err != nil {
		return fmt.Errorf("invalid --state-rate %q: %w", taxesStateRate, err)
	}

	estimator := calculation.NewTaxEstimator()
	result := estimator.ComputeTaxes(domain.TaxInput{
		FilingStatus:         taxesFiling,
		StateRate:            stateRate,
		OrdinaryIncome:       ordinary.Decimal,
		CapitalGainsIncome:   gains.Decimal,
		SocialSecurityIncome: ss.Decimal,
	})

	fmt.Printf("Federal tax:     %s\n", output.FormatCurrency(result.FederalTax))
	fmt.Printf("State tax:       %s\n", output.FormatCurrency(result.StateTax))
	fmt.Printf("Total tax:       %s\n", output.FormatCurrency(result.TotalTax))
	fmt.Printf("Effective rate:  %s\n", output.FormatPercentage(result.EffectiveRate))
	fmt.Printf("Taxable ordinary after deduction: %s\n", output.FormatCurrency(result.OrdinaryIncomeTaxed))
	return nil
}
