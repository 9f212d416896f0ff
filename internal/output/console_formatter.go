package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/johnxli92/retirement-planner/internal/domain"
)

// ConsoleFormatter renders a plan summary plus a retirement-year table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	cfg := result.Config

	fmt.Fprintln(&buf, "RETIREMENT PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Ages: %d -> retire at %d -> plan until %d\n", cfg.CurrentAge, cfg.RetireAge, cfg.EndAge)
	fmt.Fprintf(&buf, "Filing: %s  State rate: %s  Withdrawal order: %s  SWR: %s\n",
		cfg.FilingStatus, FormatPercentage(cfg.StateTaxRate), cfg.WithdrawalOrder, FormatPercentage(cfg.SWR))
	fmt.Fprintln(&buf)

	s := result.Summary
	fmt.Fprintf(&buf, "First retirement-year net income: %s\n", FormatCurrency(s.FirstRetirementYearNetIncome))
	fmt.Fprintf(&buf, "Peak balance: %s at age %d\n", FormatCurrency(s.PeakTotalBalance), s.PeakBalanceAge)
	fmt.Fprintf(&buf, "Final balance at age %d: %s\n", cfg.EndAge, FormatCurrency(s.FinalTotalBalance))
	fmt.Fprintf(&buf, "Portfolio longevity: %d of %d years\n", s.PortfolioLongevity, len(result.Records))
	fmt.Fprintf(&buf, "Total taxes paid: %s\n", FormatCurrency(s.TotalTaxesPaid))
	fmt.Fprintln(&buf)

	retirement := result.RetirementRecords()
	if len(retirement) == 0 {
		fmt.Fprintln(&buf, "No retirement years within the planned horizon.")
		return buf.Bytes(), nil
	}

	fmt.Fprintln(&buf, "WITHDRAWALS AND TAXES (RETIREMENT YEARS)")
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Age\tWithdrawal\tSocial Security\tTax\tNet Income\tEff Rate\t401k\tBrokerage\tTotal\t")
	for _, rec := range retirement {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			rec.Age,
			FormatCurrency(rec.WithdrawalTotal),
			FormatCurrency(rec.SocialSecurityIncome),
			FormatCurrency(rec.TaxTotal),
			FormatCurrency(rec.NetIncomeAfterTax),
			FormatPercentage(rec.TaxEffectiveRate),
			FormatCurrency(rec.Balance401k),
			FormatCurrency(rec.BalanceBrokerage),
			FormatCurrency(rec.TotalBalance),
		)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
