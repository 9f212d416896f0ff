package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/johnxli92/retirement-planner/internal/domain"
)

// csvColumns is the stable per-age column set. Names and semantics are the
// contract with presentation layers; do not change without a version note.
var csvColumns = []string{
	"age",
	"year_index",
	"is_retirement_year",
	"balance_401k",
	"balance_brokerage",
	"total_balance",
	"withdrawal_total",
	"withdrawal_401k",
	"withdrawal_brokerage",
	"social_security_income",
	"tax_total",
	"net_income_after_tax",
	"tax_effective_rate",
	"federal_tax",
	"state_tax",
}

func csvRow(rec domain.YearRecord) []string {
	return []string{
		strconv.Itoa(rec.Age),
		strconv.Itoa(rec.YearIndex),
		strconv.FormatBool(rec.IsRetirementYear),
		rec.Balance401k.StringFixed(2),
		rec.BalanceBrokerage.StringFixed(2),
		rec.TotalBalance.StringFixed(2),
		rec.WithdrawalTotal.StringFixed(2),
		rec.Withdrawal401k.StringFixed(2),
		rec.WithdrawalBrokerage.StringFixed(2),
		rec.SocialSecurityIncome.StringFixed(2),
		rec.TaxTotal.StringFixed(2),
		rec.NetIncomeAfterTax.StringFixed(2),
		rec.TaxEffectiveRate.StringFixed(5),
		rec.FederalTax.StringFixed(2),
		rec.StateTax.StringFixed(2),
	}
}

// CSVExporter writes the full projection, one row per age.
type CSVExporter struct{}

func (c CSVExporter) Name() string { return "csv" }

func (c CSVExporter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvColumns); err != nil {
		return nil, err
	}
	for _, rec := range result.Records {
		if err := w.Write(csvRow(rec)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CSVRetirementExporter writes only the retirement-year rows.
type CSVRetirementExporter struct{}

func (c CSVRetirementExporter) Name() string { return "retirement-csv" }

func (c CSVRetirementExporter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvColumns); err != nil {
		return nil, err
	}
	for _, rec := range result.RetirementRecords() {
		if err := w.Write(csvRow(rec)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
