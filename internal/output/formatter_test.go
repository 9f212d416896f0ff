package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/johnxli92/retirement-planner/internal/calculation"
	"github.com/johnxli92/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult(t *testing.T) *domain.ProjectionResult {
	t.Helper()
	engine := calculation.NewProjectionEngine()
	result, err := engine.RunPlan(&domain.PlanConfig{
		CurrentAge:              60,
		RetireAge:               63,
		EndAge:                  70,
		Current401kBalance:      decimal.NewFromInt(400000),
		CurrentBrokerageBalance: decimal.NewFromInt(200000),
		Annual401kContribution:  decimal.NewFromInt(20000),
		RealReturn401k:          decimal.NewFromFloat(0.05),
		RealReturnBrokerage:     decimal.NewFromFloat(0.05),
		SWR:                     decimal.NewFromFloat(0.04),
		FilingStatus:            domain.FilingSingle,
		StateTaxRate:            decimal.NewFromFloat(0.05),
		WithdrawalOrder:         domain.WithdrawBrokerageFirst,
		SocialSecurityStartAge:  62,
	})
	require.NoError(t, err)
	return result
}

func TestCSVExporter(t *testing.T) {
	result := testResult(t)

	data, err := CSVExporter{}.Format(result)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, len(result.Records)+1)
	assert.Equal(t, csvColumns, rows[0])
	assert.Equal(t, "60", rows[1][0])
	assert.Equal(t, "false", rows[1][2])
}

func TestCSVRetirementExporter(t *testing.T) {
	result := testResult(t)

	data, err := CSVRetirementExporter{}.Format(result)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, len(result.RetirementRecords())+1)
	for _, row := range rows[1:] {
		assert.Equal(t, "true", row[2])
	}
}

func TestJSONFormatter(t *testing.T) {
	result := testResult(t)

	data, err := JSONFormatter{}.Format(result)
	require.NoError(t, err)

	var decoded domain.ProjectionResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Records, len(result.Records))
	assert.Equal(t, result.Config.CurrentAge, decoded.Config.CurrentAge)
}

func TestConsoleFormatter(t *testing.T) {
	result := testResult(t)

	data, err := ConsoleFormatter{}.Format(result)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "RETIREMENT PROJECTION SUMMARY")
	assert.Contains(t, text, "WITHDRAWALS AND TAXES (RETIREMENT YEARS)")
	assert.Contains(t, text, "Portfolio longevity")
}

func TestConsoleFormatter_NoRetirementYears(t *testing.T) {
	result := &domain.ProjectionResult{
		Config: domain.PlanConfig{CurrentAge: 30, RetireAge: 65, EndAge: 65},
		Records: []domain.YearRecord{
			{Age: 30, TotalBalance: decimal.NewFromInt(10000)},
		},
	}

	data, err := ConsoleFormatter{}.Format(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No retirement years")
}

func TestGetFormatterByName(t *testing.T) {
	assert.NotNil(t, GetFormatterByName("console"))
	assert.NotNil(t, GetFormatterByName("CSV"))
	assert.NotNil(t, GetFormatterByName("table"))
	assert.NotNil(t, GetFormatterByName("csv-retirement"))
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestNormalizeFormatName(t *testing.T) {
	assert.Equal(t, "console", NormalizeFormatName(" TABLE "))
	assert.Equal(t, "json", NormalizeFormatName("json-pretty"))
	assert.Equal(t, "csv", NormalizeFormatName("csv"))
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	assert.Contains(t, names, "console")
	assert.Contains(t, names, "csv")
	assert.Contains(t, names, "retirement-csv")
	assert.Contains(t, names, "json")
}
