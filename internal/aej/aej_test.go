package aej

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csorodrigo/projeto-rh-sub003/internal/journey"
	"github.com/csorodrigo/projeto-rh-sub003/internal/valuation"
)

func testPeriod() Period {
	return Period{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func testEmployees() []EmployeeJourney {
	return []EmployeeJourney{
		{
			PIS:  "98765432109",
			CPF:  "11122233344",
			Name: "Joao da Silva",
			Monthly: journey.MonthlyJourneyResult{
				TotalWorkedDays:    21,
				TotalWorkedMinutes: 10080,
				TotalWorkedHours:   168,
				DailyDetails: []journey.DailyJourneyResult{
					{
						Date:             time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
						NetWorkedMinutes: 480,
					},
				},
			},
		},
		{
			PIS:  "12345678901",
			CPF:  "55566677788",
			Name: "Maria Souza",
			Monthly: journey.MonthlyJourneyResult{
				TotalWorkedDays:        20,
				TotalOvertime50Minutes: 120,
			},
		},
	}
}

func testCompany() CompanyInfo {
	return CompanyInfo{CNPJ: "12.345.678/0001-95", Name: "Padaria Modelo LTDA"}
}

func TestGenerate(t *testing.T) {
	generatedAt := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	res, err := Generate(testCompany(), testEmployees(), testPeriod(), generatedAt, Config{})
	require.NoError(t, err)

	assert.Equal(t, 2, res.TotalEmployees)
	assert.Equal(t, "AEJ_202503.xml", res.Filename)
	assert.Equal(t, "2025-03", res.Period)
	assert.Equal(t, "ID11234567800019520250401100000", res.EventID)
	assert.Contains(t, res.XML, "<nisTrab>98765432109</nisTrab>")
	assert.Contains(t, res.XML, "<nmRazao>Padaria Modelo LTDA</nmRazao>")
	// employees sorted by PIS for reproducible output
	assert.Less(t,
		strings.Index(res.XML, "Maria Souza"),
		strings.Index(res.XML, "Joao da Silva"))
}

func TestGenerate_ValidatesOwnOutput(t *testing.T) {
	res, err := Generate(testCompany(), testEmployees(), testPeriod(), time.Now().UTC(), Config{
		IncludeOvertimeDetails: true,
	})
	require.NoError(t, err)

	report := ValidateXML(res.XML)
	assert.True(t, report.Valid, "errors: %v", report.Errors)
}

func TestGenerate_MissingPISFailsBeforeAnyXML(t *testing.T) {
	emps := testEmployees()
	emps[1].PIS = " "

	res, err := Generate(testCompany(), emps, testPeriod(), time.Now().UTC(), Config{})
	assert.ErrorIs(t, err, ErrMissingPIS)
	assert.Empty(t, res.XML)
}

func TestGenerate_RequiresCompanyAndEmployees(t *testing.T) {
	_, err := Generate(CompanyInfo{}, testEmployees(), testPeriod(), time.Now().UTC(), Config{})
	assert.ErrorIs(t, err, ErrMissingCompany)

	_, err = Generate(testCompany(), nil, testPeriod(), time.Now().UTC(), Config{})
	assert.ErrorIs(t, err, ErrNoEmployees)
}

func TestGenerate_EnvironmentFlagOnly(t *testing.T) {
	prod, err := Generate(testCompany(), testEmployees(), testPeriod(), time.Unix(0, 0).UTC(), Config{Environment: EnvironmentProduction})
	require.NoError(t, err)
	stg, err := Generate(testCompany(), testEmployees(), testPeriod(), time.Unix(0, 0).UTC(), Config{Environment: EnvironmentStaging})
	require.NoError(t, err)

	// only the metadata flag may differ between environments
	assert.Equal(t,
		strings.Replace(prod.XML, EnvironmentProduction, EnvironmentStaging, 1),
		stg.XML)
}

func TestGenerate_MonetaryValues(t *testing.T) {
	emps := testEmployees()
	emps[0].Monetary = &valuation.MonetaryValues{
		BaseSalary:    decimal.RequireFromString("2200"),
		TotalEarnings: decimal.RequireFromString("2257.50"),
	}

	res, err := Generate(testCompany(), emps, testPeriod(), time.Now().UTC(), Config{IncludeMonetaryValues: true})
	require.NoError(t, err)
	assert.Contains(t, res.XML, "<totalProventos>2257.50</totalProventos>")
	assert.Contains(t, res.XML, "<salarioBase>2200.00</salarioBase>")
}

func TestValidateXML_Malformed(t *testing.T) {
	report := ValidateXML("<eSocial><broken>")
	assert.False(t, report.Valid)
	require.NotEmpty(t, report.Errors)
}

func TestValidateXML_MissingFields(t *testing.T) {
	report := ValidateXML(`<eSocial><evtJornada Id=""><ideEvento><perApur></perApur></ideEvento></evtJornada></eSocial>`)
	assert.False(t, report.Valid)
	assert.NotEmpty(t, report.Errors)
}
