package aej

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/csorodrigo/projeto-rh-sub003/internal/journey"
	"github.com/csorodrigo/projeto-rh-sub003/internal/shared/timemath"
)

// xmlDocument mirrors the e-Social jornada event layout (S-1200 style).
type xmlDocument struct {
	XMLName   xml.Name `xml:"eSocial"`
	Namespace string   `xml:"xmlns,attr"`
	Event     xmlEvent `xml:"evtJornada"`
}

type xmlEvent struct {
	ID        string       `xml:"Id,attr"`
	IdeEvento xmlIdeEvento `xml:"ideEvento"`
	Employer  xmlEmployer  `xml:"ideEmpregador"`
	Workers   []xmlWorker  `xml:"trabalhadores>trabalhador"`
}

type xmlIdeEvento struct {
	Environment string `xml:"tpAmb"`
	Competence  string `xml:"perApur"`
	GeneratedAt string `xml:"dhGeracao"`
}

type xmlEmployer struct {
	InscType int    `xml:"tpInsc"`
	CNPJ     string `xml:"nrInsc"`
	Name     string `xml:"nmRazao"`
	Address  string `xml:"endereco,omitempty"`
}

type xmlWorker struct {
	PIS      string       `xml:"nisTrab"`
	CPF      string       `xml:"cpfTrab"`
	Name     string       `xml:"nmTrab"`
	Summary  xmlSummary   `xml:"resumoJornada"`
	Days     []xmlDay     `xml:"detalheJornada>dia"`
	Monetary *xmlMonetary `xml:"valores,omitempty"`
}

type xmlSummary struct {
	WorkedDays      int     `xml:"diasTrabalhados"`
	WorkedHours     float64 `xml:"horasTrabalhadas"`
	Overtime50      string  `xml:"horasExtras50"`
	Overtime100     string  `xml:"horasExtras100"`
	NightHours      string  `xml:"horasNoturnas"`
	MissingHours    string  `xml:"horasFaltantes"`
	TimeBankBalance string  `xml:"saldoBancoHoras"`
	AbsenceDays     int     `xml:"diasAusencia"`
}

type xmlDay struct {
	Date        string   `xml:"data,attr"`
	Worked      string   `xml:"trabalhado"`
	Overtime50  string   `xml:"extra50,omitempty"`
	Overtime100 string   `xml:"extra100,omitempty"`
	Night       string   `xml:"noturno,omitempty"`
	Missing     string   `xml:"faltante,omitempty"`
	Warnings    []string `xml:"alerta,omitempty"`
}

type xmlMonetary struct {
	BaseSalary       string `xml:"salarioBase"`
	Overtime50Value  string `xml:"valorExtras50"`
	Overtime100Value string `xml:"valorExtras100"`
	NightShiftValue  string `xml:"valorAdicionalNoturno"`
	DSRValue         string `xml:"valorDSR"`
	AbsenceDeduction string `xml:"descontoFaltas"`
	TotalEarnings    string `xml:"totalProventos"`
}

const namespaceURI = "http://www.esocial.gov.br/schema/evt/evtJornada/v1"

// Generate serializes the monthly consolidation per employee into the XML
// jornada event. Any employee missing a PIS fails the whole generation
// before a single byte of XML is produced: partial regulatory files are
// never acceptable output.
func Generate(company CompanyInfo, employees []EmployeeJourney, period Period, generatedAt time.Time, cfg Config) (Result, error) {
	if strings.TrimSpace(company.CNPJ) == "" {
		return Result{}, ErrMissingCompany
	}
	if len(employees) == 0 {
		return Result{}, ErrNoEmployees
	}
	for _, e := range employees {
		if strings.TrimSpace(e.PIS) == "" {
			return Result{}, fmt.Errorf("%w: %s", ErrMissingPIS, e.Name)
		}
	}

	env := cfg.Environment
	if env == "" {
		env = EnvironmentProduction
	}

	// Deterministic order keeps output byte-reproducible across runs.
	sorted := make([]EmployeeJourney, len(employees))
	copy(sorted, employees)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].PIS < sorted[j].PIS })

	competence := period.Start.Format("2006-01")
	eventID := fmt.Sprintf("ID1%s%s", digitsOnly(company.CNPJ), generatedAt.Format("20060102150405"))

	doc := xmlDocument{
		Namespace: namespaceURI,
		Event: xmlEvent{
			ID: eventID,
			IdeEvento: xmlIdeEvento{
				Environment: env,
				Competence:  competence,
				GeneratedAt: generatedAt.Format(time.RFC3339),
			},
			Employer: xmlEmployer{
				InscType: 1,
				CNPJ:     digitsOnly(company.CNPJ),
				Name:     company.Name,
				Address:  company.Address,
			},
		},
	}

	for _, e := range sorted {
		doc.Event.Workers = append(doc.Event.Workers, buildWorker(e, cfg))
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("aej: marshal: %w", err)
	}

	return Result{
		XML:            xml.Header + string(out),
		Filename:       fmt.Sprintf("AEJ_%s.xml", period.Start.Format("200601")),
		TotalEmployees: len(sorted),
		EventID:        eventID,
		Period:         competence,
	}, nil
}

func buildWorker(e EmployeeJourney, cfg Config) xmlWorker {
	m := e.Monthly
	w := xmlWorker{
		PIS:  digitsOnly(e.PIS),
		CPF:  digitsOnly(e.CPF),
		Name: e.Name,
		Summary: xmlSummary{
			WorkedDays:      m.TotalWorkedDays,
			WorkedHours:     m.TotalWorkedHours,
			Overtime50:      timemath.FormatAsClock(m.TotalOvertime50Minutes),
			Overtime100:     timemath.FormatAsClock(m.TotalOvertime100Minutes),
			NightHours:      timemath.FormatAsClock(m.TotalNightMinutes),
			MissingHours:    timemath.FormatAsClock(m.TotalMissingMinutes),
			TimeBankBalance: timemath.FormatAsClock(m.TimeBankBalance),
			AbsenceDays:     m.AbsenceDays,
		},
	}

	if cfg.IncludeOvertimeDetails {
		for _, d := range m.DailyDetails {
			w.Days = append(w.Days, buildDay(d))
		}
	}
	if cfg.IncludeMonetaryValues && e.Monetary != nil {
		v := e.Monetary
		w.Monetary = &xmlMonetary{
			BaseSalary:       v.BaseSalary.StringFixed(2),
			Overtime50Value:  v.Overtime50Value.StringFixed(2),
			Overtime100Value: v.Overtime100Value.StringFixed(2),
			NightShiftValue:  v.NightShiftValue.StringFixed(2),
			DSRValue:         v.DSRValue.StringFixed(2),
			AbsenceDeduction: v.AbsenceDeduction.StringFixed(2),
			TotalEarnings:    v.TotalEarnings.StringFixed(2),
		}
	}
	return w
}

func buildDay(d journey.DailyJourneyResult) xmlDay {
	day := xmlDay{
		Date:     d.Date.Format("2006-01-02"),
		Worked:   timemath.FormatAsClock(d.NetWorkedMinutes),
		Warnings: d.Warnings,
	}
	if d.Overtime50Minutes > 0 {
		day.Overtime50 = timemath.FormatAsClock(d.Overtime50Minutes)
	}
	if d.Overtime100Minutes > 0 {
		day.Overtime100 = timemath.FormatAsClock(d.Overtime100Minutes)
	}
	if d.NightMinutes > 0 {
		day.Night = timemath.FormatAsClock(d.NightMinutes)
	}
	if d.MissingMinutes > 0 {
		day.Missing = timemath.FormatAsClock(d.MissingMinutes)
	}
	return day
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
