package aej

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// ValidateXML performs the structural well-formedness and required-field
// check that gates transmission/download of a generated event.
func ValidateXML(content string) ValidationReport {
	var errs []string

	var doc xmlDocument
	if err := xml.Unmarshal([]byte(strings.TrimSpace(content)), &doc); err != nil {
		return ValidationReport{Errors: []string{fmt.Sprintf("XML mal formado: %v", err)}}
	}

	if doc.Event.ID == "" {
		errs = append(errs, "evento sem identificador (Id)")
	}
	if doc.Event.IdeEvento.Competence == "" {
		errs = append(errs, "evento sem periodo de apuracao (perApur)")
	}
	if doc.Event.Employer.CNPJ == "" {
		errs = append(errs, "empregador sem CNPJ (nrInsc)")
	}
	if len(doc.Event.Workers) == 0 {
		errs = append(errs, "evento sem trabalhadores")
	}
	for i, w := range doc.Event.Workers {
		if w.PIS == "" {
			errs = append(errs, fmt.Sprintf("trabalhador %d sem PIS (nisTrab)", i+1))
		}
		if w.Name == "" {
			errs = append(errs, fmt.Sprintf("trabalhador %d sem nome (nmTrab)", i+1))
		}
	}

	return ValidationReport{Valid: len(errs) == 0, Errors: errs}
}
