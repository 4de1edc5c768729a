package afd

import (
	"fmt"
	"strconv"
)

var lineWidths = map[string]int{
	recordTypeHeader:     headerLineWidth,
	recordTypePunch:      punchLineWidth,
	recordTypeAdjustment: adjustmentLineWidth,
	recordTypeInclusion:  inclusionLineWidth,
	recordTypeTrailer:    trailerLineWidth,
}

// ValidateStructure checks fixed column widths, NSR monotonicity and the
// header/trailer frame. It runs on the textual content before encoding so a
// corrupt file is never offered for download.
func ValidateStructure(content string) ValidationReport {
	var errs []string
	lines := splitLines(content)

	if len(lines) < 2 {
		return ValidationReport{Errors: []string{"arquivo deve conter ao menos cabecalho e trailer"}}
	}

	prevNSR := 0
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) <= nsrWidth {
			errs = append(errs, fmt.Sprintf("linha %d: registro truncado", i+1))
			continue
		}

		recType := string(runes[nsrWidth : nsrWidth+1])
		want, known := lineWidths[recType]
		if !known {
			errs = append(errs, fmt.Sprintf("linha %d: tipo de registro desconhecido %q", i+1, recType))
			continue
		}
		if len(runes) != want {
			errs = append(errs, fmt.Sprintf("linha %d: largura %d, esperado %d para tipo %s", i+1, len(runes), want, recType))
		}

		recNSR, err := strconv.Atoi(string(runes[:nsrWidth]))
		if err != nil {
			errs = append(errs, fmt.Sprintf("linha %d: NSR invalido", i+1))
			continue
		}
		if recNSR != prevNSR+1 {
			errs = append(errs, fmt.Sprintf("linha %d: NSR %d fora de sequencia (anterior %d)", i+1, recNSR, prevNSR))
		}
		prevNSR = recNSR

		if i == 0 && recType != recordTypeHeader {
			errs = append(errs, "primeira linha deve ser o cabecalho (tipo 1)")
		}
		if i == len(lines)-1 && recType != recordTypeTrailer {
			errs = append(errs, "ultima linha deve ser o trailer (tipo 9)")
		}
		if i > 0 && recType == recordTypeHeader {
			errs = append(errs, fmt.Sprintf("linha %d: cabecalho duplicado", i+1))
		}
		if i < len(lines)-1 && recType == recordTypeTrailer {
			errs = append(errs, fmt.Sprintf("linha %d: trailer antes do fim do arquivo", i+1))
		}
	}

	return ValidationReport{Valid: len(errs) == 0, Errors: errs}
}
