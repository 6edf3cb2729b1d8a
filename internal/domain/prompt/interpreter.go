// Package prompt turns a free-text report request written in Spanish into a
// validated parameter set: report type, output format, date range, grouping
// dimension and requested columns. The input may come from typed text or a
// voice transcription; the interpreter only ever sees plain text.
package prompt

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrEmptyPrompt is the only interpretation failure. Every other extraction
// problem resolves to a documented default.
var ErrEmptyPrompt = errors.New("no prompt provided")

// Params is the parameter record produced by one interpretation pass. It is
// immutable once returned: the same prompt always yields the same record
// (except for the current-date default when no date expression matches).
type Params struct {
	Type        ReportType `json:"tipo"`
	Format      Format     `json:"formato"`
	DateStart   time.Time  `json:"fecha_inicio"`
	DateEnd     time.Time  `json:"fecha_fin"`
	GroupBy     GroupBy    `json:"agrupar_por,omitempty"`
	Fields      []Field    `json:"campos,omitempty"`
	Description string     `json:"descripcion"`
}

var (
	groupedByRe = regexp.MustCompile(`agrupado\s+por\s+([\p{L}\p{N}_]+)`)
	fieldListRe = regexp.MustCompile(`debe\s+mostrar\s+(.+?)(?:\.|$)`)
)

// Interpret parses a prompt into a complete parameter record.
func Interpret(text string) (Params, error) {
	return interpretAt(text, time.Now())
}

// interpretAt is Interpret with an injected clock for the current-month and
// current-year defaults.
func interpretAt(text string, now time.Time) (Params, error) {
	if strings.TrimSpace(text) == "" {
		return Params{}, ErrEmptyPrompt
	}
	normalized := strings.ToLower(text)

	p := Params{
		Type:   extractReportType(normalized),
		Format: extractFormat(normalized),
	}
	r := extractDateRange(normalized, now)
	p.DateStart, p.DateEnd = r.Start, r.End
	p.GroupBy = extractGroupBy(normalized)
	p.Fields = extractFields(normalized)
	p.Description = describe(p)
	return p, nil
}

func extractReportType(text string) ReportType {
	if token, ok := classifyWord(text, reportTypeSynonyms); ok {
		return ReportType(token)
	}
	return ReportVentas
}

func extractFormat(text string) Format {
	if token, ok := classify(text, formatSynonyms); ok {
		return Format(token)
	}
	return FormatPDF
}

// extractGroupBy only fires on the literal phrase "agrupado por <word>". The
// captured word is matched against the grouping synonyms; a word that matches
// none leaves the grouping unset instead of propagating verbatim.
func extractGroupBy(text string) GroupBy {
	m := groupedByRe.FindStringSubmatch(text)
	if m == nil {
		return GroupNone
	}
	if token, ok := classify(m[1], groupBySynonyms); ok {
		return GroupBy(token)
	}
	return GroupNone
}

// extractFields handles "debe mostrar X, Y, Z" up to the first period. Each
// comma-separated phrase maps onto a canonical column by keyword containment;
// phrases matching nothing are silently dropped.
func extractFields(text string) []Field {
	m := fieldListRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	var fields []Field
	for _, phrase := range strings.Split(m[1], ",") {
		phrase = strings.TrimSpace(phrase)
		switch {
		case strings.Contains(phrase, "nombre") && strings.Contains(phrase, "cliente"):
			fields = append(fields, FieldNombreCliente)
		case strings.Contains(phrase, "cantidad") && strings.Contains(phrase, "compra"):
			fields = append(fields, FieldCantidadCompras)
		case strings.Contains(phrase, "monto") || strings.Contains(phrase, "total"):
			fields = append(fields, FieldMontoTotal)
		case strings.Contains(phrase, "fecha"):
			fields = append(fields, FieldFechas)
		case strings.Contains(phrase, "producto"):
			fields = append(fields, FieldProducto)
		}
	}
	return fields
}

// describe builds the human-readable summary attached to the record. It is
// cosmetic: confirmation text and the default report description, never
// re-parsed.
func describe(p Params) string {
	var b strings.Builder
	b.WriteString("Reporte de ")
	b.WriteString(string(p.Type))
	if !p.DateStart.IsZero() && !p.DateEnd.IsZero() {
		fmt.Fprintf(&b, " del %s al %s", p.DateStart.Format("02/01/2006"), p.DateEnd.Format("02/01/2006"))
	}
	if p.GroupBy != GroupNone {
		fmt.Fprintf(&b, ", agrupado por %s", p.GroupBy)
	}
	fmt.Fprintf(&b, " (formato %s)", strings.ToUpper(string(p.Format)))
	return b.String()
}

// Confirmation is the preview sentence shown before generating the report.
func (p Params) Confirmation() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Se generará un reporte de %s", p.Type)
	if !p.DateStart.IsZero() && !p.DateEnd.IsZero() {
		fmt.Fprintf(&b, " del %s al %s", p.DateStart.Format("02/01/2006"), p.DateEnd.Format("02/01/2006"))
	}
	if p.GroupBy != GroupNone {
		fmt.Fprintf(&b, ", agrupado por %s", p.GroupBy)
	}
	fmt.Fprintf(&b, " en formato %s", strings.ToUpper(string(p.Format)))
	return b.String()
}

// Serializable returns the record with dates rendered as ISO strings, the
// shape persisted alongside a generated report.
func (p Params) Serializable() map[string]any {
	out := map[string]any{
		"tipo":        string(p.Type),
		"formato":     string(p.Format),
		"descripcion": p.Description,
	}
	if !p.DateStart.IsZero() {
		out["fecha_inicio"] = p.DateStart.Format("2006-01-02")
	}
	if !p.DateEnd.IsZero() {
		out["fecha_fin"] = p.DateEnd.Format("2006-01-02")
	}
	if p.GroupBy != GroupNone {
		out["agrupar_por"] = string(p.GroupBy)
	}
	if p.Fields != nil {
		names := make([]string, 0, len(p.Fields))
		for _, f := range p.Fields {
			names = append(names, string(f))
		}
		out["campos"] = names
	}
	return out
}
