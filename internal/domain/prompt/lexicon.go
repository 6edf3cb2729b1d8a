package prompt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Canonical tokens produced by the interpreter. Surface vocabulary is mapped
// onto these through the synonym tables below; extractors never hand a raw
// prompt word to the rest of the system.

type ReportType string

const (
	ReportVentas     ReportType = "ventas"
	ReportProductos  ReportType = "productos"
	ReportClientes   ReportType = "clientes"
	ReportInventario ReportType = "inventario"
	ReportFinanciero ReportType = "financiero"
)

// Valid reports whether t is one of the five canonical report types.
func (t ReportType) Valid() bool {
	switch t {
	case ReportVentas, ReportProductos, ReportClientes, ReportInventario, ReportFinanciero:
		return true
	}
	return false
}

type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
	FormatJSON  Format = "json"
)

func (f Format) Valid() bool {
	switch f {
	case FormatPDF, FormatExcel, FormatJSON:
		return true
	}
	return false
}

type GroupBy string

const (
	GroupNone      GroupBy = ""
	GroupProducto  GroupBy = "producto"
	GroupCliente   GroupBy = "cliente"
	GroupCategoria GroupBy = "categoria"
	GroupMarca     GroupBy = "marca"
	GroupDia       GroupBy = "dia"
	GroupMes       GroupBy = "mes"
	GroupAnio      GroupBy = "anio"
	GroupSemana    GroupBy = "semana"
)

type Field string

const (
	FieldNombreCliente   Field = "nombre_cliente"
	FieldCantidadCompras Field = "cantidad_compras"
	FieldMontoTotal      Field = "monto_total"
	FieldFechas          Field = "fechas"
	FieldProducto        Field = "producto"
)

// synonym associates one surface form with its canonical token. Tables are
// ordered slices, not maps: matching priority is table order, and ties go to
// the entry scanned first.
type synonym struct {
	word  string
	token string
}

// monthNames maps Spanish month names to month numbers, in calendar order.
var monthNames = []struct {
	name string
	num  int
}{
	{"enero", 1}, {"febrero", 2}, {"marzo", 3}, {"abril", 4},
	{"mayo", 5}, {"junio", 6}, {"julio", 7}, {"agosto", 8},
	{"septiembre", 9}, {"octubre", 10}, {"noviembre", 11}, {"diciembre", 12},
}

var reportTypeSynonyms = []synonym{
	{"venta", string(ReportVentas)},
	{"ventas", string(ReportVentas)},
	{"producto", string(ReportProductos)},
	{"productos", string(ReportProductos)},
	{"cliente", string(ReportClientes)},
	{"clientes", string(ReportClientes)},
	{"inventario", string(ReportInventario)},
	{"stock", string(ReportInventario)},
	{"financiero", string(ReportFinanciero)},
	{"finanzas", string(ReportFinanciero)},
}

var formatSynonyms = []synonym{
	{"pdf", string(FormatPDF)},
	{"excel", string(FormatExcel)},
	{"xlsx", string(FormatExcel)},
	{"json", string(FormatJSON)},
}

var groupBySynonyms = []synonym{
	{"producto", string(GroupProducto)},
	{"productos", string(GroupProducto)},
	{"cliente", string(GroupCliente)},
	{"clientes", string(GroupCliente)},
	{"categoria", string(GroupCategoria)},
	{"categoría", string(GroupCategoria)},
	{"marca", string(GroupMarca)},
	{"día", string(GroupDia)},
	{"dia", string(GroupDia)},
	{"mes", string(GroupMes)},
	{"año", string(GroupAnio)},
	{"semana", string(GroupSemana)},
}

// classify returns the canonical token of the first synonym contained in text.
//
// Matching is substring containment over the whole normalized prompt. Safe for
// the format and grouping tables, whose entries never embed in unrelated words.
func classify(text string, table []synonym) (string, bool) {
	for _, s := range table {
		if strings.Contains(text, s.word) {
			return s.token, true
		}
	}
	return "", false
}

// classifyWord is classify with word-boundary matching. The report-type table
// needs it: "inventario" embeds "venta", so raw containment would misread an
// inventory prompt as a sales one.
func classifyWord(text string, table []synonym) (string, bool) {
	for _, s := range table {
		if containsWord(text, s.word) {
			return s.token, true
		}
	}
	return "", false
}

func containsWord(text, word string) bool {
	for start := 0; ; {
		i := strings.Index(text[start:], word)
		if i < 0 {
			return false
		}
		i += start
		if boundaryBefore(text, i) && boundaryAfter(text, i+len(word)) {
			return true
		}
		start = i + 1
	}
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i == len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
