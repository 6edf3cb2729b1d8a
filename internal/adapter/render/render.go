// Package render turns assembled report datasets into downloadable
// artifacts. One renderer exists per output format; the registry hands the
// report use case a map keyed by the interpreted format token.
package render

import (
	"fmt"
	"sort"
	"strconv"

	"smartsales365/internal/domain/prompt"
	"smartsales365/internal/domain/reportdata"
	"smartsales365/internal/usecase/interfaces"
)

// Renderers builds the full format registry.
func Renderers() map[prompt.Format]interfaces.IReportRenderer {
	return map[prompt.Format]interfaces.IReportRenderer{
		prompt.FormatPDF:   NewPDFRenderer(),
		prompt.FormatExcel: NewExcelRenderer(),
		prompt.FormatJSON:  NewJSONRenderer(),
	}
}

// table is one titled grid of a tabular artifact.
type table struct {
	title  string
	header []string
	rows   [][]string
}

// layout is the format-independent shape of a tabular artifact: a title, the
// aggregate summary and the detail tables. PDF and Excel both consume it.
type layout struct {
	title   string
	summary [][2]string
	tables  []table
}

var fieldLabels = map[prompt.Field]string{
	prompt.FieldNombreCliente:   "Cliente",
	prompt.FieldCantidadCompras: "Cantidad de compras",
	prompt.FieldMontoTotal:      "Monto total",
	prompt.FieldFechas:          "Fecha",
	prompt.FieldProducto:        "Producto",
}

func buildLayout(params prompt.Params, data reportdata.Dataset) layout {
	l := layout{title: fmt.Sprintf("Reporte de %s", data.Tipo)}
	switch data.Tipo {
	case prompt.ReportVentas:
		l.summary, l.tables = salesLayout(params, data.Ventas)
	case prompt.ReportProductos:
		l.summary, l.tables = productsLayout(data.Productos)
	case prompt.ReportClientes:
		l.summary, l.tables = clientsLayout(data.Clientes)
	case prompt.ReportInventario:
		l.summary, l.tables = inventoryLayout(data.Inventario)
	case prompt.ReportFinanciero:
		l.summary = financialSummary(data.Financiero)
	}
	return l
}

func salesLayout(params prompt.Params, r *reportdata.SalesReport) ([][2]string, []table) {
	if r == nil {
		return nil, nil
	}
	summary := [][2]string{
		{"Total de ventas", money(r.TotalVentas)},
		{"Cantidad de ventas", strconv.Itoa(r.CantidadVentas)},
		{"Ticket promedio", money(r.TicketPromedio)},
		{"Productos vendidos", strconv.Itoa(r.ProductosVendidos)},
	}

	var tables []table
	switch {
	case r.VentasFiltradas != nil:
		header := make([]string, 0, len(params.Fields))
		for _, f := range params.Fields {
			header = append(header, fieldLabels[f])
		}
		t := table{title: "Detalle de ventas", header: header}
		for _, row := range r.VentasFiltradas {
			line := make([]string, 0, len(params.Fields))
			for _, f := range params.Fields {
				v, _ := row.Column(f)
				line = append(line, v)
			}
			t.rows = append(t.rows, line)
		}
		tables = append(tables, t)
	case len(r.VentasDetalle) > 0:
		t := table{title: "Detalle de ventas", header: []string{"ID", "Usuario", "Fecha", "Total", "Estado"}}
		for _, row := range r.VentasDetalle {
			t.rows = append(t.rows, []string{row.ID, row.Usuario, row.Fecha, money(row.Total), row.Estado})
		}
		tables = append(tables, t)
	}

	if len(r.VentasPorCliente) > 0 {
		t := table{title: "Ventas por cliente", header: []string{"Cliente", "Cantidad", "Total"}}
		clients := make([]string, 0, len(r.VentasPorCliente))
		for c := range r.VentasPorCliente {
			clients = append(clients, c)
		}
		sort.Strings(clients)
		for _, c := range clients {
			b := r.VentasPorCliente[c]
			t.rows = append(t.rows, []string{c, strconv.Itoa(b.Cantidad), money(b.Total)})
		}
		tables = append(tables, t)
	}
	return summary, tables
}

func productsLayout(r *reportdata.ProductsReport) ([][2]string, []table) {
	if r == nil {
		return nil, nil
	}
	summary := [][2]string{
		{"Total de productos", strconv.Itoa(r.TotalProductos)},
		{"Valor del inventario", money(r.ValorInventario)},
	}
	t := table{title: "Productos", header: []string{"Nombre", "Marca", "Categoría", "Precio", "Stock", "Estado"}}
	for _, row := range r.Productos {
		t.rows = append(t.rows, []string{row.Nombre, row.Marca, row.Categoria, money(row.Precio), strconv.Itoa(row.Stock), row.Estado})
	}
	return summary, []table{t}
}

func clientsLayout(r *reportdata.ClientsReport) ([][2]string, []table) {
	if r == nil {
		return nil, nil
	}
	summary := [][2]string{
		{"Total de clientes", strconv.Itoa(r.TotalClientes)},
	}
	t := table{title: "Clientes", header: []string{"Username", "Email", "Compras", "Total comprado", "Registro"}}
	for _, row := range r.Clientes {
		t.rows = append(t.rows, []string{row.Username, row.Email, strconv.Itoa(row.CantidadCompras), money(row.TotalCompras), row.FechaRegistro})
	}
	return summary, []table{t}
}

func inventoryLayout(r *reportdata.InventoryReport) ([][2]string, []table) {
	if r == nil {
		return nil, nil
	}
	summary := [][2]string{
		{"Total de productos", strconv.Itoa(r.TotalProductos)},
		{"Productos bajo stock", strconv.Itoa(r.ProductosBajoStock)},
		{"Productos sin stock", strconv.Itoa(r.ProductosSinStock)},
		{"Valor total del inventario", money(r.ValorTotalInventario)},
	}
	t := table{title: "Productos bajo stock", header: []string{"Nombre", "Stock", "Precio"}}
	for _, row := range r.BajoStockDetalle {
		t.rows = append(t.rows, []string{row.Nombre, strconv.Itoa(row.Stock), money(row.Precio)})
	}
	return summary, []table{t}
}

func financialSummary(r *reportdata.FinancialReport) [][2]string {
	if r == nil {
		return nil
	}
	summary := [][2]string{
		{"Ingresos totales", money(r.IngresosTotales)},
		{"Cantidad de transacciones", strconv.Itoa(r.CantidadTransacciones)},
		{"Ticket promedio", money(r.TicketPromedio)},
	}
	if r.Periodo.FechaInicio != nil && r.Periodo.FechaFin != nil {
		summary = append(summary, [2]string{"Periodo", *r.Periodo.FechaInicio + " a " + *r.Periodo.FechaFin})
	}
	return summary
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
