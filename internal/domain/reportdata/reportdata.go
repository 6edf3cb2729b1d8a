// Package reportdata holds the assembled datasets behind each report type and
// the post-processing filters (grouping, column projection) applied to them
// before rendering. Shapes mirror the exported JSON one to one.
package reportdata

import (
	"encoding/json"

	"smartsales365/internal/domain/prompt"
)

// SaleRow is one line of the sales detail section.
type SaleRow struct {
	ID      string  `json:"id"`
	Usuario string  `json:"usuario"`
	Fecha   string  `json:"fecha"`
	Total   float64 `json:"total"`
	Estado  string  `json:"estado"`
}

// ClientBucket accumulates one buyer's sales when grouping by client.
type ClientBucket struct {
	Total    float64   `json:"total"`
	Cantidad int       `json:"cantidad"`
	Ventas   []SaleRow `json:"ventas"`
}

// ProjectedRow is a detail row reduced to the requested columns. Pointer
// fields stay absent when the row carries no value for them.
type ProjectedRow struct {
	Cliente         *string  `json:"cliente,omitempty"`
	CantidadCompras *int     `json:"cantidad_compras,omitempty"`
	MontoTotal      *float64 `json:"monto_total,omitempty"`
	Fecha           *string  `json:"fecha,omitempty"`
	Producto        *string  `json:"producto,omitempty"`
}

// SalesReport is the dataset behind tipo=ventas. Aggregates only count paid
// sales; the detail list carries the most recent sales of any status inside
// the range, capped at DetailCap rows.
type SalesReport struct {
	TotalVentas       float64                  `json:"total_ventas"`
	CantidadVentas    int                      `json:"cantidad_ventas"`
	TicketPromedio    float64                  `json:"ticket_promedio"`
	ProductosVendidos int                      `json:"productos_vendidos"`
	VentasDetalle     []SaleRow                `json:"ventas_detalle,omitempty"`
	VentasPorCliente  map[string]*ClientBucket `json:"ventas_por_cliente,omitempty"`
	// Serialized under "ventas_detalle" in place of the full rows, see
	// MarshalJSON.
	VentasFiltradas []ProjectedRow `json:"-"`
}

// MarshalJSON keeps a single "ventas_detalle" key in the exported JSON: when a
// field projection ran, the projected rows take the place of the full rows.
func (r SalesReport) MarshalJSON() ([]byte, error) {
	if r.VentasFiltradas == nil {
		type salesReport SalesReport
		return json.Marshal(salesReport(r))
	}
	return json.Marshal(struct {
		TotalVentas       float64                  `json:"total_ventas"`
		CantidadVentas    int                      `json:"cantidad_ventas"`
		TicketPromedio    float64                  `json:"ticket_promedio"`
		ProductosVendidos int                      `json:"productos_vendidos"`
		VentasDetalle     []ProjectedRow           `json:"ventas_detalle"`
		VentasPorCliente  map[string]*ClientBucket `json:"ventas_por_cliente,omitempty"`
	}{
		TotalVentas:       r.TotalVentas,
		CantidadVentas:    r.CantidadVentas,
		TicketPromedio:    r.TicketPromedio,
		ProductosVendidos: r.ProductosVendidos,
		VentasDetalle:     r.VentasFiltradas,
		VentasPorCliente:  r.VentasPorCliente,
	})
}

// DetailCap bounds the detail section of a sales report.
const DetailCap = 50

type ProductRow struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Marca     string  `json:"marca"`
	Categoria string  `json:"categoria"`
	Precio    float64 `json:"precio"`
	Stock     int     `json:"stock"`
	Estado    string  `json:"estado"`
}

type ProductsReport struct {
	TotalProductos  int          `json:"total_productos"`
	ValorInventario float64      `json:"valor_inventario"`
	Productos       []ProductRow `json:"productos"`
}

type ClientRow struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	CantidadCompras int     `json:"cantidad_compras"`
	TotalCompras    float64 `json:"total_compras"`
	FechaRegistro   string  `json:"fecha_registro"`
}

type ClientsReport struct {
	TotalClientes int         `json:"total_clientes"`
	Clientes      []ClientRow `json:"clientes"`
}

type LowStockRow struct {
	Nombre string  `json:"nombre"`
	Stock  int     `json:"stock"`
	Precio float64 `json:"precio"`
}

type InventoryReport struct {
	TotalProductos       int           `json:"total_productos"`
	ProductosBajoStock   int           `json:"productos_bajo_stock"`
	ProductosSinStock    int           `json:"productos_sin_stock"`
	ValorTotalInventario float64       `json:"valor_total_inventario"`
	BajoStockDetalle     []LowStockRow `json:"productos_bajo_stock_detalle"`
}

type Period struct {
	FechaInicio *string `json:"fecha_inicio"`
	FechaFin    *string `json:"fecha_fin"`
}

type FinancialReport struct {
	IngresosTotales       float64 `json:"ingresos_totales"`
	CantidadTransacciones int     `json:"cantidad_transacciones"`
	TicketPromedio        float64 `json:"ticket_promedio"`
	Periodo               Period  `json:"periodo"`
}

// Dataset is the union handed to the renderers: exactly one branch is set,
// according to Tipo.
type Dataset struct {
	Tipo       prompt.ReportType
	Ventas     *SalesReport
	Productos  *ProductsReport
	Clientes   *ClientsReport
	Inventario *InventoryReport
	Financiero *FinancialReport
}

// Payload returns the branch that will be serialized.
func (d Dataset) Payload() any {
	switch d.Tipo {
	case prompt.ReportProductos:
		return d.Productos
	case prompt.ReportClientes:
		return d.Clientes
	case prompt.ReportInventario:
		return d.Inventario
	case prompt.ReportFinanciero:
		return d.Financiero
	default:
		return d.Ventas
	}
}
