package reportdata

import (
	"strconv"

	"smartsales365/internal/domain/prompt"
)

// ApplyGrouping re-buckets the sales detail list by the requested dimension.
// Only the client dimension performs a transformation today: the detail list
// is preserved and a per-buyer view is added alongside it. Every other
// recognized dimension passes through unchanged, matching the shipped
// behavior of the report engine.
func ApplyGrouping(r *SalesReport, groupBy prompt.GroupBy) {
	if r == nil || groupBy != prompt.GroupCliente {
		return
	}

	grupos := make(map[string]*ClientBucket)
	for _, venta := range r.VentasDetalle {
		bucket, ok := grupos[venta.Usuario]
		if !ok {
			bucket = &ClientBucket{}
			grupos[venta.Usuario] = bucket
		}
		bucket.Total += venta.Total
		bucket.Cantidad++
		bucket.Ventas = append(bucket.Ventas, venta)
	}
	r.VentasPorCliente = grupos
}

// ApplyFieldProjection reshapes every detail row to the requested columns, in
// the requested order (the field list travels with the parameters so the
// tabular renderers emit columns in that same order). The full detail list is
// replaced by the projected view. Rows never error out: a column the row
// cannot provide is simply absent.
func ApplyFieldProjection(r *SalesReport, fields []prompt.Field) {
	if r == nil || len(fields) == 0 {
		return
	}

	projected := make([]ProjectedRow, 0, len(r.VentasDetalle))
	for _, venta := range r.VentasDetalle {
		var row ProjectedRow
		for _, f := range fields {
			switch f {
			case prompt.FieldNombreCliente:
				v := venta.Usuario
				row.Cliente = &v
			case prompt.FieldCantidadCompras:
				// Each detail row is one purchase.
				n := 1
				row.CantidadCompras = &n
			case prompt.FieldMontoTotal:
				v := venta.Total
				row.MontoTotal = &v
			case prompt.FieldFechas:
				v := venta.Fecha
				row.Fecha = &v
			case prompt.FieldProducto:
				// Detail rows are sale-level; there is no single product.
				v := "N/A"
				row.Producto = &v
			}
		}
		projected = append(projected, row)
	}

	r.VentasFiltradas = projected
	r.VentasDetalle = nil
}

// Column returns the cell value of a projected row for one canonical field,
// with ok=false when the row has no value for it.
func (p ProjectedRow) Column(f prompt.Field) (string, bool) {
	switch f {
	case prompt.FieldNombreCliente:
		if p.Cliente != nil {
			return *p.Cliente, true
		}
	case prompt.FieldCantidadCompras:
		if p.CantidadCompras != nil {
			return itoa(*p.CantidadCompras), true
		}
	case prompt.FieldMontoTotal:
		if p.MontoTotal != nil {
			return ftoa(*p.MontoTotal), true
		}
	case prompt.FieldFechas:
		if p.Fecha != nil {
			return *p.Fecha, true
		}
	case prompt.FieldProducto:
		if p.Producto != nil {
			return *p.Producto, true
		}
	}
	return "", false
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
