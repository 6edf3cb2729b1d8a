package reportdata

import (
	"encoding/json"
	"testing"

	"smartsales365/internal/domain/prompt"
)

func sampleSales() *SalesReport {
	return &SalesReport{
		TotalVentas:    350,
		CantidadVentas: 3,
		VentasDetalle: []SaleRow{
			{ID: "v-1", Usuario: "ana", Fecha: "01/09/2025 10:00", Total: 100, Estado: "Pagado"},
			{ID: "v-2", Usuario: "luis", Fecha: "02/09/2025 11:30", Total: 50, Estado: "Pagado"},
			{ID: "v-3", Usuario: "ana", Fecha: "03/09/2025 16:45", Total: 200, Estado: "Pendiente"},
		},
	}
}

func TestApplyGrouping_ByClient(t *testing.T) {
	r := sampleSales()
	ApplyGrouping(r, prompt.GroupCliente)

	if len(r.VentasPorCliente) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(r.VentasPorCliente))
	}
	ana := r.VentasPorCliente["ana"]
	if ana == nil || ana.Cantidad != 2 || ana.Total != 300 {
		t.Errorf("ana bucket = %+v, want cantidad 2 total 300", ana)
	}
	luis := r.VentasPorCliente["luis"]
	if luis == nil || luis.Cantidad != 1 || luis.Total != 50 {
		t.Errorf("luis bucket = %+v, want cantidad 1 total 50", luis)
	}
	if len(r.VentasDetalle) != 3 {
		t.Errorf("detail list must be preserved, got %d rows", len(r.VentasDetalle))
	}
}

func TestApplyGrouping_OtherDimensionsPassThrough(t *testing.T) {
	for _, g := range []prompt.GroupBy{prompt.GroupProducto, prompt.GroupCategoria, prompt.GroupMarca, prompt.GroupDia, prompt.GroupNone} {
		r := sampleSales()
		ApplyGrouping(r, g)
		if r.VentasPorCliente != nil {
			t.Errorf("group by %q: expected pass-through, got buckets", g)
		}
		if len(r.VentasDetalle) != 3 {
			t.Errorf("group by %q: detail list changed", g)
		}
	}
}

func TestApplyFieldProjection(t *testing.T) {
	r := sampleSales()
	fields := []prompt.Field{prompt.FieldNombreCliente, prompt.FieldMontoTotal, prompt.FieldProducto}
	ApplyFieldProjection(r, fields)

	if r.VentasDetalle != nil {
		t.Errorf("full detail must be replaced by the projection")
	}
	if len(r.VentasFiltradas) != 3 {
		t.Fatalf("expected 3 projected rows, got %d", len(r.VentasFiltradas))
	}
	first := r.VentasFiltradas[0]
	if first.Cliente == nil || *first.Cliente != "ana" {
		t.Errorf("cliente = %v", first.Cliente)
	}
	if first.MontoTotal == nil || *first.MontoTotal != 100 {
		t.Errorf("monto_total = %v", first.MontoTotal)
	}
	if first.Producto == nil || *first.Producto != "N/A" {
		t.Errorf("producto = %v, want N/A placeholder", first.Producto)
	}
	if first.Fecha != nil || first.CantidadCompras != nil {
		t.Errorf("columns not requested must stay absent")
	}
}

func TestApplyFieldProjection_NoFieldsIsNoop(t *testing.T) {
	r := sampleSales()
	ApplyFieldProjection(r, nil)
	if len(r.VentasDetalle) != 3 || r.VentasFiltradas != nil {
		t.Errorf("projection without fields must not touch the dataset")
	}
}

func TestSalesReportJSON_ProjectionReplacesDetailInPlace(t *testing.T) {
	r := sampleSales()
	ApplyFieldProjection(r, []prompt.Field{prompt.FieldNombreCliente, prompt.FieldMontoTotal})

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]json.RawMessage
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got["ventas_filtradas"]; ok {
		t.Errorf("projected rows must reuse the ventas_detalle key, not add one")
	}
	var rows []map[string]any
	if err := json.Unmarshal(got["ventas_detalle"], &rows); err != nil {
		t.Fatalf("ventas_detalle not a row list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 projected rows, got %d", len(rows))
	}
	if rows[0]["cliente"] != "ana" || rows[0]["monto_total"] != 100.0 {
		t.Errorf("unexpected first row: %v", rows[0])
	}
	if _, ok := rows[0]["id"]; ok {
		t.Errorf("columns not requested must stay absent")
	}
}

func TestSalesReportJSON_UnprojectedKeepsFullRows(t *testing.T) {
	b, err := json.Marshal(sampleSales())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]json.RawMessage
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rows []SaleRow
	if err := json.Unmarshal(got["ventas_detalle"], &rows); err != nil {
		t.Fatalf("ventas_detalle not a row list: %v", err)
	}
	if len(rows) != 3 || rows[0].ID != "v-1" {
		t.Fatalf("unexpected detail rows: %+v", rows)
	}
}

func TestProjectedRow_Column(t *testing.T) {
	r := sampleSales()
	ApplyFieldProjection(r, []prompt.Field{prompt.FieldCantidadCompras, prompt.FieldMontoTotal})

	row := r.VentasFiltradas[1]
	if v, ok := row.Column(prompt.FieldCantidadCompras); !ok || v != "1" {
		t.Errorf("cantidad_compras cell = %q ok=%v", v, ok)
	}
	if v, ok := row.Column(prompt.FieldMontoTotal); !ok || v != "50.00" {
		t.Errorf("monto_total cell = %q ok=%v", v, ok)
	}
	if _, ok := row.Column(prompt.FieldFechas); ok {
		t.Errorf("absent column must report ok=false")
	}
}
