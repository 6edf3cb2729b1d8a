package render

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"smartsales365/internal/domain/prompt"
	"smartsales365/internal/domain/reportdata"
)

func sampleParams() prompt.Params {
	return prompt.Params{
		Type:        prompt.ReportVentas,
		Format:      prompt.FormatPDF,
		DateStart:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DateEnd:     time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Description: "Reporte de ventas del 01/03/2025 al 31/03/2025 (formato PDF)",
	}
}

func sampleSalesDataset() reportdata.Dataset {
	return reportdata.Dataset{
		Tipo: prompt.ReportVentas,
		Ventas: &reportdata.SalesReport{
			TotalVentas:       300,
			CantidadVentas:    2,
			TicketPromedio:    150,
			ProductosVendidos: 3,
			VentasDetalle: []reportdata.SaleRow{
				{ID: "v1", Usuario: "ana", Fecha: "05/03/2025 10:00", Total: 100, Estado: "Pagado"},
				{ID: "v2", Usuario: "luis", Fecha: "09/03/2025 16:30", Total: 200, Estado: "Pagado"},
			},
		},
	}
}

func TestRenderers_Registry(t *testing.T) {
	reg := Renderers()
	for _, format := range []prompt.Format{prompt.FormatPDF, prompt.FormatExcel, prompt.FormatJSON} {
		if _, ok := reg[format]; !ok {
			t.Fatalf("missing renderer for %s", format)
		}
	}
}

func TestJSONRenderer(t *testing.T) {
	r := NewJSONRenderer()
	out, err := r.Render(sampleParams(), sampleSalesDataset())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	datos, ok := doc["datos"].(map[string]any)
	if !ok {
		t.Fatalf("missing datos section: %v", doc)
	}
	if datos["total_ventas"] != 300.0 {
		t.Fatalf("unexpected total_ventas: %v", datos["total_ventas"])
	}
	if doc["descripcion"] == "" {
		t.Fatal("expected descripcion in document")
	}
	if r.ContentType() != "application/json" || r.FileExtension() != "json" {
		t.Fatalf("unexpected metadata: %s %s", r.ContentType(), r.FileExtension())
	}
}

func TestPDFRenderer(t *testing.T) {
	r := NewPDFRenderer()
	out, err := r.Render(sampleParams(), sampleSalesDataset())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a pdf, starts with %q", out[:8])
	}
	if r.ContentType() != "application/pdf" || r.FileExtension() != "pdf" {
		t.Fatalf("unexpected metadata: %s %s", r.ContentType(), r.FileExtension())
	}
}

func TestPDFRenderer_InventoryDataset(t *testing.T) {
	params := sampleParams()
	params.Type = prompt.ReportInventario
	data := reportdata.Dataset{
		Tipo: prompt.ReportInventario,
		Inventario: &reportdata.InventoryReport{
			TotalProductos:       3,
			ProductosBajoStock:   2,
			ProductosSinStock:    1,
			ValorTotalInventario: 2200,
			BajoStockDetalle: []reportdata.LowStockRow{
				{Nombre: "Taladro", Stock: 0, Precio: 100},
				{Nombre: "Sierra", Stock: 4, Precio: 50},
			},
		},
	}

	out, err := NewPDFRenderer().Render(params, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("output is not a pdf")
	}
}

func TestExcelRenderer(t *testing.T) {
	r := NewExcelRenderer()
	out, err := r.Render(sampleParams(), sampleSalesDataset())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a workbook: %v", err)
	}
	defer f.Close()

	title, err := f.GetCellValue(excelSheet, "A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "Reporte de ventas" {
		t.Fatalf("unexpected title cell: %q", title)
	}
	if r.FileExtension() != "xlsx" {
		t.Fatalf("unexpected extension %s", r.FileExtension())
	}
}

func TestBuildLayout_ProjectedColumns(t *testing.T) {
	params := sampleParams()
	params.Fields = []prompt.Field{prompt.FieldNombreCliente, prompt.FieldMontoTotal}

	cliente := "ana"
	monto := 100.0
	data := sampleSalesDataset()
	data.Ventas.VentasDetalle = nil
	data.Ventas.VentasFiltradas = []reportdata.ProjectedRow{
		{Cliente: &cliente, MontoTotal: &monto},
	}

	l := buildLayout(params, data)
	if len(l.tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(l.tables))
	}
	tbl := l.tables[0]
	if len(tbl.header) != 2 || tbl.header[0] != "Cliente" || tbl.header[1] != "Monto total" {
		t.Fatalf("unexpected header: %v", tbl.header)
	}
	if tbl.rows[0][0] != "ana" || tbl.rows[0][1] != "100.00" {
		t.Fatalf("unexpected row: %v", tbl.rows[0])
	}
}

func TestBuildLayout_GroupedClients(t *testing.T) {
	data := sampleSalesDataset()
	data.Ventas.VentasPorCliente = map[string]*reportdata.ClientBucket{
		"luis": {Total: 200, Cantidad: 1},
		"ana":  {Total: 100, Cantidad: 1},
	}

	l := buildLayout(sampleParams(), data)
	var grouped *table
	for i := range l.tables {
		if l.tables[i].title == "Ventas por cliente" {
			grouped = &l.tables[i]
		}
	}
	if grouped == nil {
		t.Fatal("expected grouped clients table")
	}
	if grouped.rows[0][0] != "ana" || grouped.rows[1][0] != "luis" {
		t.Fatalf("expected deterministic client order, got %v", grouped.rows)
	}
}
