package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"smartsales365/internal/domain/entities"
	"smartsales365/internal/domain/prompt"
	"smartsales365/internal/domain/reportdata"
	"smartsales365/internal/usecase/interfaces"
	mock_interfaces "smartsales365/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func renderersFor(format prompt.Format, r interfaces.IReportRenderer) map[prompt.Format]interfaces.IReportRenderer {
	return map[prompt.Format]interfaces.IReportRenderer{format: r}
}

func TestReportUseCase_Interpret(t *testing.T) {
	uc := NewReportUseCase(nil, nil, nil, nil, nil, nil)

	t.Run("empty prompt", func(t *testing.T) {
		_, err := uc.Interpret(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidPrompt) {
			t.Fatalf("expected ErrInvalidPrompt, got %v", err)
		}
	})

	t.Run("interprets sales prompt", func(t *testing.T) {
		params, err := uc.Interpret(context.Background(), "Reporte de ventas de marzo 2025 en excel agrupado por cliente")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if params.Type != prompt.ReportVentas {
			t.Fatalf("expected tipo ventas, got %s", params.Type)
		}
		if params.Format != prompt.FormatExcel {
			t.Fatalf("expected formato excel, got %s", params.Format)
		}
		if params.GroupBy != prompt.GroupCliente {
			t.Fatalf("expected agrupacion cliente, got %s", params.GroupBy)
		}
		if params.DateStart.Month() != time.March || params.DateStart.Year() != 2025 {
			t.Fatalf("unexpected start date: %v", params.DateStart)
		}
	})
}

func TestReportUseCase_InterpretPreview(t *testing.T) {
	uc := NewReportUseCase(nil, nil, nil, nil, nil, nil)

	params, confirmation, err := uc.InterpretPreview(context.Background(), "reporte de inventario en pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Type != prompt.ReportInventario {
		t.Fatalf("expected tipo inventario, got %s", params.Type)
	}
	if !strings.Contains(confirmation, "inventario") || !strings.Contains(confirmation, "PDF") {
		t.Fatalf("unexpected confirmation: %q", confirmation)
	}
}

func TestReportUseCase_Generate(t *testing.T) {
	actor := Actor{Username: "admin", IP: "10.0.0.1"}

	t.Run("unsupported type", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.Generate(context.Background(), prompt.Params{Type: "nomina", Format: prompt.FormatJSON}, "", false, actor)
		if !errors.Is(err, ErrUnsupportedReportType) {
			t.Fatalf("expected ErrUnsupportedReportType, got %v", err)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.Generate(context.Background(), prompt.Params{Type: prompt.ReportVentas, Format: "csv"}, "", false, actor)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("format without registered renderer", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.Generate(context.Background(), prompt.Params{Type: prompt.ReportVentas, Format: prompt.FormatPDF}, "", false, actor)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("sales report success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		reports := mock_interfaces.NewMockIReportRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		uc := NewReportUseCase(sales, nil, nil, reports, audit, renderersFor(prompt.FormatJSON, renderer))

		start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		params := prompt.Params{
			Type:        prompt.ReportVentas,
			Format:      prompt.FormatJSON,
			DateStart:   start,
			DateEnd:     end,
			Description: "Reporte de ventas del 01/03/2025 al 31/03/2025 (formato JSON)",
		}

		sales.EXPECT().ListByDateRange(gomock.Any(), start, end).Return([]entities.Sale{
			{ID: "v1", Username: "ana", Date: start.AddDate(0, 0, 3), Total: 120, Status: entities.SaleStatusPagado,
				Items: []entities.SaleItem{{ProductID: "p1", Quantity: 2}}},
			{ID: "v2", Username: "luis", Date: start.AddDate(0, 0, 5), Total: 80, Status: entities.SaleStatusPendiente,
				Items: []entities.SaleItem{{ProductID: "p2", Quantity: 1}}},
		}, nil)

		var rendered reportdata.Dataset
		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ prompt.Params, data reportdata.Dataset) ([]byte, error) {
				rendered = data
				return []byte(`{"ok":true}`), nil
			})
		renderer.EXPECT().ContentType().Return("application/json")
		renderer.EXPECT().FileExtension().Return("json")

		var stored entities.Report
		reports.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Report) (entities.Report, error) {
				stored = r
				return r, nil
			})
		audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		out, err := uc.Generate(context.Background(), params, "ventas de marzo", false, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rendered.Ventas == nil {
			t.Fatal("expected sales dataset handed to renderer")
		}
		if rendered.Ventas.TotalVentas != 120 || rendered.Ventas.CantidadVentas != 1 {
			t.Fatalf("paid-only aggregate mismatch: %+v", rendered.Ventas)
		}
		if rendered.Ventas.ProductosVendidos != 2 {
			t.Fatalf("expected 2 units sold, got %d", rendered.Ventas.ProductosVendidos)
		}
		if len(rendered.Ventas.VentasDetalle) != 2 {
			t.Fatalf("detail must include every status, got %d rows", len(rendered.Ventas.VentasDetalle))
		}
		if rendered.Ventas.VentasDetalle[0].ID != "v2" {
			t.Fatalf("detail must be most recent first, got %s", rendered.Ventas.VentasDetalle[0].ID)
		}
		if out.ContentType != "application/json" {
			t.Fatalf("unexpected content type %q", out.ContentType)
		}
		if !strings.HasPrefix(out.FileName, "reporte_ventas_") || !strings.HasSuffix(out.FileName, ".json") {
			t.Fatalf("unexpected file name %q", out.FileName)
		}
		if stored.GeneratedBy != "admin" || stored.Type != "ventas" {
			t.Fatalf("unexpected stored metadata: %+v", stored)
		}
		if stored.Params["prompt_original"] != "ventas de marzo" {
			t.Fatalf("expected original prompt in params, got %v", stored.Params["prompt_original"])
		}
		if stored.Params["es_voz"] != false {
			t.Fatalf("expected es_voz false, got %v", stored.Params["es_voz"])
		}
	})

	t.Run("voice command marks description and params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		reports := mock_interfaces.NewMockIReportRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		uc := NewReportUseCase(sales, nil, nil, reports, audit, renderersFor(prompt.FormatJSON, renderer))

		sales.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("{}"), nil)
		renderer.EXPECT().ContentType().Return("application/json")
		renderer.EXPECT().FileExtension().Return("json")

		var stored entities.Report
		reports.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Report) (entities.Report, error) {
				stored = r
				return r, nil
			})
		audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		params := prompt.Params{Type: prompt.ReportVentas, Format: prompt.FormatJSON, Description: "Reporte de ventas"}
		_, err := uc.Generate(context.Background(), params, "genera ventas", true, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stored.Description, "(comando de voz)") {
			t.Fatalf("expected voice marker in description, got %q", stored.Description)
		}
		if stored.Params["es_voz"] != true {
			t.Fatalf("expected es_voz true, got %v", stored.Params["es_voz"])
		}
	})

	t.Run("zero paid sales keeps average at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		reports := mock_interfaces.NewMockIReportRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		uc := NewReportUseCase(sales, nil, nil, reports, audit, renderersFor(prompt.FormatJSON, renderer))

		sales.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Sale{
			{ID: "v1", Status: entities.SaleStatusPendiente, Total: 99},
		}, nil)

		var rendered reportdata.Dataset
		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ prompt.Params, data reportdata.Dataset) ([]byte, error) {
				rendered = data
				return []byte("{}"), nil
			})
		renderer.EXPECT().ContentType().Return("application/json")
		renderer.EXPECT().FileExtension().Return("json")
		reports.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Report) (entities.Report, error) { return r, nil })
		audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		params := prompt.Params{Type: prompt.ReportVentas, Format: prompt.FormatJSON}
		if _, err := uc.Generate(context.Background(), params, "", false, actor); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rendered.Ventas.TicketPromedio != 0 {
			t.Fatalf("expected zero average, got %f", rendered.Ventas.TicketPromedio)
		}
	})

	t.Run("assembly failure wraps generation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		uc := NewReportUseCase(sales, nil, nil, nil, nil, renderersFor(prompt.FormatJSON, renderer))

		sales.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("dynamo down"))

		params := prompt.Params{Type: prompt.ReportVentas, Format: prompt.FormatJSON}
		_, err := uc.Generate(context.Background(), params, "", false, actor)
		if !errors.Is(err, ErrReportGeneration) {
			t.Fatalf("expected ErrReportGeneration, got %v", err)
		}
	})

	t.Run("render failure wraps generation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		uc := NewReportUseCase(sales, nil, nil, nil, nil, renderersFor(prompt.FormatPDF, renderer))

		sales.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, errors.New("bad page"))

		params := prompt.Params{Type: prompt.ReportVentas, Format: prompt.FormatPDF}
		_, err := uc.Generate(context.Background(), params, "", false, actor)
		if !errors.Is(err, ErrReportGeneration) {
			t.Fatalf("expected ErrReportGeneration, got %v", err)
		}
	})

	t.Run("inventory report buckets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		reports := mock_interfaces.NewMockIReportRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		uc := NewReportUseCase(nil, products, nil, reports, audit, renderersFor(prompt.FormatJSON, renderer))

		products.EXPECT().ListActive(gomock.Any()).Return([]entities.Product{
			{ID: "p1", Name: "Taladro", Price: 100, Stock: 0, Active: true},
			{ID: "p2", Name: "Sierra", Price: 50, Stock: 4, Active: true},
			{ID: "p3", Name: "Lijadora", Price: 80, Stock: 25, Active: true},
		}, nil)

		var rendered reportdata.Dataset
		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ prompt.Params, data reportdata.Dataset) ([]byte, error) {
				rendered = data
				return []byte("{}"), nil
			})
		renderer.EXPECT().ContentType().Return("application/json")
		renderer.EXPECT().FileExtension().Return("json")
		reports.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Report) (entities.Report, error) { return r, nil })
		audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		params := prompt.Params{Type: prompt.ReportInventario, Format: prompt.FormatJSON}
		if _, err := uc.Generate(context.Background(), params, "", false, actor); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		inv := rendered.Inventario
		if inv == nil {
			t.Fatal("expected inventory dataset")
		}
		if inv.ProductosSinStock != 1 || inv.ProductosBajoStock != 2 {
			t.Fatalf("unexpected buckets: sin=%d bajo=%d", inv.ProductosSinStock, inv.ProductosBajoStock)
		}
		if inv.ValorTotalInventario != 50*4+80*25 {
			t.Fatalf("unexpected inventory value: %f", inv.ValorTotalInventario)
		}
	})

	t.Run("clients report counts paid purchases", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		reports := mock_interfaces.NewMockIReportRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		uc := NewReportUseCase(sales, nil, users, reports, audit, renderersFor(prompt.FormatJSON, renderer))

		users.EXPECT().ListByRole(gomock.Any(), entities.RoleCliente).Return([]entities.User{
			{ID: "u1", Username: "ana", Email: "ana@test.com"},
		}, nil)
		sales.EXPECT().ListByUser(gomock.Any(), "u1").Return([]entities.Sale{
			{ID: "v1", Status: entities.SaleStatusPagado, Total: 100},
			{ID: "v2", Status: entities.SaleStatusCancelado, Total: 30},
		}, nil)

		var rendered reportdata.Dataset
		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ prompt.Params, data reportdata.Dataset) ([]byte, error) {
				rendered = data
				return []byte("{}"), nil
			})
		renderer.EXPECT().ContentType().Return("application/json")
		renderer.EXPECT().FileExtension().Return("json")
		reports.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Report) (entities.Report, error) { return r, nil })
		audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		params := prompt.Params{Type: prompt.ReportClientes, Format: prompt.FormatJSON}
		if _, err := uc.Generate(context.Background(), params, "", false, actor); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rendered.Clientes == nil || len(rendered.Clientes.Clientes) != 1 {
			t.Fatalf("unexpected clients dataset: %+v", rendered.Clientes)
		}
		row := rendered.Clientes.Clientes[0]
		if row.CantidadCompras != 1 || row.TotalCompras != 100 {
			t.Fatalf("unexpected purchase totals: %+v", row)
		}
	})
}

func TestReportUseCase_Delete(t *testing.T) {
	actor := Actor{Username: "admin"}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil, nil, nil, nil, nil)
		if err := uc.Delete(context.Background(), "  ", actor); !errors.Is(err, ErrInvalidReportID) {
			t.Fatalf("expected ErrInvalidReportID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reports := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewReportUseCase(nil, nil, nil, reports, nil, nil)

		reports.EXPECT().GetByID(gomock.Any(), "r-404").Return(entities.Report{}, nil)

		if err := uc.Delete(context.Background(), "r-404", actor); !errors.Is(err, ErrReportNotFound) {
			t.Fatalf("expected ErrReportNotFound, got %v", err)
		}
	})

	t.Run("delete success writes audit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reports := mock_interfaces.NewMockIReportRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		uc := NewReportUseCase(nil, nil, nil, reports, audit, nil)

		reports.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Report{ID: "r-1", Type: "ventas"}, nil)
		reports.EXPECT().Delete(gomock.Any(), "r-1").Return(nil)
		audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		if err := uc.Delete(context.Background(), "r-1", actor); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTruncateDescription(t *testing.T) {
	long := strings.Repeat("a", 150)
	got := truncateDescription(long)
	if len([]rune(got)) != descriptionLimit {
		t.Fatalf("expected %d runes, got %d", descriptionLimit, len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got[len(got)-5:])
	}
	short := "Reporte de ventas"
	if truncateDescription(short) != short {
		t.Fatal("short descriptions must pass through unchanged")
	}
}
