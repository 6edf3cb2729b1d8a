package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartsales365/internal/domain/entities"
	"smartsales365/internal/domain/prompt"
	"smartsales365/internal/domain/reportdata"
	"smartsales365/internal/usecase/interfaces"
)

var (
	ErrInvalidPrompt         = errors.New("no prompt provided")
	ErrUnsupportedReportType = errors.New("unsupported report type")
	ErrUnsupportedFormat     = errors.New("unsupported report format")
	ErrReportNotFound        = errors.New("report not found")
	ErrInvalidReportID       = errors.New("invalid report id")
	// ErrReportGeneration wraps any assembly or rendering failure. The caller
	// gets one generic failure with the cause attached, never a partial
	// report.
	ErrReportGeneration = errors.New("report generation failed")
)

// descriptionLimit bounds the persisted report description.
const descriptionLimit = 100

// Actor is the requesting identity attached to audit entries and report
// history records.
type Actor struct {
	Username string
	IP       string
}

// GeneratedReport is the outcome of one report generation: the persisted
// metadata record plus the rendered artifact.
type GeneratedReport struct {
	Report      entities.Report
	Params      prompt.Params
	Artifact    []byte
	ContentType string
	FileName    string
}

// IReportUseCase exposes the prompt-to-report pipeline.
//
// Operations map to the HTTP surface:
//   - POST /reportes/interpretar-prompt  => InterpretPreview()
//   - POST /reportes/generar-dinamico    => GenerateFromPrompt()
//   - POST /reportes/generar-por-voz     => GenerateFromPrompt(voice=true)
//   - POST /reportes/generar             => Generate() with explicit params
//   - GET  /reportes/historial           => History()

type IReportUseCase interface {
	Interpret(ctx context.Context, promptText string) (prompt.Params, error)
	InterpretPreview(ctx context.Context, promptText string) (prompt.Params, string, error)
	GenerateFromPrompt(ctx context.Context, promptText string, voice bool, actor Actor) (GeneratedReport, error)
	Generate(ctx context.Context, params prompt.Params, promptText string, voice bool, actor Actor) (GeneratedReport, error)
	History(ctx context.Context, actor Actor) ([]entities.Report, error)
	GetByID(ctx context.Context, id string) (entities.Report, error)
	Delete(ctx context.Context, id string, actor Actor) error
}

type ReportUseCase struct {
	sales     interfaces.ISaleRepository
	products  interfaces.IProductRepository
	users     interfaces.IUserRepository
	reports   interfaces.IReportRepository
	audit     interfaces.IAuditRepository
	renderers map[prompt.Format]interfaces.IReportRenderer
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	sales interfaces.ISaleRepository,
	products interfaces.IProductRepository,
	users interfaces.IUserRepository,
	reports interfaces.IReportRepository,
	audit interfaces.IAuditRepository,
	renderers map[prompt.Format]interfaces.IReportRenderer,
) *ReportUseCase {
	return &ReportUseCase{
		sales:     sales,
		products:  products,
		users:     users,
		reports:   reports,
		audit:     audit,
		renderers: renderers,
	}
}

func (u *ReportUseCase) Interpret(_ context.Context, promptText string) (prompt.Params, error) {
	params, err := prompt.Interpret(promptText)
	if err != nil {
		if errors.Is(err, prompt.ErrEmptyPrompt) {
			return prompt.Params{}, ErrInvalidPrompt
		}
		return prompt.Params{}, err
	}
	return params, nil
}

func (u *ReportUseCase) InterpretPreview(ctx context.Context, promptText string) (prompt.Params, string, error) {
	params, err := u.Interpret(ctx, promptText)
	if err != nil {
		return prompt.Params{}, "", err
	}
	return params, params.Confirmation(), nil
}

func (u *ReportUseCase) GenerateFromPrompt(ctx context.Context, promptText string, voice bool, actor Actor) (GeneratedReport, error) {
	params, err := u.Interpret(ctx, promptText)
	if err != nil {
		return GeneratedReport{}, err
	}
	return u.Generate(ctx, params, promptText, voice, actor)
}

// Generate assembles, filters, renders and records one report. Extraction
// problems never reach this point (the interpreter defaults them away);
// everything that fails here wraps into ErrReportGeneration except the two
// programmatic client errors for forced out-of-enum parameters.
func (u *ReportUseCase) Generate(ctx context.Context, params prompt.Params, promptText string, voice bool, actor Actor) (GeneratedReport, error) {
	if !params.Type.Valid() {
		return GeneratedReport{}, ErrUnsupportedReportType
	}
	if !params.Format.Valid() {
		return GeneratedReport{}, ErrUnsupportedFormat
	}
	renderer, ok := u.renderers[params.Format]
	if !ok {
		return GeneratedReport{}, ErrUnsupportedFormat
	}
	log.Printf("[report][usecase] generate start tipo=%s formato=%s usuario=%s", params.Type, params.Format, actor.Username)

	data, err := u.assemble(ctx, params)
	if err != nil {
		log.Printf("[report][usecase] assemble failed tipo=%s err=%v", params.Type, err)
		return GeneratedReport{}, fmt.Errorf("%w: %v", ErrReportGeneration, err)
	}

	if params.Type == prompt.ReportVentas && data.Ventas != nil {
		reportdata.ApplyGrouping(data.Ventas, params.GroupBy)
		reportdata.ApplyFieldProjection(data.Ventas, params.Fields)
	}

	artifact, err := renderer.Render(params, data)
	if err != nil {
		log.Printf("[report][usecase] render failed tipo=%s formato=%s err=%v", params.Type, params.Format, err)
		return GeneratedReport{}, fmt.Errorf("%w: %v", ErrReportGeneration, err)
	}

	now := time.Now().UTC()
	fileName := fmt.Sprintf("reporte_%s_%s.%s", params.Type, now.Format("20060102_150405"), renderer.FileExtension())

	description := params.Description
	if description == "" {
		description = fmt.Sprintf("Reporte de %s", params.Type)
	}
	if voice {
		description += " (comando de voz)"
	}
	description = truncateDescription(description)

	storedParams := params.Serializable()
	storedParams["prompt_original"] = promptText
	storedParams["es_voz"] = voice

	start, end := params.DateStart, params.DateEnd
	record := entities.Report{
		ID:          uuid.NewString(),
		Type:        string(params.Type),
		Format:      string(params.Format),
		Description: description,
		GeneratedBy: actor.Username,
		Params:      storedParams,
		GeneratedAt: now,
		FileName:    fileName,
	}
	if !start.IsZero() && !end.IsZero() {
		record.DateStart, record.DateEnd = &start, &end
	}

	created, err := u.reports.Create(ctx, record)
	if err != nil {
		log.Printf("[report][usecase] history create failed tipo=%s err=%v", params.Type, err)
		return GeneratedReport{}, fmt.Errorf("%w: %v", ErrReportGeneration, err)
	}

	method := "prompt de texto"
	if voice {
		method = "comando de voz"
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Generó reporte dinámico de %s mediante %s: '%s'", params.Type, method, clip(promptText, 50)))

	log.Printf("[report][usecase] generate success tipo=%s formato=%s reporte_id=%s bytes=%d", params.Type, params.Format, created.ID, len(artifact))
	return GeneratedReport{
		Report:      created,
		Params:      params,
		Artifact:    artifact,
		ContentType: renderer.ContentType(),
		FileName:    fileName,
	}, nil
}

func (u *ReportUseCase) History(ctx context.Context, actor Actor) ([]entities.Report, error) {
	return u.reports.ListByUser(ctx, actor.Username)
}

func (u *ReportUseCase) GetByID(ctx context.Context, id string) (entities.Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Report{}, ErrInvalidReportID
	}
	r, err := u.reports.GetByID(ctx, id)
	if err != nil {
		return entities.Report{}, err
	}
	if r.ID == "" {
		return entities.Report{}, ErrReportNotFound
	}
	return r, nil
}

func (u *ReportUseCase) Delete(ctx context.Context, id string, actor Actor) error {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.reports.Delete(ctx, r.ID); err != nil {
		return err
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Eliminó reporte ID %s de tipo %s", r.ID, r.Type))
	return nil
}

// assemble builds the dataset for the interpreted report type, restricted to
// the resolved date interval where the type supports one.
func (u *ReportUseCase) assemble(ctx context.Context, params prompt.Params) (reportdata.Dataset, error) {
	ds := reportdata.Dataset{Tipo: params.Type}
	var err error
	switch params.Type {
	case prompt.ReportVentas:
		ds.Ventas, err = u.assembleSales(ctx, params.DateStart, params.DateEnd)
	case prompt.ReportProductos:
		ds.Productos, err = u.assembleProducts(ctx)
	case prompt.ReportClientes:
		ds.Clientes, err = u.assembleClients(ctx)
	case prompt.ReportInventario:
		ds.Inventario, err = u.assembleInventory(ctx)
	case prompt.ReportFinanciero:
		ds.Financiero, err = u.assembleFinancial(ctx, params.DateStart, params.DateEnd)
	default:
		err = ErrUnsupportedReportType
	}
	return ds, err
}

func (u *ReportUseCase) assembleSales(ctx context.Context, start, end time.Time) (*reportdata.SalesReport, error) {
	sales, err := u.sales.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &reportdata.SalesReport{}
	for _, s := range sales {
		if s.Status != entities.SaleStatusPagado {
			continue
		}
		report.TotalVentas += s.Total
		report.CantidadVentas++
		report.ProductosVendidos += s.UnitsSold()
	}
	// Zero paid sales must yield an average of zero, not a division error.
	if report.CantidadVentas > 0 {
		report.TicketPromedio = report.TotalVentas / float64(report.CantidadVentas)
	}

	sort.Slice(sales, func(i, j int) bool { return sales[i].Date.After(sales[j].Date) })
	for _, s := range sales {
		if len(report.VentasDetalle) == reportdata.DetailCap {
			break
		}
		report.VentasDetalle = append(report.VentasDetalle, reportdata.SaleRow{
			ID:      s.ID,
			Usuario: s.Username,
			Fecha:   s.Date.Format("02/01/2006 15:04"),
			Total:   s.Total,
			Estado:  s.Status.Label(),
		})
	}
	return report, nil
}

func (u *ReportUseCase) assembleProducts(ctx context.Context) (*reportdata.ProductsReport, error) {
	products, err := u.products.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	report := &reportdata.ProductsReport{TotalProductos: len(products)}
	for _, p := range products {
		report.ValorInventario += p.Price * float64(p.Stock)
		estado := "Activo"
		if !p.Active {
			estado = "Inactivo"
		}
		report.Productos = append(report.Productos, reportdata.ProductRow{
			ID:        p.ID,
			Nombre:    p.Name,
			Marca:     p.BrandName,
			Categoria: p.CategoryName,
			Precio:    p.Price,
			Stock:     p.Stock,
			Estado:    estado,
		})
	}
	return report, nil
}

func (u *ReportUseCase) assembleClients(ctx context.Context) (*reportdata.ClientsReport, error) {
	clients, err := u.users.ListByRole(ctx, entities.RoleCliente)
	if err != nil {
		return nil, err
	}

	report := &reportdata.ClientsReport{TotalClientes: len(clients)}
	for _, c := range clients {
		sales, err := u.sales.ListByUser(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		row := reportdata.ClientRow{
			ID:            c.ID,
			Username:      c.Username,
			Email:         c.Email,
			FechaRegistro: c.RegisteredAt.Format("02/01/2006"),
		}
		for _, s := range sales {
			if s.Status != entities.SaleStatusPagado {
				continue
			}
			row.CantidadCompras++
			row.TotalCompras += s.Total
		}
		report.Clientes = append(report.Clientes, row)
	}
	return report, nil
}

func (u *ReportUseCase) assembleInventory(ctx context.Context) (*reportdata.InventoryReport, error) {
	products, err := u.products.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	report := &reportdata.InventoryReport{TotalProductos: len(products)}
	for _, p := range products {
		report.ValorTotalInventario += p.Price * float64(p.Stock)
		if p.Stock == 0 {
			report.ProductosSinStock++
		}
		if p.Stock < entities.LowStockThreshold {
			report.ProductosBajoStock++
			report.BajoStockDetalle = append(report.BajoStockDetalle, reportdata.LowStockRow{
				Nombre: p.Name,
				Stock:  p.Stock,
				Precio: p.Price,
			})
		}
	}
	return report, nil
}

func (u *ReportUseCase) assembleFinancial(ctx context.Context, start, end time.Time) (*reportdata.FinancialReport, error) {
	sales, err := u.sales.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &reportdata.FinancialReport{}
	for _, s := range sales {
		if s.Status != entities.SaleStatusPagado {
			continue
		}
		report.IngresosTotales += s.Total
		report.CantidadTransacciones++
	}
	if report.CantidadTransacciones > 0 {
		report.TicketPromedio = report.IngresosTotales / float64(report.CantidadTransacciones)
	}
	if !start.IsZero() {
		v := start.Format("2006-01-02")
		report.Periodo.FechaInicio = &v
	}
	if !end.IsZero() {
		v := end.Format("2006-01-02")
		report.Periodo.FechaFin = &v
	}
	return report, nil
}

func (u *ReportUseCase) logAudit(ctx context.Context, actor Actor, action string) {
	if u.audit == nil {
		return
	}
	entry := entities.AuditEntry{
		ID:       uuid.NewString(),
		Username: actor.Username,
		Action:   action,
		IP:       actor.IP,
		Date:     time.Now().UTC(),
		Success:  true,
	}
	if err := u.audit.Create(ctx, entry); err != nil {
		log.Printf("[report][usecase] audit write failed usuario=%s err=%v", actor.Username, err)
	}
}

func truncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= descriptionLimit {
		return s
	}
	return string(runes[:descriptionLimit-3]) + "..."
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
