package response

import (
	"time"

	"smartsales365/internal/domain/entities"
	"smartsales365/internal/domain/prompt"
)

// ReportPreviewResponse echoes the interpreted parameters of a prompt so the
// client can confirm before generating.
type ReportPreviewResponse struct {
	Params       map[string]any `json:"parametros"`
	Confirmation string         `json:"confirmacion"`
}

func FromParams(p prompt.Params) ReportPreviewResponse {
	return ReportPreviewResponse{
		Params:       p.Serializable(),
		Confirmation: p.Confirmation(),
	}
}

type ReportResponse struct {
	ID          string         `json:"id"`
	Type        string         `json:"tipo"`
	Format      string         `json:"formato"`
	Description string         `json:"descripcion"`
	GeneratedBy string         `json:"generado_por"`
	Params      map[string]any `json:"parametros,omitempty"`
	DateStart   *time.Time     `json:"fecha_inicio,omitempty"`
	DateEnd     *time.Time     `json:"fecha_fin,omitempty"`
	GeneratedAt time.Time      `json:"fecha_generacion"`
	FileName    string         `json:"nombre_archivo,omitempty"`
}

func FromReport(r entities.Report) ReportResponse {
	return ReportResponse{
		ID:          r.ID,
		Type:        r.Type,
		Format:      r.Format,
		Description: r.Description,
		GeneratedBy: r.GeneratedBy,
		Params:      r.Params,
		DateStart:   r.DateStart,
		DateEnd:     r.DateEnd,
		GeneratedAt: r.GeneratedAt,
		FileName:    r.FileName,
	}
}

func FromReports(reports []entities.Report) []ReportResponse {
	out := make([]ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, FromReport(r))
	}
	return out
}
