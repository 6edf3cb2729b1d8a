package entities

import "time"

// Report is the persisted metadata of a generated report. The rendered bytes
// are returned to the caller; only this record and the interpreted parameters
// survive as history.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Params keeps the interpreted parameter set plus the original prompt and the
// voice flag, fully serialized (dates as strings) for traceability.
type Report struct {
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
