package response

import (
	"time"

	"smartsales365/internal/domain/entities"
)

type MaintenanceResponse struct {
	ID           string     `json:"id"`
	ProductID    string     `json:"producto_id"`
	SaleID       string     `json:"venta_id"`
	TechnicianID string     `json:"tecnico_id,omitempty"`
	RequestedAt  time.Time  `json:"fecha_solicitud"`
	PerformedAt  *time.Time `json:"fecha_realizacion,omitempty"`
	Type         string     `json:"tipo_mantenimiento"`
	Status       string     `json:"estado"`
	Details      string     `json:"detalles,omitempty"`
}

func FromMaintenance(m entities.Maintenance) MaintenanceResponse {
	return MaintenanceResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		SaleID:       m.SaleID,
		TechnicianID: m.TechnicianID,
		RequestedAt:  m.RequestedAt,
		PerformedAt:  m.PerformedAt,
		Type:         string(m.Type),
		Status:       string(m.Status),
		Details:      m.Details,
	}
}

func FromMaintenances(ms []entities.Maintenance) []MaintenanceResponse {
	out := make([]MaintenanceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMaintenance(m))
	}
	return out
}
