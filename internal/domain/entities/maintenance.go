package entities

import "time"

// MaintenanceType distinguishes scheduled service from repairs.

type MaintenanceType string

const (
	MaintenancePreventivo MaintenanceType = "preventivo"
	MaintenanceCorrectivo MaintenanceType = "correctivo"
)

// MaintenanceStatus follows the service request lifecycle.

type MaintenanceStatus string

const (
	MaintenanceStatusPendiente  MaintenanceStatus = "pendiente"
	MaintenanceStatusEnProceso  MaintenanceStatus = "en_proceso"
	MaintenanceStatusCompletado MaintenanceStatus = "completado"
)

// Maintenance (mantenimiento) is a service request for a sold product,
// optionally assigned to a technician.
//
// Storage model (DynamoDB):
//   - PK: id
type Maintenance struct {
	ID           string            `json:"id"`
	ProductID    string            `json:"producto_id"`
	SaleID       string            `json:"venta_id"`
	TechnicianID string            `json:"tecnico_id,omitempty"`
	RequestedAt  time.Time         `json:"fecha_solicitud"`
	PerformedAt  *time.Time        `json:"fecha_realizacion,omitempty"`
	Type         MaintenanceType   `json:"tipo_mantenimiento"`
	Status       MaintenanceStatus `json:"estado"`
	Details      string            `json:"detalles"`
}
