package request

import "smartsales365/internal/domain/entities"

// MaintenanceRequest registers a service request for a sold product.
type MaintenanceRequest struct {
	ProductID string `json:"producto_id"`
	SaleID    string `json:"venta_id"`
	Type      string `json:"tipo_mantenimiento"`
	Details   string `json:"detalles"`
}

func (r MaintenanceRequest) ToEntity() entities.Maintenance {
	return entities.Maintenance{
		ProductID: r.ProductID,
		SaleID:    r.SaleID,
		Type:      entities.MaintenanceType(r.Type),
		Details:   r.Details,
	}
}

// MaintenanceAssignRequest puts a technician on a request.
type MaintenanceAssignRequest struct {
	TechnicianID string `json:"tecnico_id"`
}

// MaintenanceCompleteRequest closes a request.
type MaintenanceCompleteRequest struct {
	Details string `json:"detalles"`
}
