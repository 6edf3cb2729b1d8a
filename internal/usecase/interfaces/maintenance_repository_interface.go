package interfaces

import (
	"context"

	"smartsales365/internal/domain/entities"
)

// IMaintenanceRepository abstracts DynamoDB persistence for service requests.

type IMaintenanceRepository interface {
	Create(ctx context.Context, maintenance entities.Maintenance) (entities.Maintenance, error)
	GetByID(ctx context.Context, id string) (entities.Maintenance, error)
	Update(ctx context.Context, maintenance entities.Maintenance) (entities.Maintenance, error)
	List(ctx context.Context) ([]entities.Maintenance, error)
}
