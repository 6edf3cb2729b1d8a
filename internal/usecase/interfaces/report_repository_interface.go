package interfaces

import (
	"context"

	"smartsales365/internal/domain/entities"
)

// IReportRepository abstracts DynamoDB persistence for generated-report
// metadata (the history; rendered bytes are not stored).

type IReportRepository interface {
	Create(ctx context.Context, r entities.Report) (entities.Report, error)
	GetByID(ctx context.Context, id string) (entities.Report, error)
	ListByUser(ctx context.Context, username string) ([]entities.Report, error)
	Delete(ctx context.Context, id string) error
}
