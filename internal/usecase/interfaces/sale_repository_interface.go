package interfaces

import (
	"context"
	"time"

	"smartsales365/internal/domain/entities"
)

// ISaleRepository abstracts DynamoDB persistence for Sale.
//
// Report assembly reads by date range (zero times mean unbounded); the
// checkout and payment flows create and transition individual sales.

type ISaleRepository interface {
	Create(ctx context.Context, s entities.Sale) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Sale, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]entities.Sale, error)
	UpdateStatus(ctx context.Context, id string, status entities.SaleStatus) (entities.Sale, error)
}
