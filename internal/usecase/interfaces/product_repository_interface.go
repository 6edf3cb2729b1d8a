package interfaces

import (
	"context"

	"smartsales365/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for the product catalog.
//
// DecrementStock must be atomic (conditional update on stock >= quantity) so
// concurrent checkouts never oversell.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Product, error)
	ListActive(ctx context.Context) ([]entities.Product, error)
	DecrementStock(ctx context.Context, id string, quantity int) (entities.Product, error)
}
