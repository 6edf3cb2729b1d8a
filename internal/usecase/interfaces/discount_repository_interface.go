package interfaces

import (
	"context"

	"smartsales365/internal/domain/entities"
)

// IDiscountRepository abstracts DynamoDB persistence for promotions.

type IDiscountRepository interface {
	Create(ctx context.Context, d entities.Discount) (entities.Discount, error)
	GetByID(ctx context.Context, id string) (entities.Discount, error)
	Update(ctx context.Context, d entities.Discount) (entities.Discount, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Discount, error)
	ListByProduct(ctx context.Context, productID string) ([]entities.Discount, error)
}
