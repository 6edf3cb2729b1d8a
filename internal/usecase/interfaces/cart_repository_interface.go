package interfaces

import (
	"context"

	"smartsales365/internal/domain/entities"
)

// ICartRepository abstracts DynamoDB persistence for shopping carts. At most
// one active cart exists per user; checkout saves it back deactivated.

type ICartRepository interface {
	Create(ctx context.Context, c entities.Cart) (entities.Cart, error)
	GetByID(ctx context.Context, id string) (entities.Cart, error)
	GetActiveByUser(ctx context.Context, userID string) (entities.Cart, error)
	Update(ctx context.Context, c entities.Cart) (entities.Cart, error)
}
