package interfaces

import (
	"context"

	"smartsales365/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for back-office accounts.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.User, error)
	ListByRole(ctx context.Context, role string) ([]entities.User, error)
}
