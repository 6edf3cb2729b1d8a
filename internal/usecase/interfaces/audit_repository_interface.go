package interfaces

import (
	"context"

	"smartsales365/internal/domain/entities"
)

// IAuditRepository abstracts the bitácora sink. Create is fire-and-forget
// from the caller's point of view: use cases log a failed write and move on.

type IAuditRepository interface {
	Create(ctx context.Context, e entities.AuditEntry) error
	List(ctx context.Context, username string) ([]entities.AuditEntry, error)
}
