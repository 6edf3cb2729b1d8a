package usecase

import (
	"context"
	"strings"

	"smartsales365/internal/domain/entities"
	"smartsales365/internal/usecase/interfaces"
)

// IAuditUseCase reads the bitácora. Entries are written by the other use
// cases as side effects; this surface only lists them.

type IAuditUseCase interface {
	List(ctx context.Context, username string) ([]entities.AuditEntry, error)
}

type AuditUseCase struct {
	repo interfaces.IAuditRepository
}

var _ IAuditUseCase = (*AuditUseCase)(nil)

func NewAuditUseCase(repo interfaces.IAuditRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

func (u *AuditUseCase) List(ctx context.Context, username string) ([]entities.AuditEntry, error) {
	return u.repo.List(ctx, strings.TrimSpace(username))
}
