package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartsales365/internal/domain/entities"
	"smartsales365/internal/usecase/interfaces"
)

var (
	ErrDiscountNotFound  = errors.New("discount not found")
	ErrInvalidDiscountID = errors.New("invalid discount id")
	ErrInvalidDiscount   = errors.New("invalid discount data")
)

// IDiscountUseCase manages percentage promotions and resolves the best
// current price of a product.

type IDiscountUseCase interface {
	Create(ctx context.Context, d entities.Discount, actor Actor) (entities.Discount, error)
	GetByID(ctx context.Context, id string) (entities.Discount, error)
	Update(ctx context.Context, d entities.Discount, actor Actor) (entities.Discount, error)
	Delete(ctx context.Context, id string, actor Actor) error
	List(ctx context.Context) ([]entities.Discount, error)
	ListCurrent(ctx context.Context) ([]entities.Discount, error)
	BestForProduct(ctx context.Context, productID string) (entities.Discount, bool, error)
	SetActive(ctx context.Context, id string, active bool, actor Actor) (entities.Discount, error)
}

type DiscountUseCase struct {
	repo  interfaces.IDiscountRepository
	audit interfaces.IAuditRepository
}

var _ IDiscountUseCase = (*DiscountUseCase)(nil)

func NewDiscountUseCase(repo interfaces.IDiscountRepository, audit interfaces.IAuditRepository) *DiscountUseCase {
	return &DiscountUseCase{repo: repo, audit: audit}
}

func (u *DiscountUseCase) Create(ctx context.Context, d entities.Discount, actor Actor) (entities.Discount, error) {
	if err := validateDiscount(d); err != nil {
		return entities.Discount{}, err
	}
	d.ID = uuid.NewString()
	d.Active = true
	d.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Printf("[discount][usecase] create failed err=%v", err)
		return entities.Discount{}, err
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Creó descuento de %.0f%%", created.Percentage))
	return created, nil
}

func (u *DiscountUseCase) GetByID(ctx context.Context, id string) (entities.Discount, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Discount{}, ErrInvalidDiscountID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Discount{}, err
	}
	if d.ID == "" {
		return entities.Discount{}, ErrDiscountNotFound
	}
	return d, nil
}

func (u *DiscountUseCase) Update(ctx context.Context, d entities.Discount, actor Actor) (entities.Discount, error) {
	current, err := u.GetByID(ctx, d.ID)
	if err != nil {
		return entities.Discount{}, err
	}
	if err := validateDiscount(d); err != nil {
		return entities.Discount{}, err
	}
	d.CreatedAt = current.CreatedAt

	updated, err := u.repo.Update(ctx, d)
	if err != nil {
		log.Printf("[discount][usecase] update failed descuento_id=%s err=%v", d.ID, err)
		return entities.Discount{}, err
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Actualizó descuento %s", updated.ID))
	return updated, nil
}

func (u *DiscountUseCase) Delete(ctx context.Context, id string, actor Actor) error {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, d.ID); err != nil {
		return err
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Eliminó descuento %s", d.ID))
	return nil
}

func (u *DiscountUseCase) List(ctx context.Context) ([]entities.Discount, error) {
	return u.repo.List(ctx)
}

// ListCurrent filters to promotions applying today.
func (u *DiscountUseCase) ListCurrent(ctx context.Context) ([]entities.Discount, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	today := time.Now().UTC()
	var current []entities.Discount
	for _, d := range all {
		if d.CurrentAt(today) {
			current = append(current, d)
		}
	}
	return current, nil
}

// BestForProduct returns the highest current promotion covering the product,
// considering both product-bound and storewide entries.
func (u *DiscountUseCase) BestForProduct(ctx context.Context, productID string) (entities.Discount, bool, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Discount{}, false, ErrInvalidProductID
	}
	candidates, err := u.repo.ListByProduct(ctx, productID)
	if err != nil {
		return entities.Discount{}, false, err
	}
	today := time.Now().UTC()
	var best entities.Discount
	found := false
	for _, d := range candidates {
		if d.CurrentAt(today) && d.Percentage > best.Percentage {
			best = d
			found = true
		}
	}
	return best, found, nil
}

func (u *DiscountUseCase) SetActive(ctx context.Context, id string, active bool, actor Actor) (entities.Discount, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Discount{}, err
	}
	d.Active = active
	updated, err := u.repo.Update(ctx, d)
	if err != nil {
		return entities.Discount{}, err
	}
	verb := "Desactivó"
	if active {
		verb = "Activó"
	}
	u.logAudit(ctx, actor, fmt.Sprintf("%s descuento %s", verb, updated.ID))
	return updated, nil
}

func validateDiscount(d entities.Discount) error {
	if d.Percentage <= 0 || d.Percentage > 100 {
		return fmt.Errorf("%w: porcentaje must be in (0, 100]", ErrInvalidDiscount)
	}
	if d.Start.IsZero() || d.End.IsZero() || d.End.Before(d.Start) {
		return fmt.Errorf("%w: fecha_fin must not precede fecha_inicio", ErrInvalidDiscount)
	}
	return nil
}

func (u *DiscountUseCase) logAudit(ctx context.Context, actor Actor, action string) {
	if u.audit == nil {
		return
	}
	entry := entities.AuditEntry{
		ID:       uuid.NewString(),
		Username: actor.Username,
		Action:   action,
		IP:       actor.IP,
		Date:     time.Now().UTC(),
		Success:  true,
	}
	if err := u.audit.Create(ctx, entry); err != nil {
		log.Printf("[discount][usecase] audit write failed usuario=%s err=%v", actor.Username, err)
	}
}
