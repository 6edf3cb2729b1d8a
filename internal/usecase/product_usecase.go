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
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidProductID  = errors.New("invalid product id")
	ErrInvalidProduct    = errors.New("invalid product data")
	ErrProductHasNoStock = errors.New("product has no stock")
)

// IProductUseCase is the catalog CRUD surface.

type IProductUseCase interface {
	Create(ctx context.Context, p entities.Product, actor Actor) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Update(ctx context.Context, p entities.Product, actor Actor) (entities.Product, error)
	Deactivate(ctx context.Context, id string, actor Actor) error
	List(ctx context.Context, onlyActive bool) ([]entities.Product, error)
}

type ProductUseCase struct {
	repo  interfaces.IProductRepository
	audit interfaces.IAuditRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, audit interfaces.IAuditRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, audit: audit}
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.Product, actor Actor) (entities.Product, error) {
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}
	p.ID = uuid.NewString()
	p.Active = true
	p.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[product][usecase] create failed nombre=%q err=%v", p.Name, err)
		return entities.Product{}, err
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Creó producto '%s'", created.Name))
	log.Printf("[product][usecase] create success producto_id=%s nombre=%q", created.ID, created.Name)
	return created, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) Update(ctx context.Context, p entities.Product, actor Actor) (entities.Product, error) {
	current, err := u.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Product{}, err
	}
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}
	p.CreatedAt = current.CreatedAt

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		log.Printf("[product][usecase] update failed producto_id=%s err=%v", p.ID, err)
		return entities.Product{}, err
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Actualizó producto '%s'", updated.Name))
	return updated, nil
}

// Deactivate performs the soft delete: the product leaves listings and report
// datasets but stays referenced by past sales.
func (u *ProductUseCase) Deactivate(ctx context.Context, id string, actor Actor) error {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Active = false
	if _, err := u.repo.Update(ctx, p); err != nil {
		log.Printf("[product][usecase] deactivate failed producto_id=%s err=%v", id, err)
		return err
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Desactivó producto '%s'", p.Name))
	return nil
}

func (u *ProductUseCase) List(ctx context.Context, onlyActive bool) ([]entities.Product, error) {
	if onlyActive {
		return u.repo.ListActive(ctx)
	}
	return u.repo.List(ctx)
}

func validateProduct(p entities.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: nombre is required", ErrInvalidProduct)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: precio must be positive", ErrInvalidProduct)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", ErrInvalidProduct)
	}
	if p.WarrantyMonths < 0 {
		return fmt.Errorf("%w: garantia cannot be negative", ErrInvalidProduct)
	}
	return nil
}

func (u *ProductUseCase) logAudit(ctx context.Context, actor Actor, action string) {
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
		log.Printf("[product][usecase] audit write failed usuario=%s err=%v", actor.Username, err)
	}
}
