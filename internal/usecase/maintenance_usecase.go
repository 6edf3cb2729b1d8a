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
	ErrMaintenanceNotFound     = errors.New("maintenance not found")
	ErrInvalidMaintenanceID    = errors.New("invalid maintenance id")
	ErrInvalidMaintenance      = errors.New("invalid maintenance data")
	ErrMaintenanceNotAssigned  = errors.New("maintenance has no technician assigned")
	ErrMaintenanceAlreadyDone  = errors.New("maintenance already completed")
	ErrInvalidMaintenanceState = errors.New("invalid maintenance state transition")
)

// IMaintenanceUseCase manages service requests for sold products.
//
// Lifecycle: pendiente -> en_proceso (on technician assignment) ->
// completado (sets fecha_realizacion).

type IMaintenanceUseCase interface {
	Request(ctx context.Context, m entities.Maintenance, actor Actor) (entities.Maintenance, error)
	GetByID(ctx context.Context, id string) (entities.Maintenance, error)
	Assign(ctx context.Context, id, technicianID string, actor Actor) (entities.Maintenance, error)
	Complete(ctx context.Context, id, details string, actor Actor) (entities.Maintenance, error)
	List(ctx context.Context) ([]entities.Maintenance, error)
}

type MaintenanceUseCase struct {
	repo  interfaces.IMaintenanceRepository
	sales interfaces.ISaleRepository
	users interfaces.IUserRepository
	audit interfaces.IAuditRepository
}

var _ IMaintenanceUseCase = (*MaintenanceUseCase)(nil)

func NewMaintenanceUseCase(
	repo interfaces.IMaintenanceRepository,
	sales interfaces.ISaleRepository,
	users interfaces.IUserRepository,
	audit interfaces.IAuditRepository,
) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo, sales: sales, users: users, audit: audit}
}

// Request registers a service request for a product of an existing sale.
func (u *MaintenanceUseCase) Request(ctx context.Context, m entities.Maintenance, actor Actor) (entities.Maintenance, error) {
	if m.Type != entities.MaintenancePreventivo && m.Type != entities.MaintenanceCorrectivo {
		return entities.Maintenance{}, fmt.Errorf("%w: tipo_mantenimiento %q", ErrInvalidMaintenance, m.Type)
	}
	saleID := strings.TrimSpace(m.SaleID)
	if saleID == "" {
		return entities.Maintenance{}, fmt.Errorf("%w: venta_id is required", ErrInvalidMaintenance)
	}
	sale, err := u.sales.GetByID(ctx, saleID)
	if err != nil {
		return entities.Maintenance{}, err
	}
	if sale.ID == "" {
		return entities.Maintenance{}, ErrSaleNotFound
	}
	productInSale := false
	for _, it := range sale.Items {
		if it.ProductID == m.ProductID {
			productInSale = true
			break
		}
	}
	if !productInSale {
		return entities.Maintenance{}, fmt.Errorf("%w: producto_id not part of venta %s", ErrInvalidMaintenance, sale.ID)
	}

	m.ID = uuid.NewString()
	m.RequestedAt = time.Now().UTC()
	m.Status = entities.MaintenanceStatusPendiente
	m.PerformedAt = nil

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		log.Printf("[maintenance][usecase] create failed venta_id=%s err=%v", saleID, err)
		return entities.Maintenance{}, err
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Solicitó mantenimiento %s de producto %s", created.Type, created.ProductID))
	return created, nil
}

func (u *MaintenanceUseCase) GetByID(ctx context.Context, id string) (entities.Maintenance, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Maintenance{}, ErrInvalidMaintenanceID
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Maintenance{}, err
	}
	if m.ID == "" {
		return entities.Maintenance{}, ErrMaintenanceNotFound
	}
	return m, nil
}

// Assign puts a technician on the request and moves it to en_proceso. The
// assignee must hold the technician role.
func (u *MaintenanceUseCase) Assign(ctx context.Context, id, technicianID string, actor Actor) (entities.Maintenance, error) {
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Maintenance{}, err
	}
	if m.Status == entities.MaintenanceStatusCompletado {
		return entities.Maintenance{}, ErrMaintenanceAlreadyDone
	}
	tech, err := u.users.GetByID(ctx, strings.TrimSpace(technicianID))
	if err != nil {
		return entities.Maintenance{}, err
	}
	if tech.ID == "" || tech.Role != entities.RoleTecnico {
		return entities.Maintenance{}, fmt.Errorf("%w: tecnico_id %q", ErrInvalidMaintenance, technicianID)
	}

	m.TechnicianID = tech.ID
	m.Status = entities.MaintenanceStatusEnProceso
	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		log.Printf("[maintenance][usecase] assign failed mantenimiento_id=%s err=%v", id, err)
		return entities.Maintenance{}, err
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Asignó técnico %s a mantenimiento %s", tech.Username, updated.ID))
	return updated, nil
}

// Complete closes an in-process request and stamps fecha_realizacion.
func (u *MaintenanceUseCase) Complete(ctx context.Context, id, details string, actor Actor) (entities.Maintenance, error) {
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Maintenance{}, err
	}
	if m.Status == entities.MaintenanceStatusCompletado {
		return entities.Maintenance{}, ErrMaintenanceAlreadyDone
	}
	if m.Status != entities.MaintenanceStatusEnProceso {
		return entities.Maintenance{}, ErrMaintenanceNotAssigned
	}

	now := time.Now().UTC()
	m.Status = entities.MaintenanceStatusCompletado
	m.PerformedAt = &now
	if strings.TrimSpace(details) != "" {
		m.Details = details
	}
	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		log.Printf("[maintenance][usecase] complete failed mantenimiento_id=%s err=%v", id, err)
		return entities.Maintenance{}, err
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Completó mantenimiento %s", updated.ID))
	return updated, nil
}

func (u *MaintenanceUseCase) List(ctx context.Context) ([]entities.Maintenance, error) {
	return u.repo.List(ctx)
}

func (u *MaintenanceUseCase) logAudit(ctx context.Context, actor Actor, action string) {
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
		log.Printf("[maintenance][usecase] audit write failed usuario=%s err=%v", actor.Username, err)
	}
}
