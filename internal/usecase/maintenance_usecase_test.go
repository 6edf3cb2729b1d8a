package usecase

import (
	"context"
	"errors"
	"testing"

	"smartsales365/internal/domain/entities"
	mock_interfaces "smartsales365/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMaintenanceUseCase_Request(t *testing.T) {
	actor := Actor{Username: "ana"}

	t.Run("unknown type", func(t *testing.T) {
		uc := NewMaintenanceUseCase(nil, nil, nil, nil)
		_, err := uc.Request(context.Background(), entities.Maintenance{Type: "otro"}, actor)
		if !errors.Is(err, ErrInvalidMaintenance) {
			t.Fatalf("expected ErrInvalidMaintenance, got %v", err)
		}
	})

	t.Run("product not part of sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewMaintenanceUseCase(nil, sales, nil, nil)

		sales.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Sale{
			ID: "v1", Items: []entities.SaleItem{{ProductID: "p1"}},
		}, nil)

		_, err := uc.Request(context.Background(), entities.Maintenance{
			Type: entities.MaintenanceCorrectivo, SaleID: "v1", ProductID: "p9",
		}, actor)
		if !errors.Is(err, ErrInvalidMaintenance) {
			t.Fatalf("expected ErrInvalidMaintenance, got %v", err)
		}
	})

	t.Run("request success starts pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		uc := NewMaintenanceUseCase(repo, sales, nil, audit)

		sales.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Sale{
			ID: "v1", Items: []entities.SaleItem{{ProductID: "p1"}},
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.Maintenance) (entities.Maintenance, error) {
				if m.Status != entities.MaintenanceStatusPendiente || m.ID == "" {
					t.Fatalf("malformed request: %+v", m)
				}
				return m, nil
			})
		audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.Request(context.Background(), entities.Maintenance{
			Type: entities.MaintenancePreventivo, SaleID: "v1", ProductID: "p1", Details: "Revisión general",
		}, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMaintenanceUseCase_Assign(t *testing.T) {
	actor := Actor{Username: "admin"}

	t.Run("assignee must be a technician", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewMaintenanceUseCase(repo, nil, users, nil)

		repo.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Maintenance{ID: "m1", Status: entities.MaintenanceStatusPendiente}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Role: entities.RoleCliente}, nil)

		_, err := uc.Assign(context.Background(), "m1", "u1", actor)
		if !errors.Is(err, ErrInvalidMaintenance) {
			t.Fatalf("expected ErrInvalidMaintenance, got %v", err)
		}
	})

	t.Run("assign success moves to en_proceso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		uc := NewMaintenanceUseCase(repo, nil, users, audit)

		repo.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Maintenance{ID: "m1", Status: entities.MaintenanceStatusPendiente}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Username: "tec1", Role: entities.RoleTecnico}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.Maintenance) (entities.Maintenance, error) {
				if m.Status != entities.MaintenanceStatusEnProceso || m.TechnicianID != "u1" {
					t.Fatalf("unexpected update: %+v", m)
				}
				return m, nil
			})
		audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.Assign(context.Background(), "m1", "u1", actor); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMaintenanceUseCase_Complete(t *testing.T) {
	actor := Actor{Username: "tec1"}

	t.Run("cannot complete unassigned request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		uc := NewMaintenanceUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Maintenance{ID: "m1", Status: entities.MaintenanceStatusPendiente}, nil)

		_, err := uc.Complete(context.Background(), "m1", "", actor)
		if !errors.Is(err, ErrMaintenanceNotAssigned) {
			t.Fatalf("expected ErrMaintenanceNotAssigned, got %v", err)
		}
	})

	t.Run("already completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		uc := NewMaintenanceUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Maintenance{ID: "m1", Status: entities.MaintenanceStatusCompletado}, nil)

		_, err := uc.Complete(context.Background(), "m1", "", actor)
		if !errors.Is(err, ErrMaintenanceAlreadyDone) {
			t.Fatalf("expected ErrMaintenanceAlreadyDone, got %v", err)
		}
	})

	t.Run("complete stamps fecha_realizacion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		uc := NewMaintenanceUseCase(repo, nil, nil, audit)

		repo.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Maintenance{ID: "m1", Status: entities.MaintenanceStatusEnProceso}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.Maintenance) (entities.Maintenance, error) {
				if m.Status != entities.MaintenanceStatusCompletado || m.PerformedAt == nil {
					t.Fatalf("unexpected update: %+v", m)
				}
				if m.Details != "Cambio de filtro" {
					t.Fatalf("expected details override, got %q", m.Details)
				}
				return m, nil
			})
		audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.Complete(context.Background(), "m1", "Cambio de filtro", actor); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
