package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartsales365/internal/domain/entities"
	mock_interfaces "smartsales365/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDiscountUseCase_Create(t *testing.T) {
	actor := Actor{Username: "admin"}

	t.Run("rejects percentage out of range", func(t *testing.T) {
		uc := NewDiscountUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Discount{Percentage: 120}, actor)
		if !errors.Is(err, ErrInvalidDiscount) {
			t.Fatalf("expected ErrInvalidDiscount, got %v", err)
		}
	})

	t.Run("rejects inverted dates", func(t *testing.T) {
		uc := NewDiscountUseCase(nil, nil)
		now := time.Now()
		_, err := uc.Create(context.Background(), entities.Discount{
			Percentage: 10, Start: now, End: now.AddDate(0, 0, -1),
		}, actor)
		if !errors.Is(err, ErrInvalidDiscount) {
			t.Fatalf("expected ErrInvalidDiscount, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIDiscountRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		uc := NewDiscountUseCase(repo, audit)

		now := time.Now()
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Discount) (entities.Discount, error) {
				if d.ID == "" || !d.Active {
					t.Fatalf("malformed discount: %+v", d)
				}
				return d, nil
			})
		audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.Create(context.Background(), entities.Discount{
			Percentage: 15, Start: now, End: now.AddDate(0, 1, 0),
		}, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDiscountUseCase_BestForProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIDiscountRepository(ctrl)
	uc := NewDiscountUseCase(repo, nil)

	now := time.Now().UTC()
	repo.EXPECT().ListByProduct(gomock.Any(), "p1").Return([]entities.Discount{
		{ID: "d1", Percentage: 10, Active: true, Start: now.AddDate(0, 0, -5), End: now.AddDate(0, 0, 5)},
		{ID: "d2", Percentage: 25, Active: true, Start: now.AddDate(0, 0, -1), End: now.AddDate(0, 0, 1)},
		{ID: "d3", Percentage: 50, Active: false, Start: now.AddDate(0, 0, -1), End: now.AddDate(0, 0, 1)},
		{ID: "d4", Percentage: 40, Active: true, Start: now.AddDate(0, 0, 2), End: now.AddDate(0, 0, 9)},
	}, nil)

	best, found, err := uc.BestForProduct(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || best.ID != "d2" {
		t.Fatalf("expected d2 as best current discount, got %+v found=%v", best, found)
	}
	if got := best.Apply(200); got != 150 {
		t.Fatalf("expected discounted price 150, got %.2f", got)
	}
}

func TestDiscountUseCase_ListCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIDiscountRepository(ctrl)
	uc := NewDiscountUseCase(repo, nil)

	now := time.Now().UTC()
	repo.EXPECT().List(gomock.Any()).Return([]entities.Discount{
		{ID: "d1", Percentage: 10, Active: true, Start: now.AddDate(0, 0, -1), End: now.AddDate(0, 0, 1)},
		{ID: "d2", Percentage: 20, Active: true, Start: now.AddDate(0, 0, -9), End: now.AddDate(0, 0, -2)},
	}, nil)

	current, err := uc.ListCurrent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(current) != 1 || current[0].ID != "d1" {
		t.Fatalf("unexpected current discounts: %+v", current)
	}
}
