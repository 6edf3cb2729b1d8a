package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"smartsales365/internal/domain/entities"
	mock_interfaces "smartsales365/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestForecastUseCase_ForecastSales(t *testing.T) {
	t.Run("invalid horizon", func(t *testing.T) {
		uc := NewForecastUseCase(nil)
		_, err := uc.ForecastSales(context.Background(), 0)
		if !errors.Is(err, ErrInvalidHorizon) {
			t.Fatalf("expected ErrInvalidHorizon, got %v", err)
		}
	})

	t.Run("not enough history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewForecastUseCase(sales)

		sales.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Sale{
			{Status: entities.SaleStatusPagado, Total: 100, Date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
			{Status: entities.SaleStatusPendiente, Total: 50, Date: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
		}, nil)

		_, err := uc.ForecastSales(context.Background(), 3)
		if !errors.Is(err, ErrNotEnoughHistory) {
			t.Fatalf("expected ErrNotEnoughHistory, got %v", err)
		}
	})

	t.Run("linear growth projects forward", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewForecastUseCase(sales)

		// 100, 200, 300 over three months: slope 100, perfect fit.
		sales.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Sale{
			{Status: entities.SaleStatusPagado, Total: 100, Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
			{Status: entities.SaleStatusPagado, Total: 150, Date: time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC)},
			{Status: entities.SaleStatusPagado, Total: 50, Date: time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)},
			{Status: entities.SaleStatusPagado, Total: 300, Date: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)},
			{Status: entities.SaleStatusCancelado, Total: 999, Date: time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)},
		}, nil)

		forecast, err := uc.ForecastSales(context.Background(), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(forecast.History) != 3 {
			t.Fatalf("expected 3 history months, got %d", len(forecast.History))
		}
		if forecast.History[1].Total != 200 {
			t.Fatalf("february must aggregate to 200, got %.2f", forecast.History[1].Total)
		}
		if math.Abs(forecast.Slope-100) > 1e-9 {
			t.Fatalf("expected slope 100, got %f", forecast.Slope)
		}
		if math.Abs(forecast.R2-1) > 1e-9 {
			t.Fatalf("expected perfect fit, got r2=%f", forecast.R2)
		}
		if len(forecast.Points) != 2 {
			t.Fatalf("expected 2 projections, got %d", len(forecast.Points))
		}
		if forecast.Points[0].Month != "2025-04" || forecast.Points[1].Month != "2025-05" {
			t.Fatalf("unexpected projected months: %+v", forecast.Points)
		}
		if math.Abs(forecast.Points[0].Projected-400) > 1e-9 {
			t.Fatalf("expected april projection 400, got %f", forecast.Points[0].Projected)
		}
	})

	t.Run("projections never go negative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewForecastUseCase(sales)

		sales.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Sale{
			{Status: entities.SaleStatusPagado, Total: 500, Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
			{Status: entities.SaleStatusPagado, Total: 100, Date: time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC)},
		}, nil)

		forecast, err := uc.ForecastSales(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, p := range forecast.Points {
			if p.Projected < 0 {
				t.Fatalf("negative projection for %s: %f", p.Month, p.Projected)
			}
		}
	})
}
