package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"smartsales365/internal/domain/entities"
	"smartsales365/internal/usecase/interfaces"
)

var (
	ErrNotEnoughHistory = errors.New("not enough sales history for a forecast")
	ErrInvalidHorizon   = errors.New("forecast horizon must be positive")
)

// minForecastMonths is the least history a regression line is fit over.
const minForecastMonths = 2

// MonthlySales is one observed month of paid revenue.
type MonthlySales struct {
	Month string  `json:"mes"`
	Total float64 `json:"total"`
}

// ForecastPoint is one projected month.
type ForecastPoint struct {
	Month     string  `json:"mes"`
	Projected float64 `json:"proyeccion"`
}

// SalesForecast is the regression output: the history the line was fit on,
// the projections and the fit quality.
type SalesForecast struct {
	History   []MonthlySales  `json:"historico"`
	Points    []ForecastPoint `json:"proyecciones"`
	Slope     float64         `json:"pendiente"`
	Intercept float64         `json:"intercepto"`
	R2        float64         `json:"r2"`
}

// IForecastUseCase projects monthly revenue with an ordinary least squares
// fit over the paid-sales history.

type IForecastUseCase interface {
	ForecastSales(ctx context.Context, months int) (SalesForecast, error)
}

type ForecastUseCase struct {
	sales interfaces.ISaleRepository
}

var _ IForecastUseCase = (*ForecastUseCase)(nil)

func NewForecastUseCase(sales interfaces.ISaleRepository) *ForecastUseCase {
	return &ForecastUseCase{sales: sales}
}

func (u *ForecastUseCase) ForecastSales(ctx context.Context, months int) (SalesForecast, error) {
	if months <= 0 {
		return SalesForecast{}, ErrInvalidHorizon
	}

	// Zero bounds read the whole history.
	sales, err := u.sales.ListByDateRange(ctx, time.Time{}, time.Time{})
	if err != nil {
		return SalesForecast{}, err
	}

	byMonth := map[string]float64{}
	for _, s := range sales {
		if s.Status != entities.SaleStatusPagado {
			continue
		}
		byMonth[s.Date.Format("2006-01")] += s.Total
	}
	if len(byMonth) < minForecastMonths {
		return SalesForecast{}, ErrNotEnoughHistory
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	xs := make([]float64, len(keys))
	ys := make([]float64, len(keys))
	history := make([]MonthlySales, len(keys))
	for i, k := range keys {
		xs[i] = float64(i)
		ys[i] = byMonth[k]
		history[i] = MonthlySales{Month: k, Total: byMonth[k]}
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, intercept, slope)

	last, err := time.Parse("2006-01", keys[len(keys)-1])
	if err != nil {
		return SalesForecast{}, err
	}
	points := make([]ForecastPoint, 0, months)
	for i := 1; i <= months; i++ {
		x := float64(len(keys) - 1 + i)
		projected := intercept + slope*x
		// Revenue cannot go negative however steep the downtrend.
		if projected < 0 {
			projected = 0
		}
		points = append(points, ForecastPoint{
			Month:     last.AddDate(0, i, 0).Format("2006-01"),
			Projected: projected,
		})
	}

	log.Printf("[forecast][usecase] fitted months=%d slope=%.2f r2=%.3f horizon=%d", len(keys), slope, r2, months)
	return SalesForecast{
		History:   history,
		Points:    points,
		Slope:     slope,
		Intercept: intercept,
		R2:        r2,
	}, nil
}
