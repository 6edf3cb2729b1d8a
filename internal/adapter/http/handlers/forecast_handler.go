package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"smartsales365/internal/usecase"
	"smartsales365/pkg"

	"github.com/gin-gonic/gin"
)

const defaultForecastMonths = 3

// ForecastHandler handles HTTP requests for the sales projection.

type ForecastHandler struct {
	usecase usecase.IForecastUseCase
}

func NewForecastHandler(uc usecase.IForecastUseCase) *ForecastHandler {
	return &ForecastHandler{usecase: uc}
}

// ForecastSales projects monthly revenue; meses controls how many months
// ahead (default 3).
func (h *ForecastHandler) ForecastSales(c *gin.Context) {
	months := defaultForecastMonths
	if raw := c.Query("meses"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		months = parsed
	}

	forecast, err := h.usecase.ForecastSales(c.Request.Context(), months)
	if err != nil {
		appErr := mapForecastError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, forecast)
}

func mapForecastError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidHorizon):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotEnoughHistory):
		return pkg.NewDomainErrorSimple("NOT_ENOUGH_HISTORY", "At least two months of paid sales are required", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
