package handlers

import (
	"errors"
	"net/http"

	request "smartsales365/internal/adapter/http/dto/request"
	response "smartsales365/internal/adapter/http/dto/response"
	"smartsales365/internal/domain/entities"
	"smartsales365/internal/usecase"
	"smartsales365/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDiscountPayload = pkg.NewDomainErrorSimple("INVALID_DISCOUNT_INPUT", "Invalid discount payload", http.StatusBadRequest)
)

// DiscountHandler handles HTTP requests for promotions.

type DiscountHandler struct {
	usecase usecase.IDiscountUseCase
}

func NewDiscountHandler(uc usecase.IDiscountUseCase) *DiscountHandler {
	return &DiscountHandler{usecase: uc}
}

func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	discount, ok := h.bindDiscount(c, "")
	if !ok {
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), discount, actorFrom(c))
	if err != nil {
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDiscount(created))
}

func (h *DiscountHandler) GetDiscount(c *gin.Context) {
	discount, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDiscount(discount))
}

func (h *DiscountHandler) UpdateDiscount(c *gin.Context) {
	discount, ok := h.bindDiscount(c, c.Param("id"))
	if !ok {
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), discount, actorFrom(c))
	if err != nil {
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDiscount(updated))
}

func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), actorFrom(c)); err != nil {
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ListDiscounts lists all promotions; vigentes=true narrows to the ones
// applicable today.
func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	list, err := h.listFor(c)
	if err != nil {
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDiscounts(list))
}

// SetDiscountActive toggles a promotion on or off.
func (h *DiscountHandler) SetDiscountActive(c *gin.Context) {
	var payload struct {
		Active *bool `json:"activo"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Active == nil {
		c.JSON(errInvalidDiscountPayload.HTTPStatus, errInvalidDiscountPayload.ToHTTPError())
		return
	}

	discount, err := h.usecase.SetActive(c.Request.Context(), c.Param("id"), *payload.Active, actorFrom(c))
	if err != nil {
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDiscount(discount))
}

// BestForProduct returns the promotion the store would apply to the product
// today, 404 when none applies.
func (h *DiscountHandler) BestForProduct(c *gin.Context) {
	discount, found, err := h.usecase.BestForProduct(c.Request.Context(), c.Param("producto_id"))
	if err != nil {
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !found {
		appErr := pkg.NewDomainErrorSimple("DISCOUNT_NOT_FOUND", "No current discount for this product", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDiscount(discount))
}

func (h *DiscountHandler) bindDiscount(c *gin.Context, id string) (d entities.Discount, ok bool) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDiscountPayload.HTTPStatus, errInvalidDiscountPayload.ToHTTPError())
		return d, false
	}
	discount, err := payload.ToEntity(id)
	if err != nil {
		c.JSON(errInvalidDiscountPayload.HTTPStatus, errInvalidDiscountPayload.ToHTTPError())
		return d, false
	}
	return discount, true
}

func (h *DiscountHandler) listFor(c *gin.Context) ([]entities.Discount, error) {
	if c.Query("vigentes") == "true" {
		return h.usecase.ListCurrent(c.Request.Context())
	}
	return h.usecase.List(c.Request.Context())
}

func mapDiscountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDiscountID), errors.Is(err, usecase.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDiscountNotFound):
		return pkg.NewDomainErrorSimple("DISCOUNT_NOT_FOUND", "Discount not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
