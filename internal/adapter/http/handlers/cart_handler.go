package handlers

import (
	"errors"
	"net/http"

	request "smartsales365/internal/adapter/http/dto/request"
	response "smartsales365/internal/adapter/http/dto/response"
	"smartsales365/internal/usecase"
	"smartsales365/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)
)

// CartHandler handles HTTP requests for the per-user shopping cart.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// GetActive returns the user's active cart, creating one when none exists.
func (h *CartHandler) GetActive(c *gin.Context) {
	cart, err := h.usecase.GetActive(c.Request.Context(), c.Param("usuario_id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.CartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.AddItem(c.Request.Context(), c.Param("usuario_id"), payload.ProductID, payload.Quantity)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// UpdateItem sets the quantity of one line; zero or less removes it.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var payload request.CartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("usuario_id"), c.Param("producto_id"), payload.Quantity)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("usuario_id"), c.Param("producto_id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) Clear(c *gin.Context) {
	cart, err := h.usecase.Clear(c.Request.Context(), c.Param("usuario_id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartUserID), errors.Is(err, usecase.ErrInvalidCartItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductUnavailable):
		return pkg.NewDomainErrorSimple("PRODUCT_UNAVAILABLE", "Product is inactive or lacks stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrCartItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Item not in cart", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
