package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "smartsales365/internal/adapter/http/dto/request"
	response "smartsales365/internal/adapter/http/dto/response"
	"smartsales365/internal/usecase"
	"smartsales365/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
)

// ProductHandler handles HTTP requests for the catalog.

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""), actorFrom(c))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(product))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")), actorFrom(c))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

// DeactivateProduct is a soft delete; the product stays in inventory reports.
func (h *ProductHandler) DeactivateProduct(c *gin.Context) {
	if err := h.usecase.Deactivate(c.Request.Context(), c.Param("id"), actorFrom(c)); err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ListProducts lists the catalog; solo_activos=false includes deactivated
// products.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	onlyActive := true
	if raw := c.Query("solo_activos"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			onlyActive = parsed
		}
	}

	products, err := h.usecase.List(c.Request.Context(), onlyActive)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
