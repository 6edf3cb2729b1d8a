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
	errInvalidMaintenancePayload = pkg.NewDomainErrorSimple("INVALID_MAINTENANCE_INPUT", "Invalid maintenance payload", http.StatusBadRequest)
)

// MaintenanceHandler handles HTTP requests for service requests on sold
// products.

type MaintenanceHandler struct {
	usecase usecase.IMaintenanceUseCase
}

func NewMaintenanceHandler(uc usecase.IMaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{usecase: uc}
}

func (h *MaintenanceHandler) RequestMaintenance(c *gin.Context) {
	var payload request.MaintenanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaintenancePayload.HTTPStatus, errInvalidMaintenancePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Request(c.Request.Context(), payload.ToEntity(), actorFrom(c))
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromMaintenance(created))
}

func (h *MaintenanceHandler) GetMaintenance(c *gin.Context) {
	m, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenance(m))
}

// AssignMaintenance puts a technician on a pending request.
func (h *MaintenanceHandler) AssignMaintenance(c *gin.Context) {
	var payload request.MaintenanceAssignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaintenancePayload.HTTPStatus, errInvalidMaintenancePayload.ToHTTPError())
		return
	}

	m, err := h.usecase.Assign(c.Request.Context(), c.Param("id"), payload.TechnicianID, actorFrom(c))
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenance(m))
}

// CompleteMaintenance closes an in-progress request.
func (h *MaintenanceHandler) CompleteMaintenance(c *gin.Context) {
	var payload request.MaintenanceCompleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaintenancePayload.HTTPStatus, errInvalidMaintenancePayload.ToHTTPError())
		return
	}

	m, err := h.usecase.Complete(c.Request.Context(), c.Param("id"), payload.Details, actorFrom(c))
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenance(m))
}

func (h *MaintenanceHandler) ListMaintenances(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenances(list))
}

func mapMaintenanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMaintenanceID), errors.Is(err, usecase.ErrInvalidMaintenance):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMaintenanceNotFound):
		return pkg.NewDomainErrorSimple("MAINTENANCE_NOT_FOUND", "Maintenance request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMaintenanceAlreadyDone), errors.Is(err, usecase.ErrMaintenanceNotAssigned), errors.Is(err, usecase.ErrInvalidMaintenanceState):
		return pkg.NewDomainErrorSimple("MAINTENANCE_STATE_CONFLICT", "Maintenance request is not in a valid state for this operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
