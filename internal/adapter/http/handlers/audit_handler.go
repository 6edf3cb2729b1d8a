package handlers

import (
	"net/http"

	response "smartsales365/internal/adapter/http/dto/response"
	"smartsales365/internal/usecase"
	"smartsales365/pkg"

	"github.com/gin-gonic/gin"
)

// AuditHandler handles HTTP requests for the bitácora.

type AuditHandler struct {
	usecase usecase.IAuditUseCase
}

func NewAuditHandler(uc usecase.IAuditUseCase) *AuditHandler {
	return &AuditHandler{usecase: uc}
}

// ListEntries lists audit records, most recent first, optionally filtered by
// username (usuario query param).
func (h *AuditHandler) ListEntries(c *gin.Context) {
	entries, err := h.usecase.List(c.Request.Context(), c.Query("usuario"))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAuditEntries(entries))
}
