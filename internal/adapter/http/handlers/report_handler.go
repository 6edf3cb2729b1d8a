package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "smartsales365/internal/adapter/http/dto/request"
	response "smartsales365/internal/adapter/http/dto/response"
	"smartsales365/internal/usecase"
	"smartsales365/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidReportPayload = pkg.NewDomainErrorSimple("INVALID_REPORT_INPUT", "Invalid report payload", http.StatusBadRequest)
)

// ReportHandler handles HTTP requests for prompt-driven report generation and
// report history.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// InterpretPrompt resolves a natural language prompt into report parameters
// without generating anything. The client shows the confirmation text and
// calls GenerateDynamic once the user agrees.
func (h *ReportHandler) InterpretPrompt(c *gin.Context) {
	var payload request.ReportPromptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	params, confirmation, err := h.usecase.InterpretPreview(c.Request.Context(), payload.ResolvePrompt())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resp := response.FromParams(params)
	resp.Confirmation = confirmation
	c.JSON(http.StatusOK, resp)
}

// GenerateDynamic interprets the prompt and streams the rendered artifact
// back as a file download.
func (h *ReportHandler) GenerateDynamic(c *gin.Context) {
	h.generate(c, false)
}

// GenerateByVoice is GenerateDynamic for transcribed voice commands; the
// report is flagged as voice-originated in the history.
func (h *ReportHandler) GenerateByVoice(c *gin.Context) {
	var payload request.VoiceReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}
	h.generateFromPrompt(c, payload.ResolvePrompt(), true)
}

func (h *ReportHandler) generate(c *gin.Context, voice bool) {
	var payload request.ReportPromptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}
	h.generateFromPrompt(c, payload.ResolvePrompt(), voice)
}

func (h *ReportHandler) generateFromPrompt(c *gin.Context, promptText string, voice bool) {
	actor := actorFrom(c)
	log.Printf("[report][handler] generate start user=%s voice=%t prompt_len=%d", actor.Username, voice, len(promptText))

	generated, err := h.usecase.GenerateFromPrompt(c.Request.Context(), promptText, voice, actor)
	if err != nil {
		log.Printf("[report][handler] generate failed user=%s err=%v", actor.Username, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[report][handler] generate success user=%s report_id=%s file=%s", actor.Username, generated.Report.ID, generated.FileName)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", generated.FileName))
	c.Header("X-Report-Id", generated.Report.ID)
	c.Data(http.StatusOK, generated.ContentType, generated.Artifact)
}

// History lists the caller's generated reports, most recent first.
func (h *ReportHandler) History(c *gin.Context) {
	reports, err := h.usecase.History(c.Request.Context(), actorFrom(c))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReports(reports))
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReport(report))
}

func (h *ReportHandler) DeleteReport(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), actorFrom(c)); err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPrompt):
		return pkg.NewDomainErrorSimple("INVALID_PROMPT", "Prompt is empty or cannot be interpreted", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedReportType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_REPORT_TYPE", "Unsupported report type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FORMAT", "Unsupported output format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReportID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReportNotFound):
		return pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Report not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReportGeneration):
		return pkg.NewDomainError("REPORT_GENERATION_FAILED", "Report could not be generated", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
