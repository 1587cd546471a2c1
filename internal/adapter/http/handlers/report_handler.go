package handlers

import (
	"log/slog"
	"net/http"

	request "orcaobra/internal/adapter/http/dto/request"
	"orcaobra/internal/domain/entities"
	"orcaobra/internal/usecase"
	"orcaobra/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReportPayload = pkg.NewDomainErrorSimple("INVALID_REPORT_INPUT", "Invalid report payload", http.StatusBadRequest)

// ReportHandler handles technical report generation and export. Reports are
// never persisted, so export takes the full report back in the request body.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// GenerateReport runs one strict-JSON model call over the supplied quote and
// photo batch.
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var payload request.GenerateReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	quote, err := payload.Quote.ToEntity()
	if err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}
	images, err := payload.ResolveImages()
	if err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	report, err := h.usecase.Generate(c.Request.Context(), usecase.GenerateReportInput{
		Quote:  quote,
		Images: images,
	})
	if err != nil {
		appErr := mapGenerationError("Failed to generate report", err)
		slog.Warn("generate report failed", "component", "http", "code", appErr.Code, "error", err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportReportPDF renders the report carried in the request body.
func (h *ReportHandler) ExportReportPDF(c *gin.Context) {
	var report entities.TechnicalReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	pdf, err := h.usecase.ExportPDF(c.Request.Context(), report)
	if err != nil {
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Failed to export report", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="technical-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
