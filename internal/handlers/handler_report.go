package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/arionfin/arion-backend/internal/apperrors"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/arionfin/arion-backend/internal/dto"
	"github.com/arionfin/arion-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles HTTP requests for report compilation and download.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

// registerReportRoutes registers routes related to reports.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.GET("", h.compileReport)
	}
}

// compileReport godoc
// @Summary Compile a report
// @Description Compiles a date-range report of the user's transactions. The format parameter selects JSON (default) or a csv/xlsx/pdf download.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Param format query string false "Output format: json, csv, xlsx or pdf"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /reports [get]
func (h *reportHandler) compileReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.CompileReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	from, err := time.Parse(dto.DateLayout, params.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(dto.DateLayout, params.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
		return
	}

	report, err := h.reportService.CompileReport(c.Request.Context(), userID, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to compile report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compile report"})
		return
	}

	if params.Format == "" || params.Format == "json" {
		c.JSON(http.StatusOK, dto.ToReportResponse(report))
		return
	}

	data, contentType, err := h.reportService.RenderReport(c.Request.Context(), report, params.Format)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to render report", slog.String("error", err.Error()), slog.String("format", params.Format))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		return
	}

	filename := fmt.Sprintf("report_%s_%s.%s", params.From, params.To, params.Format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
