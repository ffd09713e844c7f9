package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/arionfin/arion-backend/internal/apperrors"
	"github.com/arionfin/arion-backend/internal/core/domain"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/arionfin/arion-backend/internal/dto"
	"github.com/arionfin/arion-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statisticsHandler handles HTTP requests for aggregation queries.
type statisticsHandler struct {
	statisticsService portssvc.StatisticsSvcFacade
}

func newStatisticsHandler(ss portssvc.StatisticsSvcFacade) *statisticsHandler {
	return &statisticsHandler{statisticsService: ss}
}

// registerStatisticsRoutes registers routes related to statistics.
func registerStatisticsRoutes(rg *gin.RouterGroup, statisticsService portssvc.StatisticsSvcFacade) {
	h := newStatisticsHandler(statisticsService)

	statistics := rg.Group("/statistics")
	{
		statistics.GET("/summary", h.monthlySummary)
		statistics.GET("/breakdown", h.categoryBreakdown)
		statistics.GET("/history", h.summaryByPeriod)
	}
}

// resolvePeriod parses the optional period query parameter, defaulting to
// the current month.
func resolvePeriod(c *gin.Context) (domain.Period, bool) {
	raw := c.Query("period")
	if raw == "" {
		return domain.CurrentPeriod(time.Now().UTC()), true
	}
	period, err := domain.ParsePeriod(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.Period{}, false
	}
	return period, true
}

// monthlySummary godoc
// @Summary Monthly summary
// @Description Income, expense and net balance for one month. Defaults to the current month.
// @Tags statistics
// @Produce json
// @Param period query string false "Period (YYYY-MM)"
// @Success 200 {object} dto.PeriodSummaryResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /statistics/summary [get]
func (h *statisticsHandler) monthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	period, ok := resolvePeriod(c)
	if !ok {
		return
	}

	summary, err := h.statisticsService.MonthlySummary(c.Request.Context(), userID, period)
	if err != nil {
		logger.Error("Failed to compute monthly summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodSummaryResponse(summary))
}

// categoryBreakdown godoc
// @Summary Category expense breakdown
// @Description Per-category expense totals for one month with each category's percentage share. Defaults to the current month.
// @Tags statistics
// @Produce json
// @Param period query string false "Period (YYYY-MM)"
// @Success 200 {object} dto.CategoryBreakdownResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /statistics/breakdown [get]
func (h *statisticsHandler) categoryBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	period, ok := resolvePeriod(c)
	if !ok {
		return
	}

	amounts, percentages, err := h.statisticsService.CategoryBreakdown(c.Request.Context(), userID, period)
	if err != nil {
		logger.Error("Failed to compute category breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute breakdown"})
		return
	}

	categories := make([]string, 0, len(amounts))
	for category := range amounts {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	resp := dto.CategoryBreakdownResponse{
		Period:     period.String(),
		Categories: make([]dto.CategoryBreakdownEntry, 0, len(categories)),
	}
	for _, category := range categories {
		resp.Categories = append(resp.Categories, dto.CategoryBreakdownEntry{
			Category:   category,
			Amount:     amounts[category],
			Percentage: percentages[category],
		})
	}
	c.JSON(http.StatusOK, resp)
}

// summaryByPeriod godoc
// @Summary Summary history
// @Description One summary per calendar month touched by the date range, ordered chronologically.
// @Tags statistics
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.PeriodSummaryResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /statistics/history [get]
func (h *statisticsHandler) summaryByPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	from, err := time.Parse(dto.DateLayout, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(dto.DateLayout, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
		return
	}

	summaries, err := h.statisticsService.SummaryByPeriod(c.Request.Context(), userID, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to compute summary history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary history"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodSummaryResponses(summaries))
}
