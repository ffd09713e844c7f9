package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/arionfin/arion-backend/internal/apperrors"
	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/arionfin/arion-backend/internal/core/ledger"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/arionfin/arion-backend/internal/dto"
	"github.com/arionfin/arion-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.GET("/exceeded", h.listExceededBudgets)
		budgets.POST("/evaluate", h.evaluateBudget)
		budgets.GET("/:id", h.getBudget)
		budgets.PUT("/:id", h.updateBudget)
		budgets.POST("/:id/deactivate", h.deactivateBudget)
		budgets.DELETE("/:id", h.deleteBudget)
	}
}

// createBudget godoc
// @Summary Configure a new budget
// @Description Creates an active budget limiting one category for one month. A second active budget for the same category and month is rejected.
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Duplicate active budget"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create budget in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget"})
		}
		return
	}

	logger.Info("Budget created successfully", slog.String("budget_id", budget.BudgetID))
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// listBudgets godoc
// @Summary List active budgets
// @Tags budgets
// @Produce json
// @Success 200 {array} dto.BudgetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list budgets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list budgets"})
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponses(budgets))
}

// listExceededBudgets godoc
// @Summary List exceeded budgets
// @Description Lists every active budget of the period whose recorded spend already exceeds its limit. Defaults to the current month.
// @Tags budgets
// @Produce json
// @Param period query string false "Period (YYYY-MM), defaults to current month"
// @Success 200 {array} dto.BudgetEvaluationResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /budgets/exceeded [get]
func (h *budgetHandler) listExceededBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	period := domain.CurrentPeriod(time.Now().UTC())
	if raw := c.Query("period"); raw != "" {
		parsed, err := domain.ParsePeriod(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		period = parsed
	}

	evaluations, err := h.budgetService.ListExceededBudgets(c.Request.Context(), userID, period)
	if err != nil {
		if errors.Is(err, ledger.ErrAmbiguousBudget) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list exceeded budgets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exceeded budgets"})
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetEvaluationResponses(evaluations))
}

// evaluateBudget godoc
// @Summary Evaluate a prospective expense
// @Description Dry-run evaluation of an expense against the active budget. Returns 200 with no body content when nothing would be breached.
// @Tags budgets
// @Accept json
// @Produce json
// @Param evaluation body dto.EvaluateBudgetRequest true "Candidate expense"
// @Success 200 {object} dto.BudgetEvaluationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Ambiguous budget state"
// @Security BearerAuth
// @Router /budgets/evaluate [post]
func (h *budgetHandler) evaluateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EvaluateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	period, err := domain.ParsePeriod(req.Period)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	evaluation, err := h.budgetService.EvaluateCandidate(c.Request.Context(), userID, req.Category, period, req.Amount)
	if err != nil {
		if errors.Is(err, ledger.ErrAmbiguousBudget) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to evaluate budget", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate budget"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgetWarning": dto.ToBudgetEvaluationResponse(evaluation)})
}

// getBudget godoc
// @Summary Get a budget by ID
// @Tags budgets
// @Produce json
// @Param id path string true "Budget ID"
// @Success 200 {object} dto.BudgetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.GetBudgetByID(c.Request.Context(), userID, budgetID)
	if err != nil {
		respondBudgetError(c, logger, err, "Failed to retrieve budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// updateBudget godoc
// @Summary Update a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget ID"
// @Param budget body dto.UpdateBudgetRequest true "Fields to update"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Budget not found"
// @Failure 409 {object} map[string]string "Duplicate active budget"
// @Security BearerAuth
// @Router /budgets/{id} [put]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("id")

	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), userID, budgetID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			respondBudgetError(c, logger, err, "Failed to update budget")
		}
		return
	}

	logger.Info("Budget updated successfully", slog.String("budget_id", budgetID))
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// deactivateBudget godoc
// @Summary Deactivate a budget
// @Description Flips the active flag off. The budget row is kept.
// @Tags budgets
// @Param id path string true "Budget ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Budget already inactive"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id}/deactivate [post]
func (h *budgetHandler) deactivateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.budgetService.DeactivateBudget(c.Request.Context(), userID, budgetID); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondBudgetError(c, logger, err, "Failed to deactivate budget")
		return
	}

	logger.Info("Budget deactivated successfully", slog.String("budget_id", budgetID))
	c.Status(http.StatusNoContent)
}

// deleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Param id path string true "Budget ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), userID, budgetID); err != nil {
		respondBudgetError(c, logger, err, "Failed to delete budget")
		return
	}

	logger.Info("Budget deleted successfully", slog.String("budget_id", budgetID))
	c.Status(http.StatusNoContent)
}

func respondBudgetError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
