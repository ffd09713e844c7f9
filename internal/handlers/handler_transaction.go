package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/arionfin/arion-backend/internal/apperrors"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/arionfin/arion-backend/internal/dto"
	"github.com/arionfin/arion-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a new transaction
// @Description Records an income or expense. A new expense is evaluated against the category's active budget for its month; an unconfirmed breach returns 409 with the evaluation so the client can ask for confirmation.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CreateTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} dto.CreateTransactionResponse "Budget limit breached, confirmation required"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, evaluation, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			// The evaluation tells the client what would be breached.
			c.JSON(http.StatusConflict, gin.H{
				"error":         "Budget limit exceeded, confirmation required",
				"budgetWarning": dto.ToBudgetEvaluationResponse(evaluation),
			})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		}
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Transaction:   dto.ToTransactionResponse(txn),
		BudgetWarning: dto.ToBudgetEvaluationResponse(evaluation),
	})
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the logged-in user's transactions, optionally filtered by date range, category and type
// @Tags transactions
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param category query string false "Category filter"
// @Param type query string false "Type filter (INCOME or EXPENSE)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, transactionID)
	if err != nil {
		respondTransactionError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Edits a transaction's fields. Edits are not re-evaluated against budgets.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, transactionID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondTransactionError(c, logger, err, "Failed to update transaction")
		return
	}

	logger.Info("Transaction updated successfully", slog.String("transaction_id", transactionID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondTransactionError(c, logger, err, "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted successfully", slog.String("transaction_id", transactionID))
	c.Status(http.StatusNoContent)
}

func respondTransactionError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
