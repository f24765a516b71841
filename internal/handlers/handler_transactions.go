package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/TalalMnd/sim_sales_tracker/internal/apperrors"
	portssvc "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/services"
	"github.com/TalalMnd/sim_sales_tracker/internal/dto"
	"github.com/TalalMnd/sim_sales_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for sale transactions.
type transactionHandler struct {
	ledgerSvc  portssvc.LedgerSvcFacade
	metricsSvc portssvc.MetricsSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ledgerSvc portssvc.LedgerSvcFacade, metricsSvc portssvc.MetricsSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerSvc: ledgerSvc, metricsSvc: metricsSvc}
}

// registerTransactionRoutes registers all transaction-related routes.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerSvc portssvc.LedgerSvcFacade, metricsSvc portssvc.MetricsSvcFacade) {
	h := newTransactionHandler(ledgerSvc, metricsSvc)

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)                      // day navigator view
		txns.POST("", h.recordSale)                           // sale shortcuts
		txns.DELETE("/:transactionID", h.deleteTransaction)   // per-entry delete
	}
}

// parseDayParam reads the optional ?date=YYYY-MM-DD query parameter in the
// process-local zone, defaulting to today.
func parseDayParam(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

// listTransactions godoc
// @Summary List a day's transactions
// @Description Returns the transactions whose date falls on the given local calendar day (default today).
// @Tags transactions
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Login required"})
		return
	}

	day, err := parseDayParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return
	}

	summary, err := h.metricsSvc.DaySummary(c.Request.Context(), userID, day)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(summary.Transactions))
}

// recordSale godoc
// @Summary Record a sale
// @Description Records a sale (or an issue-typed failed attempt) and adjusts stock.
// @Tags transactions
// @Accept json
// @Produce json
// @Param sale body dto.RecordSaleRequest true "Sale details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Router /transactions [post]
func (h *transactionHandler) recordSale(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Login required"})
		return
	}

	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerSvc.RecordSale(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to record sale", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record sale"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction and restores the stock it consumed. Unknown IDs are ignored.
// @Tags transactions
// @Param transactionID path string true "Transaction ID"
// @Success 204
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Login required"})
		return
	}

	transactionID := c.Param("transactionID")
	if err := h.ledgerSvc.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete transaction"})
		return
	}

	c.Status(http.StatusNoContent)
}
