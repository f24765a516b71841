package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/TalalMnd/sim_sales_tracker/internal/apperrors"
	portssvc "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/services"
	"github.com/TalalMnd/sim_sales_tracker/internal/dto"
	"github.com/TalalMnd/sim_sales_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// stockHandler handles HTTP requests for SIM inventory.
type stockHandler struct {
	ledgerSvc portssvc.LedgerSvcFacade
}

// newStockHandler creates a new stockHandler.
func newStockHandler(ledgerSvc portssvc.LedgerSvcFacade) *stockHandler {
	return &stockHandler{ledgerSvc: ledgerSvc}
}

// registerStockRoutes registers all stock-related routes.
func registerStockRoutes(rg *gin.RouterGroup, ledgerSvc portssvc.LedgerSvcFacade) {
	h := newStockHandler(ledgerSvc)

	stock := rg.Group("/stock")
	{
		stock.GET("", h.getStock)
		stock.POST("/adjust", h.adjustStock)
		stock.POST("/damaged", h.adjustDamaged)
	}
}

// getStock godoc
// @Summary Get current stock
// @Description Returns per-type counts, damaged counts and the manual adjustment log.
// @Tags stock
// @Produce json
// @Success 200 {object} dto.StockResponse
// @Router /stock [get]
func (h *stockHandler) getStock(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Login required"})
		return
	}

	ledger, err := h.ledgerSvc.GetLedger(c.Request.Context(), userID)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get stock", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get stock"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStockResponse(ledger))
}

// adjustStock godoc
// @Summary Adjust stock
// @Description Applies a manual restock or correction delta for a stocked SIM type.
// @Tags stock
// @Accept json
// @Produce json
// @Param adjustment body dto.AdjustStockRequest true "Adjustment details"
// @Success 200 {object} dto.StockResponse
// @Failure 400 {object} ErrorResponse
// @Router /stock/adjust [post]
func (h *stockHandler) adjustStock(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Login required"})
		return
	}

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ledger, err := h.ledgerSvc.AdjustStock(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to adjust stock", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to adjust stock"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStockResponse(ledger))
}

// adjustDamaged godoc
// @Summary Record damaged SIMs
// @Description Adjusts the damaged counter for a stocked SIM type.
// @Tags stock
// @Accept json
// @Produce json
// @Param adjustment body dto.AdjustDamagedRequest true "Adjustment details"
// @Success 200 {object} dto.StockResponse
// @Failure 400 {object} ErrorResponse
// @Router /stock/damaged [post]
func (h *stockHandler) adjustDamaged(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Login required"})
		return
	}

	var req dto.AdjustDamagedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ledger, err := h.ledgerSvc.AdjustDamaged(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to record damaged SIMs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record damaged SIMs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStockResponse(ledger))
}
