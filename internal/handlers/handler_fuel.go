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

// fuelHandler handles HTTP requests for the fuel expense log.
type fuelHandler struct {
	ledgerSvc portssvc.LedgerSvcFacade
}

// newFuelHandler creates a new fuelHandler.
func newFuelHandler(ledgerSvc portssvc.LedgerSvcFacade) *fuelHandler {
	return &fuelHandler{ledgerSvc: ledgerSvc}
}

// registerFuelRoutes registers all fuel-related routes.
func registerFuelRoutes(rg *gin.RouterGroup, ledgerSvc portssvc.LedgerSvcFacade) {
	h := newFuelHandler(ledgerSvc)

	fuel := rg.Group("/fuel")
	{
		fuel.GET("", h.listFuel)
		fuel.POST("", h.recordFuel)
	}
}

// listFuel godoc
// @Summary List fuel entries
// @Description Returns the full fuel expense log, newest first.
// @Tags fuel
// @Produce json
// @Success 200 {object} dto.ListFuelResponse
// @Router /fuel [get]
func (h *fuelHandler) listFuel(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Login required"})
		return
	}

	ledger, err := h.ledgerSvc.GetLedger(c.Request.Context(), userID)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list fuel entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list fuel entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFuelResponse(ledger.FuelLog))
}

// recordFuel godoc
// @Summary Record a fuel expense
// @Description Appends a fuel purchase to the expense log.
// @Tags fuel
// @Accept json
// @Produce json
// @Param entry body dto.RecordFuelRequest true "Fuel entry details"
// @Success 201 {object} dto.FuelLogResponse
// @Failure 400 {object} ErrorResponse
// @Router /fuel [post]
func (h *fuelHandler) recordFuel(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Login required"})
		return
	}

	var req dto.RecordFuelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.ledgerSvc.RecordFuel(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to record fuel entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record fuel entry"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToFuelLogResponse(*entry))
}
