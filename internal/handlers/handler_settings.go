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

// settingsHandler handles HTTP requests for per-user ledger settings.
type settingsHandler struct {
	ledgerSvc portssvc.LedgerSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(ledgerSvc portssvc.LedgerSvcFacade) *settingsHandler {
	return &settingsHandler{ledgerSvc: ledgerSvc}
}

// registerSettingsRoutes registers all settings-related routes.
func registerSettingsRoutes(rg *gin.RouterGroup, ledgerSvc portssvc.LedgerSvcFacade) {
	h := newSettingsHandler(ledgerSvc)

	settings := rg.Group("/settings")
	{
		settings.PUT("/weekly-target", h.updateWeeklyTarget)
	}
}

// updateWeeklyTarget godoc
// @Summary Update the weekly target
// @Description Sets the weekly sales goal used by the progress gauge.
// @Tags settings
// @Accept json
// @Param target body dto.UpdateWeeklyTargetRequest true "Target details"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /settings/weekly-target [put]
func (h *settingsHandler) updateWeeklyTarget(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Login required"})
		return
	}

	var req dto.UpdateWeeklyTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.ledgerSvc.UpdateWeeklyTarget(c.Request.Context(), userID, req); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to update weekly target", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update weekly target"})
		return
	}

	c.Status(http.StatusNoContent)
}
