package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/services"
	"github.com/TalalMnd/sim_sales_tracker/internal/dto"
	"github.com/TalalMnd/sim_sales_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// syncHandler handles HTTP requests for mirror synchronization.
type syncHandler struct {
	syncSvc portssvc.SyncSvcFacade
}

// newSyncHandler creates a new syncHandler.
func newSyncHandler(syncSvc portssvc.SyncSvcFacade) *syncHandler {
	return &syncHandler{syncSvc: syncSvc}
}

// registerSyncRoutes registers all sync-related routes.
func registerSyncRoutes(rg *gin.RouterGroup, syncSvc portssvc.SyncSvcFacade) {
	h := newSyncHandler(syncSvc)

	sync := rg.Group("/sync")
	{
		sync.POST("/refresh", h.refresh)
		sync.GET("/status", h.status)
	}
}

// refresh godoc
// @Summary Refresh from the mirror
// @Description Pulls the remote blob and replaces local state when valid. A failed pull is reported as refreshed=false, never as an error.
// @Tags sync
// @Produce json
// @Success 200 {object} dto.RefreshResponse
// @Router /sync/refresh [post]
func (h *syncHandler) refresh(c *gin.Context) {
	err := h.syncSvc.Refresh(c.Request.Context())
	if err != nil {
		// Offline or unreachable mirror is a normal condition, the local
		// state stays authoritative.
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Mirror refresh failed", slog.String("error", err.Error()))
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{Refreshed: err == nil})
}

// status godoc
// @Summary Get sync status
// @Description Reports whether an upload to the mirror is pending or in flight.
// @Tags sync
// @Produce json
// @Success 200 {object} dto.SyncStatusResponse
// @Router /sync/status [get]
func (h *syncHandler) status(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SyncStatusResponse{Status: string(h.syncSvc.Status())})
}
