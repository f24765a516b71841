package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/services"
	"github.com/TalalMnd/sim_sales_tracker/internal/dto"
	"github.com/TalalMnd/sim_sales_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// metricsHandler handles HTTP requests for derived dashboard numbers.
type metricsHandler struct {
	metricsSvc portssvc.MetricsSvcFacade
}

// newMetricsHandler creates a new metricsHandler.
func newMetricsHandler(metricsSvc portssvc.MetricsSvcFacade) *metricsHandler {
	return &metricsHandler{metricsSvc: metricsSvc}
}

// registerMetricsRoutes registers all metrics-related routes.
func registerMetricsRoutes(rg *gin.RouterGroup, metricsSvc portssvc.MetricsSvcFacade) {
	h := newMetricsHandler(metricsSvc)

	metrics := rg.Group("/metrics")
	{
		metrics.GET("/day", h.daySummary)
		metrics.GET("/weekly", h.weeklyMetrics)
	}
}

// daySummary godoc
// @Summary Get a day's summary
// @Description Returns the transactions and total for the given local calendar day (default today).
// @Tags metrics
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD)"
// @Success 200 {object} dto.DaySummaryResponse
// @Failure 400 {object} ErrorResponse
// @Router /metrics/day [get]
func (h *metricsHandler) daySummary(c *gin.Context) {
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
		logger.Error("Failed to compute day summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute day summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDaySummaryResponse(summary))
}

// weeklyMetrics godoc
// @Summary Get weekly progress
// @Description Returns sales since the most recent Sunday measured against the weekly target.
// @Tags metrics
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD)"
// @Success 200 {object} dto.WeeklyMetricsResponse
// @Failure 400 {object} ErrorResponse
// @Router /metrics/weekly [get]
func (h *metricsHandler) weeklyMetrics(c *gin.Context) {
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

	metrics, err := h.metricsSvc.Weekly(c.Request.Context(), userID, day)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to compute weekly metrics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute weekly metrics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWeeklyMetricsResponse(metrics))
}
