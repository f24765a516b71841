package handlers

import (
	portssvc "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/services"
	"github.com/TalalMnd/sim_sales_tracker/internal/middleware"
	"github.com/TalalMnd/sim_sales_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, services.Session)

	// Setup API v1 routes behind the session guard
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply SessionMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.SessionMiddleware(services.Session))

	// Delegate route registration to specific handlers, passing required services
	registerTransactionRoutes(v1, services.Ledger, services.Metrics)
	registerStockRoutes(v1, services.Ledger)
	registerFuelRoutes(v1, services.Ledger)
	registerMetricsRoutes(v1, services.Metrics)
	registerSettingsRoutes(v1, services.Ledger)
	registerSyncRoutes(v1, services.Sync)
}
