package middleware

import (
	"context"
	"log/slog"
	"net/http"

	portssvc "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// SessionMiddleware creates a Gin middleware handler that resolves the active
// session. The session is server-side and single-seat: the user restored from
// the persisted identifier slot (or a later login) is the one acting on every
// request. Requests without an active session are rejected with 401.
func SessionMiddleware(sessionSvc portssvc.SessionSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		user, err := sessionSvc.Current(c.Request.Context())
		if err != nil {
			logger.Warn("Request without active session")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}

		// Store the user ID in the context (using standard context)
		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, user.ID)

		// Add user ID to the logger
		enrichedLogger := logger.With(slog.String("user_id", user.ID))

		// Store the *enriched* logger back into the standard context
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)

		// Update the request context
		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)

		c.Next()
	}
}
