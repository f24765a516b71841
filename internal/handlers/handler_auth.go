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

// authHandler handles session-related requests.
type authHandler struct {
	sessionSvc portssvc.SessionSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(sessionSvc portssvc.SessionSvcFacade) *authHandler {
	return &authHandler{sessionSvc: sessionSvc}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the routes for authentication. They stay outside
// the session guard: login must work for Anonymous callers.
func registerAuthRoutes(r *gin.Engine, sessionSvc portssvc.SessionSvcFacade) {
	h := newAuthHandler(sessionSvc)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/logout", h.logout)
		auth.GET("/session", h.session)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user against the stored credential pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.sessionSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{User: dto.ToUserResponse(user)})
}

// logout godoc
// @Summary Log out
// @Description Clears the persisted session identifier.
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	if err := h.sessionSvc.Logout(c.Request.Context()); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Logout failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Logout failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

// session godoc
// @Summary Current session
// @Description Returns the authenticated user, if any.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/session [get]
func (h *authHandler) session(c *gin.Context) {
	user, err := h.sessionSvc.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No active session"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
