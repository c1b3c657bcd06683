package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rioatrato/transchoco/internal/pkg/middleware"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/users/handler/http"
)

// Handler coordinates the HTTP handlers for the users service
type Handler struct {
	authHandler   *http.AuthHandler
	userHandler   *http.UserHandler
	driverHandler *http.DriverHandler
	cfg           *models.Config
	sessions      middleware.SessionChecker
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	userHandler *http.UserHandler,
	driverHandler *http.DriverHandler,
	cfg *models.Config,
	sessions middleware.SessionChecker,
) *Handler {
	return &Handler{
		authHandler:   authHandler,
		userHandler:   userHandler,
		driverHandler: driverHandler,
		cfg:           cfg,
		sessions:      sessions,
	}
}

// RegisterRoutes registers all user-facing and admin routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.AuthMiddleware(h.cfg, h.sessions)

	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)

	// Session routes
	authGroup.POST("/logout", h.authHandler.Logout, auth)
	authGroup.GET("/me", h.authHandler.Me, auth)

	protected := e.Group("", auth)

	// User routes
	userGroup := protected.Group("/users")
	userGroup.GET("/:id", h.userHandler.GetUser)

	// Driver routes
	driverGroup := protected.Group("/drivers", middleware.RequireRole(models.RoleDriver))
	driverGroup.GET("/me", h.driverHandler.Me)
	driverGroup.PUT("/availability", h.driverHandler.SetAvailability)

	// Admin routes
	adminGroup := protected.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	adminGroup.PUT("/users/:id/role", h.userHandler.UpdateRole)
	adminGroup.PUT("/drivers/:id/status", h.driverHandler.UpdateStatus)
}
