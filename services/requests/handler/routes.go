package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rioatrato/transchoco/internal/pkg/middleware"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/requests/handler/http"
)

// Handler coordinates the HTTP handlers for the requests service
type Handler struct {
	requestHandler *http.RequestHandler
	cfg            *models.Config
	sessions       middleware.SessionChecker
}

// NewHandler creates and initializes all handlers
func NewHandler(
	requestHandler *http.RequestHandler,
	cfg *models.Config,
	sessions middleware.SessionChecker,
) *Handler {
	return &Handler{
		requestHandler: requestHandler,
		cfg:            cfg,
		sessions:       sessions,
	}
}

// RegisterRoutes registers the request board routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.AuthMiddleware(h.cfg, h.sessions)

	group := e.Group("/requests", auth)

	// Passenger side
	group.POST("", h.requestHandler.Create, middleware.RequireRole(models.RolePassenger))
	group.GET("/mine", h.requestHandler.ListMine, middleware.RequireRole(models.RolePassenger))

	// Driver side
	group.GET("/pending", h.requestHandler.ListPending, middleware.RequireRole(models.RoleDriver))
	group.GET("/assigned", h.requestHandler.ListAssigned, middleware.RequireRole(models.RoleDriver))
	group.POST("/:id/accept", h.requestHandler.Accept, middleware.RequireRole(models.RoleDriver))
	group.POST("/:id/start", h.requestHandler.Start, middleware.RequireRole(models.RoleDriver))
	group.POST("/:id/complete", h.requestHandler.Complete, middleware.RequireRole(models.RoleDriver))

	// Either party
	group.POST("/:id/cancel", h.requestHandler.Cancel)
}
