package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rioatrato/transchoco/internal/pkg/middleware"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/support/handler/http"
)

// Handler coordinates the HTTP handlers for the support service
type Handler struct {
	supportHandler *http.SupportHandler
	cfg            *models.Config
	sessions       middleware.SessionChecker
}

// NewHandler creates and initializes all handlers
func NewHandler(
	supportHandler *http.SupportHandler,
	cfg *models.Config,
	sessions middleware.SessionChecker,
) *Handler {
	return &Handler{
		supportHandler: supportHandler,
		cfg:            cfg,
		sessions:       sessions,
	}
}

// RegisterRoutes registers the support routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.AuthMiddleware(h.cfg, h.sessions)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	group := e.Group("/support/conversations", auth)
	group.POST("", h.supportHandler.Start)
	group.GET("", h.supportHandler.List)
	group.GET("/:id", h.supportHandler.Get)
	group.POST("/:id/messages", h.supportHandler.SendMessage)
	group.POST("/:id/reopen", h.supportHandler.Reopen)

	group.POST("/:id/close", h.supportHandler.Close, adminOnly)
	group.PUT("/:id/priority", h.supportHandler.SetPriority, adminOnly)
	group.PUT("/:id/assign", h.supportHandler.Assign, adminOnly)
}
