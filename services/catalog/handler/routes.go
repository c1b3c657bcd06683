package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rioatrato/transchoco/internal/pkg/middleware"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/catalog/handler/http"
)

// Handler coordinates the HTTP handlers for the catalog service
type Handler struct {
	catalogHandler *http.CatalogHandler
	cfg            *models.Config
	sessions       middleware.SessionChecker
}

// NewHandler creates and initializes all handlers
func NewHandler(
	catalogHandler *http.CatalogHandler,
	cfg *models.Config,
	sessions middleware.SessionChecker,
) *Handler {
	return &Handler{
		catalogHandler: catalogHandler,
		cfg:            cfg,
		sessions:       sessions,
	}
}

// RegisterRoutes registers the catalog routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.AuthMiddleware(h.cfg, h.sessions)

	// Public catalog browsing
	e.GET("/routes", h.catalogHandler.ListRoutes)
	e.GET("/routes/:id/schedules", h.catalogHandler.SearchSchedules)

	// Admin catalog management
	admin := e.Group("/admin", auth, middleware.RequireRole(models.RoleAdmin))
	admin.POST("/routes", h.catalogHandler.CreateRoute)
	admin.PUT("/routes/:id", h.catalogHandler.UpdateRoute)
	admin.GET("/vehicles", h.catalogHandler.ListVehicles)
	admin.POST("/vehicles", h.catalogHandler.CreateVehicle)
	admin.POST("/schedules", h.catalogHandler.CreateSchedule)
	admin.PUT("/schedules/:id/status", h.catalogHandler.UpdateScheduleStatus)
}
