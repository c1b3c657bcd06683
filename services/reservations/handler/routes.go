package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rioatrato/transchoco/internal/pkg/middleware"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/reservations/handler/http"
)

// Handler coordinates the HTTP handlers for the reservations service
type Handler struct {
	reservationHandler *http.ReservationHandler
	cfg                *models.Config
	sessions           middleware.SessionChecker
}

// NewHandler creates and initializes all handlers
func NewHandler(
	reservationHandler *http.ReservationHandler,
	cfg *models.Config,
	sessions middleware.SessionChecker,
) *Handler {
	return &Handler{
		reservationHandler: reservationHandler,
		cfg:                cfg,
		sessions:           sessions,
	}
}

// RegisterRoutes registers the reservation routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.AuthMiddleware(h.cfg, h.sessions)

	group := e.Group("/reservations", auth)
	group.POST("", h.reservationHandler.Create)
	group.GET("/mine", h.reservationHandler.ListMine)
	group.GET("/:id", h.reservationHandler.GetByCode)
	group.POST("/:id/confirm", h.reservationHandler.Confirm)
	group.POST("/:id/pay", h.reservationHandler.Pay)
	group.POST("/:id/cancel", h.reservationHandler.Cancel)
}
