package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rioatrato/transchoco/internal/pkg/middleware"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/internal/utils"
	"github.com/rioatrato/transchoco/services/reservations"
)

// ReservationHandler handles seat reservation endpoints
type ReservationHandler struct {
	reservationUC reservations.ReservationUC
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationUC reservations.ReservationUC) *ReservationHandler {
	return &ReservationHandler{reservationUC: reservationUC}
}

// Create handles POST /reservations
func (h *ReservationHandler) Create(c echo.Context) error {
	var payload models.CreateReservationPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	res, err := h.reservationUC.CreateReservation(c.Request().Context(), middleware.UserID(c), &payload)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Reservation created", res)
}

// ListMine handles GET /reservations/mine
func (h *ReservationHandler) ListMine(c echo.Context) error {
	list, err := h.reservationUC.ListMine(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// GetByCode handles GET /reservations/:id, where the path segment is the
// booking code. The param shares its name with the lifecycle routes because
// the router requires one name per position.
func (h *ReservationHandler) GetByCode(c echo.Context) error {
	code := c.Param("id")

	res, err := h.reservationUC.GetByCode(c.Request().Context(), code,
		middleware.UserID(c), middleware.Role(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", res)
}

// Confirm handles POST /reservations/:id/confirm
func (h *ReservationHandler) Confirm(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	if err := h.reservationUC.ConfirmReservation(c.Request().Context(), id, middleware.UserID(c)); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reservation confirmed", nil)
}

// Pay handles POST /reservations/:id/pay
func (h *ReservationHandler) Pay(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	if err := h.reservationUC.PayReservation(c.Request().Context(), id, middleware.UserID(c)); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reservation paid", nil)
}

// Cancel handles POST /reservations/:id/cancel
func (h *ReservationHandler) Cancel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	if err := h.reservationUC.CancelReservation(c.Request().Context(), id, middleware.UserID(c)); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reservation cancelled", nil)
}
