package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rioatrato/transchoco/internal/pkg/logger"
	"github.com/rioatrato/transchoco/internal/pkg/middleware"
	"github.com/rioatrato/transchoco/internal/utils"
	"github.com/rioatrato/transchoco/services/users"
)

// DriverHandler handles driver profile endpoints
type DriverHandler struct {
	userUC users.UserUC
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(userUC users.UserUC) *DriverHandler {
	return &DriverHandler{userUC: userUC}
}

// Me handles GET /drivers/me
func (h *DriverHandler) Me(c echo.Context) error {
	driver, err := h.userUC.GetDriverProfile(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", driver)
}

// SetAvailability handles PUT /drivers/availability
func (h *DriverHandler) SetAvailability(c echo.Context) error {
	var req struct {
		Available bool `json:"available"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	userID := middleware.UserID(c)
	if err := h.userUC.SetDriverAvailability(c.Request().Context(), userID, req.Available); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	logger.Info("driver availability updated",
		logger.Int64("user_id", userID),
		logger.Bool("available", req.Available))

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", nil)
}

// UpdateStatus handles PUT /admin/drivers/:id/status
func (h *DriverHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.UpdateDriverStatus(c.Request().Context(), id, req.Status); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver status updated", nil)
}
