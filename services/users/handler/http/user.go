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

// UserHandler handles user profile and admin endpoints
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// GetUser handles GET /users/:id. Users may only fetch their own
// profile unless they hold the admin role.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if id != middleware.UserID(c) && !middleware.IsAdmin(c) {
		return utils.ForbiddenResponse(c, "Access denied")
	}

	user, err := h.userUC.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

// UpdateRole handles PUT /admin/users/:id/role
func (h *UserHandler) UpdateRole(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.UpdateUserRole(c.Request().Context(), id, req.Role); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	logger.Info("user role updated",
		logger.Int64("user_id", id),
		logger.String("role", req.Role),
		logger.Int64("admin_id", middleware.UserID(c)))

	return utils.SuccessResponse(c, http.StatusOK, "Role updated", nil)
}
