package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rioatrato/transchoco/internal/pkg/logger"
	"github.com/rioatrato/transchoco/internal/pkg/middleware"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/internal/utils"
	"github.com/rioatrato/transchoco/services/users"
)

// AuthHandler handles registration and session endpoints
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	logger.Info("user registered",
		logger.Int64("user_id", user.ID),
		logger.String("role", user.Role))

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	auth, err := h.userUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", auth)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.userUC.Logout(c.Request().Context(), middleware.UserID(c)); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session closed", nil)
}

// Me handles GET /auth/me, echoing the session identity.
func (h *AuthHandler) Me(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"id":    middleware.UserID(c),
		"name":  c.Get(middleware.ContextUserName),
		"email": c.Get(middleware.ContextUserEmail),
		"role":  middleware.Role(c),
	})
}
