package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rioatrato/transchoco/internal/pkg/middleware"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/internal/utils"
	"github.com/rioatrato/transchoco/services/support"
)

// SupportHandler handles support conversation endpoints
type SupportHandler struct {
	supportUC support.SupportUC
}

// NewSupportHandler creates a new support handler
func NewSupportHandler(supportUC support.SupportUC) *SupportHandler {
	return &SupportHandler{supportUC: supportUC}
}

// Start handles POST /support/conversations
func (h *SupportHandler) Start(c echo.Context) error {
	var payload models.StartConversationPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	conv, err := h.supportUC.StartConversation(c.Request().Context(), middleware.UserID(c), &payload)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Conversation started", conv)
}

// List handles GET /support/conversations. Admins may filter with the
// status and priority query params; other callers see their own threads.
func (h *SupportHandler) List(c echo.Context) error {
	filter := support.ConversationFilter{
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
	}

	list, err := h.supportUC.ListConversations(c.Request().Context(),
		middleware.UserID(c), middleware.Role(c), filter)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// Get handles GET /support/conversations/:id
func (h *SupportHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid conversation ID")
	}

	conv, messages, err := h.supportUC.GetConversation(c.Request().Context(), id,
		middleware.UserID(c), middleware.Role(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", echo.Map{
		"conversation": conv,
		"messages":     messages,
	})
}

// SendMessage handles POST /support/conversations/:id/messages
func (h *SupportHandler) SendMessage(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid conversation ID")
	}

	var payload models.SendMessagePayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	msg, err := h.supportUC.SendMessage(c.Request().Context(), id,
		middleware.UserID(c), middleware.Role(c), payload.Message)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Message sent", msg)
}

// Close handles POST /support/conversations/:id/close
func (h *SupportHandler) Close(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid conversation ID")
	}

	if err := h.supportUC.CloseConversation(c.Request().Context(), id, middleware.UserID(c)); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Conversation closed", nil)
}

// Reopen handles POST /support/conversations/:id/reopen
func (h *SupportHandler) Reopen(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid conversation ID")
	}

	if err := h.supportUC.ReopenConversation(c.Request().Context(), id,
		middleware.UserID(c), middleware.Role(c)); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Conversation reopened", nil)
}

// SetPriority handles PUT /support/conversations/:id/priority
func (h *SupportHandler) SetPriority(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid conversation ID")
	}

	var payload struct {
		Priority string `json:"priority"`
	}
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.supportUC.SetPriority(c.Request().Context(), id, payload.Priority); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Priority updated", nil)
}

// Assign handles PUT /support/conversations/:id/assign
func (h *SupportHandler) Assign(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid conversation ID")
	}

	var payload struct {
		AdminID int64 `json:"admin_id"`
	}
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.supportUC.AssignAdmin(c.Request().Context(), id, payload.AdminID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Conversation assigned", nil)
}
