package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rioatrato/transchoco/internal/pkg/middleware"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/internal/utils"
	"github.com/rioatrato/transchoco/services/requests"
)

// RequestHandler handles the ad-hoc request board endpoints
type RequestHandler struct {
	requestUC requests.RequestUC
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestUC requests.RequestUC) *RequestHandler {
	return &RequestHandler{requestUC: requestUC}
}

// Create handles POST /requests
func (h *RequestHandler) Create(c echo.Context) error {
	var payload models.CreateRequestPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	req, err := h.requestUC.CreateRequest(c.Request().Context(), middleware.UserID(c), &payload)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Service request created", req)
}

// ListPending handles GET /requests/pending
func (h *RequestHandler) ListPending(c echo.Context) error {
	lat, lng, err := parseOptionalCoords(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid coordinates")
	}

	list, err := h.requestUC.ListPending(c.Request().Context(), middleware.UserID(c), lat, lng)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// ListMine handles GET /requests/mine
func (h *RequestHandler) ListMine(c echo.Context) error {
	list, err := h.requestUC.ListMine(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// ListAssigned handles GET /requests/assigned
func (h *RequestHandler) ListAssigned(c echo.Context) error {
	list, err := h.requestUC.ListAssigned(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// Accept handles POST /requests/:id/accept
func (h *RequestHandler) Accept(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	var payload models.AcceptRequestPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	req, err := h.requestUC.AcceptRequest(c.Request().Context(), id, middleware.UserID(c), payload.FinalPrice)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Request accepted", req)
}

// Start handles POST /requests/:id/start
func (h *RequestHandler) Start(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	if err := h.requestUC.StartRequest(c.Request().Context(), id, middleware.UserID(c)); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip started", nil)
}

// Complete handles POST /requests/:id/complete
func (h *RequestHandler) Complete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	if err := h.requestUC.CompleteRequest(c.Request().Context(), id, middleware.UserID(c)); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip completed", nil)
}

// Cancel handles POST /requests/:id/cancel
func (h *RequestHandler) Cancel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	err = h.requestUC.CancelRequest(c.Request().Context(), id, middleware.UserID(c), middleware.Role(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request cancelled", nil)
}

func parseOptionalCoords(c echo.Context) (*float64, *float64, error) {
	latStr := c.QueryParam("lat")
	lngStr := c.QueryParam("lng")
	if latStr == "" || lngStr == "" {
		return nil, nil, nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, nil, err
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, nil, err
	}
	return &lat, &lng, nil
}
