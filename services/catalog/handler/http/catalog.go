package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/internal/utils"
	"github.com/rioatrato/transchoco/services/catalog"
)

// CatalogHandler handles route, vehicle and schedule endpoints
type CatalogHandler struct {
	catalogUC catalog.CatalogUC
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUC catalog.CatalogUC) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// ListRoutes handles GET /routes
func (h *CatalogHandler) ListRoutes(c echo.Context) error {
	routes, err := h.catalogUC.ListRoutes(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", routes)
}

// CreateRoute handles POST /admin/routes
func (h *CatalogHandler) CreateRoute(c echo.Context) error {
	var payload models.CreateRoutePayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	route, err := h.catalogUC.CreateRoute(c.Request().Context(), &payload)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Route created", route)
}

// UpdateRoute handles PUT /admin/routes/:id
func (h *CatalogHandler) UpdateRoute(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid route ID")
	}

	var payload models.UpdateRoutePayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.catalogUC.UpdateRoute(c.Request().Context(), id, &payload); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route updated", nil)
}

// ListVehicles handles GET /admin/vehicles
func (h *CatalogHandler) ListVehicles(c echo.Context) error {
	vehicles, err := h.catalogUC.ListVehicles(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", vehicles)
}

// CreateVehicle handles POST /admin/vehicles
func (h *CatalogHandler) CreateVehicle(c echo.Context) error {
	var payload models.CreateVehiclePayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	vehicle, err := h.catalogUC.CreateVehicle(c.Request().Context(), &payload)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Vehicle created", vehicle)
}

// SearchSchedules handles GET /routes/:id/schedules?date=YYYY-MM-DD
func (h *CatalogHandler) SearchSchedules(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid route ID")
	}

	date := c.QueryParam("date")
	if date == "" {
		return utils.BadRequestResponse(c, "Query parameter date is required")
	}

	schedules, err := h.catalogUC.SearchSchedules(c.Request().Context(), id, date)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", schedules)
}

// CreateSchedule handles POST /admin/schedules
func (h *CatalogHandler) CreateSchedule(c echo.Context) error {
	var payload models.CreateSchedulePayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	schedule, err := h.catalogUC.CreateSchedule(c.Request().Context(), &payload)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Schedule created", schedule)
}

// UpdateScheduleStatus handles PUT /admin/schedules/:id/status
func (h *CatalogHandler) UpdateScheduleStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid schedule ID")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.catalogUC.UpdateScheduleStatus(c.Request().Context(), id, req.Status); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Schedule status updated", nil)
}
