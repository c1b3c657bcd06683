package usecase

import (
	"context"
	"fmt"
	"strings"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/logger"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/internal/utils"
)

// ListRoutes returns the active route catalog.
func (u *CatalogUC) ListRoutes(ctx context.Context) ([]*models.Route, error) {
	return u.catalogRepo.ListActiveRoutes(ctx)
}

// CreateRoute validates and persists a new route (admin action).
func (u *CatalogUC) CreateRoute(ctx context.Context, payload *models.CreateRoutePayload) (*models.Route, error) {
	if payload.Origin == "" || payload.Destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", apperr.ErrValidation)
	}
	if !validRouteType(payload.RouteType) {
		return nil, fmt.Errorf("%w: invalid route_type", apperr.ErrValidation)
	}
	if payload.DistanceKm <= 0 || payload.DurationHours <= 0 {
		return nil, fmt.Errorf("%w: distance and duration must be positive", apperr.ErrValidation)
	}
	if payload.BasePrice < 0 {
		return nil, fmt.Errorf("%w: base_price must not be negative", apperr.ErrValidation)
	}

	route := &models.Route{
		Origin:        utils.SanitizeString(payload.Origin),
		Destination:   utils.SanitizeString(payload.Destination),
		DistanceKm:    payload.DistanceKm,
		DurationHours: payload.DurationHours,
		BasePrice:     payload.BasePrice,
		RouteType:     payload.RouteType,
		Description:   utils.SanitizeString(payload.Description),
	}
	if err := u.catalogRepo.CreateRoute(ctx, route); err != nil {
		return nil, err
	}

	logger.Info("route created",
		logger.Int64("route_id", route.ID),
		logger.String("origin", route.Origin),
		logger.String("destination", route.Destination))

	return route, nil
}

// UpdateRoute applies a partial update to a route (admin action).
func (u *CatalogUC) UpdateRoute(ctx context.Context, routeID int64, payload *models.UpdateRoutePayload) error {
	if payload.RouteType != nil && !validRouteType(*payload.RouteType) {
		return fmt.Errorf("%w: invalid route_type", apperr.ErrValidation)
	}
	return u.catalogRepo.UpdateRoute(ctx, routeID, payload)
}

// ListVehicles returns the fleet (admin view).
func (u *CatalogUC) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	return u.catalogRepo.ListVehicles(ctx)
}

// CreateVehicle validates and persists a new fleet entry (admin action).
func (u *CatalogUC) CreateVehicle(ctx context.Context, payload *models.CreateVehiclePayload) (*models.Vehicle, error) {
	plate := strings.ToUpper(utils.SanitizeString(payload.Plate))
	if plate == "" {
		return nil, fmt.Errorf("%w: plate is required", apperr.ErrValidation)
	}
	if !models.ValidVehicleType(payload.VehicleType) {
		return nil, fmt.Errorf("%w: invalid vehicle_type", apperr.ErrValidation)
	}
	if payload.Capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1", apperr.ErrValidation)
	}

	exists, err := u.catalogRepo.PlateExists(ctx, plate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: plate already registered", apperr.ErrInvalidState)
	}

	vehicle := &models.Vehicle{
		Plate:       plate,
		VehicleType: payload.VehicleType,
		Capacity:    payload.Capacity,
		Brand:       utils.SanitizeString(payload.Brand),
		Model:       utils.SanitizeString(payload.Model),
	}
	if payload.Year > 0 {
		vehicle.Year.Int64 = int64(payload.Year)
		vehicle.Year.Valid = true
	}

	if err := u.catalogRepo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}

	logger.Info("vehicle created",
		logger.Int64("vehicle_id", vehicle.ID),
		logger.String("plate", vehicle.Plate))

	return vehicle, nil
}

// SearchSchedules returns bookable departures for a route and date. Unknown
// routes are a not-found error rather than an empty list.
func (u *CatalogUC) SearchSchedules(ctx context.Context, routeID int64, date string) ([]*models.Schedule, error) {
	if _, err := u.catalogRepo.GetRouteByID(ctx, routeID); err != nil {
		return nil, err
	}
	return u.catalogRepo.SearchSchedules(ctx, routeID, date)
}

// CreateSchedule validates and persists a departure (admin action). Seats
// default to the vehicle capacity.
func (u *CatalogUC) CreateSchedule(ctx context.Context, payload *models.CreateSchedulePayload) (*models.Schedule, error) {
	if payload.DepartureAt.IsZero() || payload.ArrivalAt.IsZero() {
		return nil, fmt.Errorf("%w: departure_at and arrival_at are required", apperr.ErrValidation)
	}
	if !payload.ArrivalAt.After(payload.DepartureAt) {
		return nil, fmt.Errorf("%w: arrival_at must be after departure_at", apperr.ErrValidation)
	}
	if payload.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", apperr.ErrValidation)
	}

	if _, err := u.catalogRepo.GetRouteByID(ctx, payload.RouteID); err != nil {
		return nil, err
	}
	vehicle, err := u.catalogRepo.GetVehicleByID(ctx, payload.VehicleID)
	if err != nil {
		return nil, err
	}

	seats := payload.SeatsAvailable
	if seats == 0 {
		seats = vehicle.Capacity
	}
	if seats < 0 || seats > vehicle.Capacity {
		return nil, fmt.Errorf("%w: seats_available out of range for vehicle", apperr.ErrValidation)
	}

	schedule := &models.Schedule{
		RouteID:        payload.RouteID,
		VehicleID:      payload.VehicleID,
		DepartureAt:    payload.DepartureAt,
		ArrivalAt:      payload.ArrivalAt,
		Price:          payload.Price,
		SeatsAvailable: seats,
	}
	if err := u.catalogRepo.CreateSchedule(ctx, schedule); err != nil {
		return nil, err
	}

	logger.Info("schedule created",
		logger.Int64("schedule_id", schedule.ID),
		logger.Int64("route_id", schedule.RouteID),
		logger.Int("seats", schedule.SeatsAvailable))

	return schedule, nil
}

// UpdateScheduleStatus moves a departure through its lifecycle (admin
// action).
func (u *CatalogUC) UpdateScheduleStatus(ctx context.Context, scheduleID int64, status string) error {
	switch status {
	case models.ScheduleStatusScheduled, models.ScheduleStatusInProgress,
		models.ScheduleStatusCompleted, models.ScheduleStatusCancelled:
	default:
		return fmt.Errorf("%w: invalid schedule status", apperr.ErrValidation)
	}
	return u.catalogRepo.UpdateScheduleStatus(ctx, scheduleID, status)
}

func validRouteType(t string) bool {
	switch t {
	case models.RouteTypeUrban, models.RouteTypeIntercity, models.RouteTypeRural:
		return true
	}
	return false
}
