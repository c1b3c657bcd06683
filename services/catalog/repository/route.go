package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// ListActiveRoutes returns the active routes ordered by origin then
// destination.
func (r *CatalogRepo) ListActiveRoutes(ctx context.Context) ([]*models.Route, error) {
	query := `
		SELECT id, origin, destination, distance_km, duration_hours, base_price,
			route_type, description, active, created_at
		FROM routes
		WHERE active = TRUE
		ORDER BY origin, destination
	`
	routes := []*models.Route{}
	if err := r.db.SelectContext(ctx, &routes, query); err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

// GetRouteByID retrieves one route regardless of active flag.
func (r *CatalogRepo) GetRouteByID(ctx context.Context, id int64) (*models.Route, error) {
	query := `
		SELECT id, origin, destination, distance_km, duration_hours, base_price,
			route_type, description, active, created_at
		FROM routes
		WHERE id = $1
	`
	var route models.Route
	if err := r.db.GetContext(ctx, &route, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}
	return &route, nil
}

// CreateRoute inserts a new active route.
func (r *CatalogRepo) CreateRoute(ctx context.Context, route *models.Route) error {
	route.Active = true
	route.CreatedAt = time.Now()

	query := `
		INSERT INTO routes (origin, destination, distance_km, duration_hours,
			base_price, route_type, description, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		route.Origin,
		route.Destination,
		route.DistanceKm,
		route.DurationHours,
		route.BasePrice,
		route.RouteType,
		route.Description,
		route.Active,
		route.CreatedAt,
	).Scan(&route.ID)
	if err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}
	return nil
}

// UpdateRoute applies the non-nil fields of the payload.
func (r *CatalogRepo) UpdateRoute(ctx context.Context, routeID int64, payload *models.UpdateRoutePayload) error {
	sets := []string{}
	args := []interface{}{}
	idx := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if payload.DistanceKm != nil {
		addSet("distance_km", *payload.DistanceKm)
	}
	if payload.DurationHours != nil {
		addSet("duration_hours", *payload.DurationHours)
	}
	if payload.BasePrice != nil {
		addSet("base_price", *payload.BasePrice)
	}
	if payload.RouteType != nil {
		addSet("route_type", *payload.RouteType)
	}
	if payload.Description != nil {
		addSet("description", *payload.Description)
	}
	if payload.Active != nil {
		addSet("active", *payload.Active)
	}

	if len(sets) == 0 {
		return fmt.Errorf("%w: no fields to update", apperr.ErrValidation)
	}

	args = append(args, routeID)
	query := fmt.Sprintf("UPDATE routes SET %s WHERE id = $%d", strings.Join(sets, ", "), idx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update route: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
