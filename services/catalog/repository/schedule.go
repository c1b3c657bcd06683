package repository

import (
	"context"
	"fmt"
	"time"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// SearchSchedules returns scheduled departures with remaining seats on the
// route for the given calendar date, soonest first.
func (r *CatalogRepo) SearchSchedules(ctx context.Context, routeID int64, date string) ([]*models.Schedule, error) {
	query := `
		SELECT s.id, s.route_id, s.vehicle_id, s.departure_at, s.arrival_at,
			s.price, s.seats_available, s.status, s.created_at,
			v.plate, v.vehicle_type, v.brand, v.model,
			r.origin, r.destination, r.duration_hours
		FROM schedules s
		JOIN vehicles v ON v.id = s.vehicle_id
		JOIN routes r ON r.id = s.route_id
		WHERE s.route_id = $1
			AND s.status = $2
			AND s.seats_available > 0
			AND s.departure_at >= $3
			AND s.departure_at < $4
		ORDER BY s.departure_at
	`
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperr.ErrValidation)
	}

	schedules := []*models.Schedule{}
	err = r.db.SelectContext(ctx, &schedules, query,
		routeID, models.ScheduleStatusScheduled, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to search schedules: %w", err)
	}
	return schedules, nil
}

// CreateSchedule inserts a new departure.
func (r *CatalogRepo) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	schedule.Status = models.ScheduleStatusScheduled
	schedule.CreatedAt = time.Now()

	query := `
		INSERT INTO schedules (route_id, vehicle_id, departure_at, arrival_at,
			price, seats_available, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		schedule.RouteID,
		schedule.VehicleID,
		schedule.DepartureAt,
		schedule.ArrivalAt,
		schedule.Price,
		schedule.SeatsAvailable,
		schedule.Status,
		schedule.CreatedAt,
	).Scan(&schedule.ID)
	if err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}
	return nil
}

// UpdateScheduleStatus moves a departure through its lifecycle.
func (r *CatalogRepo) UpdateScheduleStatus(ctx context.Context, scheduleID int64, status string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE schedules SET status = $1 WHERE id = $2`, status, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to update schedule status: %w", err)
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
