package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// GetDriverByUserID retrieves the driver profile for a user.
func (r *UserRepo) GetDriverByUserID(ctx context.Context, userID int64) (*models.Driver, error) {
	query := `
		SELECT id, user_id, license_number, license_category, license_expiry,
			years_experience, owns_vehicle, available, rating, completed_trips,
			status, created_at, updated_at
		FROM drivers
		WHERE user_id = $1
	`
	var driver models.Driver
	if err := r.db.GetContext(ctx, &driver, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// SetDriverAvailability toggles the availability flag for a driver user.
func (r *UserRepo) SetDriverAvailability(ctx context.Context, userID int64, available bool) error {
	query := `UPDATE drivers SET available = $1, updated_at = $2 WHERE user_id = $3`
	result, err := r.db.ExecContext(ctx, query, available, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update availability: %w", err)
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

// UpdateDriverStatus moves a driver through the approval state machine.
func (r *UserRepo) UpdateDriverStatus(ctx context.Context, driverID int64, status string) error {
	query := `UPDATE drivers SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, status, time.Now(), driverID)
	if err != nil {
		return fmt.Errorf("failed to update driver status: %w", err)
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
