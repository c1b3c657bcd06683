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

// CreateUser inserts a user and, when a driver profile is given, its driver
// row in the same transaction.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User, driver *models.Driver) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (first_name, last_name, email, phone, national_id, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.NationalID,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if driver != nil {
		driver.UserID = user.ID
		driver.Status = models.DriverStatusPending
		driver.CreatedAt = now
		driver.UpdatedAt = now

		driverQuery := `
			INSERT INTO drivers (user_id, license_number, license_category, license_expiry,
				years_experience, owns_vehicle, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`
		err = tx.QueryRowContext(ctx, driverQuery,
			driver.UserID,
			driver.LicenseNumber,
			driver.LicenseCategory,
			driver.LicenseExpiry,
			driver.YearsExperience,
			driver.OwnsVehicle,
			driver.Status,
			driver.CreatedAt,
			driver.UpdatedAt,
		).Scan(&driver.ID)
		if err != nil {
			return fmt.Errorf("failed to insert driver profile: %w", err)
		}
		user.DriverInfo = driver
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// IdentityExists reports whether a user already holds the email or national
// ID.
func (r *UserRepo) IdentityExists(ctx context.Context, email, nationalID string) (bool, error) {
	var id int64
	query := `SELECT id FROM users WHERE email = $1 OR national_id = $2 LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, email, nationalID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check identity: %w", err)
	}
	return true, nil
}

// GetUserByEmail retrieves a user by stored (lowercase) email.
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, national_id, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by id, attaching the driver profile for
// drivers.
func (r *UserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, national_id, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Role == models.RoleDriver {
		driver, err := r.GetDriverByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		user.DriverInfo = driver
	}

	return &user, nil
}

// UpdateUserRole changes a user's role. Admin-only elevation path.
func (r *UserRepo) UpdateUserRole(ctx context.Context, userID int64, role string) error {
	query := `UPDATE users SET role = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, role, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
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
