package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/models"
)

const requestColumns = `
	sr.id, sr.code, sr.passenger_id, sr.driver_id, sr.vehicle_type,
	sr.origin, sr.destination, sr.origin_lat, sr.origin_lng, sr.origin_zone,
	sr.service_date, sr.service_time, sr.passenger_count, sr.contact_phone,
	sr.notes, sr.estimated_price, sr.final_price, sr.status,
	sr.requested_at, sr.accepted_at
`

// CreateRequest inserts a new pending service request.
func (r *RequestRepo) CreateRequest(ctx context.Context, req *models.ServiceRequest) error {
	req.Status = models.RequestStatusPending
	req.RequestedAt = time.Now()

	query := `
		INSERT INTO service_requests (code, passenger_id, vehicle_type, origin, destination,
			origin_lat, origin_lng, origin_zone, service_date, service_time,
			passenger_count, contact_phone, notes, estimated_price, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		req.Code,
		req.PassengerID,
		req.VehicleType,
		req.Origin,
		req.Destination,
		req.OriginLat,
		req.OriginLng,
		req.OriginZone,
		req.ServiceDate,
		req.ServiceTime,
		req.PassengerCount,
		req.ContactPhone,
		req.Notes,
		req.EstimatedPrice,
		req.Status,
		req.RequestedAt,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("failed to insert service request: %w", err)
	}
	return nil
}

// CodeExists reports whether a request already carries the code.
func (r *RequestRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM service_requests WHERE code = $1`, code).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check request code: %w", err)
	}
	return true, nil
}

// GetRequestByID retrieves a request with passenger and driver contact info.
func (r *RequestRepo) GetRequestByID(ctx context.Context, id int64) (*models.ServiceRequest, error) {
	query := `
		SELECT ` + requestColumns + `,
			p.first_name || ' ' || p.last_name AS passenger_name,
			p.phone AS passenger_phone,
			COALESCE(d.first_name || ' ' || d.last_name, '') AS driver_name,
			COALESCE(d.phone, '') AS driver_phone
		FROM service_requests sr
		JOIN users p ON p.id = sr.passenger_id
		LEFT JOIN users d ON d.id = sr.driver_id
		WHERE sr.id = $1
	`
	var req models.ServiceRequest
	if err := r.db.GetContext(ctx, &req, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return &req, nil
}

// ListPending returns pending unassigned requests, newest first. When zones
// is non-empty the board is narrowed to requests whose pickup zone falls in
// the neighborhood; requests without coordinates are always shown.
func (r *RequestRepo) ListPending(ctx context.Context, zones []string) ([]*models.ServiceRequest, error) {
	query := `
		SELECT ` + requestColumns + `,
			p.first_name || ' ' || p.last_name AS passenger_name,
			p.phone AS passenger_phone
		FROM service_requests sr
		JOIN users p ON p.id = sr.passenger_id
		WHERE sr.status = $1 AND sr.driver_id IS NULL
	`
	args := []interface{}{models.RequestStatusPending}

	if len(zones) > 0 {
		inQuery, inArgs, err := sqlx.In(` AND (sr.origin_zone IS NULL OR sr.origin_zone IN (?))`, zones)
		if err != nil {
			return nil, fmt.Errorf("failed to build zone filter: %w", err)
		}
		query += r.db.Rebind(inQuery)
		args = append(args, inArgs...)
	}

	query += ` ORDER BY sr.requested_at DESC`

	requests := []*models.ServiceRequest{}
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return requests, nil
}

// ListByPassenger returns a passenger's own requests, newest first, with the
// assigned driver's contact when present.
func (r *RequestRepo) ListByPassenger(ctx context.Context, passengerID int64) ([]*models.ServiceRequest, error) {
	query := `
		SELECT ` + requestColumns + `,
			COALESCE(d.first_name || ' ' || d.last_name, '') AS driver_name,
			COALESCE(d.phone, '') AS driver_phone
		FROM service_requests sr
		LEFT JOIN users d ON d.id = sr.driver_id
		WHERE sr.passenger_id = $1
		ORDER BY sr.requested_at DESC
	`
	requests := []*models.ServiceRequest{}
	if err := r.db.SelectContext(ctx, &requests, query, passengerID); err != nil {
		return nil, fmt.Errorf("failed to list passenger requests: %w", err)
	}
	return requests, nil
}

// ListByDriver returns requests assigned to the driver, newest first.
func (r *RequestRepo) ListByDriver(ctx context.Context, driverUserID int64) ([]*models.ServiceRequest, error) {
	query := `
		SELECT ` + requestColumns + `,
			p.first_name || ' ' || p.last_name AS passenger_name,
			p.phone AS passenger_phone
		FROM service_requests sr
		JOIN users p ON p.id = sr.passenger_id
		WHERE sr.driver_id = $1
		ORDER BY sr.requested_at DESC
	`
	requests := []*models.ServiceRequest{}
	if err := r.db.SelectContext(ctx, &requests, query, driverUserID); err != nil {
		return nil, fmt.Errorf("failed to list driver requests: %w", err)
	}
	return requests, nil
}

// DriverApproved reports whether the user holds an approved driver profile.
func (r *RequestRepo) DriverApproved(ctx context.Context, driverUserID int64) (bool, error) {
	var status string
	err := r.db.QueryRowContext(ctx,
		`SELECT status FROM drivers WHERE user_id = $1`, driverUserID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check driver status: %w", err)
	}
	return status == models.DriverStatusApproved, nil
}

// AcceptRequest assigns the driver atomically. The WHERE clause is the
// concurrency guard: only one of several simultaneous acceptors can match
// the pending unassigned row.
func (r *RequestRepo) AcceptRequest(ctx context.Context, requestID, driverUserID int64, finalPrice int64) error {
	query := `
		UPDATE service_requests
		SET driver_id = $1, final_price = $2, status = $3, accepted_at = $4
		WHERE id = $5 AND status = $6 AND driver_id IS NULL
	`
	result, err := r.db.ExecContext(ctx, query,
		driverUserID,
		finalPrice,
		models.RequestStatusAccepted,
		time.Now(),
		requestID,
		models.RequestStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to accept request: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperr.ErrAlreadyTaken
	}
	return nil
}

// UpdateStatusByDriver transitions a request the driver owns from one status
// to another. Zero rows means the request is not in the expected state or
// not assigned to this driver.
func (r *RequestRepo) UpdateStatusByDriver(ctx context.Context, requestID, driverUserID int64, from, to string) error {
	query := `
		UPDATE service_requests
		SET status = $1
		WHERE id = $2 AND driver_id = $3 AND status = $4
	`
	result, err := r.db.ExecContext(ctx, query, to, requestID, driverUserID, from)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperr.ErrInvalidState
	}
	return nil
}

// CancelByPassenger cancels a still-pending request owned by the passenger.
func (r *RequestRepo) CancelByPassenger(ctx context.Context, requestID, passengerID int64) error {
	query := `
		UPDATE service_requests
		SET status = $1
		WHERE id = $2 AND passenger_id = $3 AND status = $4
	`
	result, err := r.db.ExecContext(ctx, query,
		models.RequestStatusCancelled, requestID, passengerID, models.RequestStatusPending)
	if err != nil {
		return fmt.Errorf("failed to cancel request: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperr.ErrInvalidState
	}
	return nil
}

// CancelByDriver cancels an accepted or in-progress request assigned to the
// driver. The request is not put back on the board.
func (r *RequestRepo) CancelByDriver(ctx context.Context, requestID, driverUserID int64) error {
	query := `
		UPDATE service_requests
		SET status = $1
		WHERE id = $2 AND driver_id = $3 AND status IN ($4, $5)
	`
	result, err := r.db.ExecContext(ctx, query,
		models.RequestStatusCancelled, requestID, driverUserID,
		models.RequestStatusAccepted, models.RequestStatusInProgress)
	if err != nil {
		return fmt.Errorf("failed to cancel request: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperr.ErrInvalidState
	}
	return nil
}

// IncrementCompletedTrips bumps the driver's completed trip counter.
func (r *RequestRepo) IncrementCompletedTrips(ctx context.Context, driverUserID int64) error {
	query := `UPDATE drivers SET completed_trips = completed_trips + 1, updated_at = $1 WHERE user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, time.Now(), driverUserID); err != nil {
		return fmt.Errorf("failed to increment completed trips: %w", err)
	}
	return nil
}
