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

const reservationColumns = `
	rv.id, rv.code, rv.user_id, rv.schedule_id, rv.seat_number,
	rv.passenger_name, rv.passenger_national_id, rv.passenger_phone,
	rv.passenger_email, rv.total_price, rv.status, rv.notes,
	rv.reserved_at, rv.expires_at
`

// CreateReservation takes one seat off the schedule and inserts the
// reservation in a single transaction. The seat decrement is the
// concurrency guard: when two bookings race for the last seat only one
// UPDATE matches, and the loser's transaction rolls back with no
// reservation row written.
func (r *ReservationRepo) CreateReservation(ctx context.Context, res *models.Reservation) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	seatQuery := `
		UPDATE schedules
		SET seats_available = seats_available - 1
		WHERE id = $1 AND status = $2 AND seats_available > 0
		RETURNING price
	`
	var price int64
	err = tx.QueryRowContext(ctx, seatQuery, res.ScheduleID, models.ScheduleStatusScheduled).Scan(&price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrUnavailable
		}
		return fmt.Errorf("failed to take seat: %w", err)
	}

	now := time.Now()
	res.TotalPrice = price
	res.Status = models.ReservationStatusPending
	res.ReservedAt = now
	res.ExpiresAt = now.Add(models.ReservationHoldDuration)

	insertQuery := `
		INSERT INTO reservations (code, user_id, schedule_id, seat_number,
			passenger_name, passenger_national_id, passenger_phone, passenger_email,
			total_price, status, notes, reserved_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, insertQuery,
		res.Code,
		res.UserID,
		res.ScheduleID,
		res.SeatNumber,
		res.PassengerName,
		res.PassengerNationalID,
		res.PassengerPhone,
		res.PassengerEmail,
		res.TotalPrice,
		res.Status,
		res.Notes,
		res.ReservedAt,
		res.ExpiresAt,
	).Scan(&res.ID)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CodeExists reports whether a reservation already carries the code.
func (r *ReservationRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM reservations WHERE code = $1`, code).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check reservation code: %w", err)
	}
	return true, nil
}

// GetReservationByID retrieves one reservation with trip info.
func (r *ReservationRepo) GetReservationByID(ctx context.Context, id int64) (*models.Reservation, error) {
	return r.getReservation(ctx, `rv.id = $1`, id)
}

// GetReservationByCode retrieves one reservation by booking code.
func (r *ReservationRepo) GetReservationByCode(ctx context.Context, code string) (*models.Reservation, error) {
	return r.getReservation(ctx, `rv.code = $1`, code)
}

func (r *ReservationRepo) getReservation(ctx context.Context, where string, arg interface{}) (*models.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `,
			rt.origin, rt.destination, s.departure_at
		FROM reservations rv
		JOIN schedules s ON s.id = rv.schedule_id
		JOIN routes rt ON rt.id = s.route_id
		WHERE ` + where

	var res models.Reservation
	if err := r.db.GetContext(ctx, &res, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return &res, nil
}

// ListByUser returns a user's reservations, newest first.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `,
			rt.origin, rt.destination, s.departure_at
		FROM reservations rv
		JOIN schedules s ON s.id = rv.schedule_id
		JOIN routes rt ON rt.id = s.route_id
		WHERE rv.user_id = $1
		ORDER BY rv.reserved_at DESC
	`
	reservations := []*models.Reservation{}
	if err := r.db.SelectContext(ctx, &reservations, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// UpdateStatusConditional transitions a reservation the user owns from one
// status to another.
func (r *ReservationRepo) UpdateStatusConditional(ctx context.Context, reservationID, userID int64, from, to string) error {
	query := `
		UPDATE reservations
		SET status = $1
		WHERE id = $2 AND user_id = $3 AND status = $4
	`
	result, err := r.db.ExecContext(ctx, query, to, reservationID, userID, from)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
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

// CancelReservation cancels a pending or confirmed reservation and returns
// the seat to the schedule, both in one transaction.
func (r *ReservationRepo) CancelReservation(ctx context.Context, reservationID, userID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	cancelQuery := `
		UPDATE reservations
		SET status = $1
		WHERE id = $2 AND user_id = $3 AND status IN ($4, $5)
		RETURNING schedule_id
	`
	var scheduleID int64
	err = tx.QueryRowContext(ctx, cancelQuery,
		models.ReservationStatusCancelled, reservationID, userID,
		models.ReservationStatusPending, models.ReservationStatusConfirmed,
	).Scan(&scheduleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrInvalidState
		}
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	releaseQuery := `UPDATE schedules SET seats_available = seats_available + 1 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, releaseQuery, scheduleID); err != nil {
		return fmt.Errorf("failed to release seat: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
