package models

import (
	"database/sql"
	"time"
)

// Reservation lifecycle
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusPaid      = "paid"
	ReservationStatusCancelled = "cancelled"
)

// ReservationHoldDuration is how long an unconfirmed seat hold stays valid.
const ReservationHoldDuration = 2 * time.Hour

// Reservation is a seat hold against a schedule entry.
type Reservation struct {
	ID                  int64         `json:"id" db:"id"`
	Code                string        `json:"code" db:"code"`
	UserID              int64         `json:"user_id" db:"user_id"`
	ScheduleID          int64         `json:"schedule_id" db:"schedule_id"`
	SeatNumber          sql.NullInt64 `json:"-" db:"seat_number"`
	PassengerName       string        `json:"passenger_name" db:"passenger_name"`
	PassengerNationalID string        `json:"passenger_national_id" db:"passenger_national_id"`
	PassengerPhone      string        `json:"passenger_phone" db:"passenger_phone"`
	PassengerEmail      string        `json:"passenger_email" db:"passenger_email"`
	TotalPrice          int64         `json:"total_price" db:"total_price"`
	Status              string        `json:"status" db:"status"`
	Notes               string        `json:"notes" db:"notes"`
	ReservedAt          time.Time     `json:"reserved_at" db:"reserved_at"`
	ExpiresAt           time.Time     `json:"expires_at" db:"expires_at"`

	// Joined trip info for listings
	Origin      string    `json:"origin,omitempty" db:"origin"`
	Destination string    `json:"destination,omitempty" db:"destination"`
	DepartureAt time.Time `json:"departure_at,omitempty" db:"departure_at"`
}

// CreateReservationPayload is the body for POST /reservations
type CreateReservationPayload struct {
	ScheduleID          int64  `json:"schedule_id"`
	SeatNumber          int    `json:"seat_number"`
	PassengerName       string `json:"passenger_name"`
	PassengerNationalID string `json:"passenger_national_id"`
	PassengerPhone      string `json:"passenger_phone"`
	PassengerEmail      string `json:"passenger_email"`
	Notes               string `json:"notes"`
}
