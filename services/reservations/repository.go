package reservations

import (
	"context"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rioatrato/transchoco/services/reservations ReservationRepo

// ReservationRepo represents the reservation repository interface
type ReservationRepo interface {
	// CreateReservation decrements the schedule's seat counter and inserts
	// the reservation in one transaction; ErrUnavailable when no seat was
	// left to take.
	CreateReservation(ctx context.Context, res *models.Reservation) error
	CodeExists(ctx context.Context, code string) (bool, error)
	GetReservationByID(ctx context.Context, id int64) (*models.Reservation, error)
	GetReservationByCode(ctx context.Context, code string) (*models.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Reservation, error)
	UpdateStatusConditional(ctx context.Context, reservationID, userID int64, from, to string) error
	// CancelReservation flips the row to cancelled and gives the seat back.
	CancelReservation(ctx context.Context, reservationID, userID int64) error
}
