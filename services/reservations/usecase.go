package reservations

import (
	"context"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rioatrato/transchoco/services/reservations ReservationUC

// ReservationUC represents the reservation usecase interface
type ReservationUC interface {
	CreateReservation(ctx context.Context, userID int64, payload *models.CreateReservationPayload) (*models.Reservation, error)
	ListMine(ctx context.Context, userID int64) ([]*models.Reservation, error)
	GetByCode(ctx context.Context, code string, callerID int64, callerRole string) (*models.Reservation, error)
	ConfirmReservation(ctx context.Context, reservationID, userID int64) error
	PayReservation(ctx context.Context, reservationID, userID int64) error
	CancelReservation(ctx context.Context, reservationID, userID int64) error
}
