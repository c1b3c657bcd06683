package usecase

import (
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/reservations"
)

// ReservationUC implements the reservation usecase.
type ReservationUC struct {
	reservationRepo reservations.ReservationRepo
	reservationGW   reservations.ReservationGW
	cfg             *models.Config
}

// NewReservationUC creates a new reservation usecase instance
func NewReservationUC(
	reservationRepo reservations.ReservationRepo,
	reservationGW reservations.ReservationGW,
	cfg *models.Config,
) *ReservationUC {
	return &ReservationUC{
		reservationRepo: reservationRepo,
		reservationGW:   reservationGW,
		cfg:             cfg,
	}
}
