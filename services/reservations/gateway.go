package reservations

import (
	"context"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/rioatrato/transchoco/services/reservations ReservationGW

// ReservationGW represents the reservation gateway interface for outbound
// events
type ReservationGW interface {
	PublishReservationCreated(ctx context.Context, res *models.Reservation) error
}
