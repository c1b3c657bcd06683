package gateway

import (
	"context"
	"time"

	"github.com/rioatrato/transchoco/internal/pkg/constants"
	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// ReservationCreatedEvent is published when a seat hold is taken, so the
// booking confirmation can be sent out.
type ReservationCreatedEvent struct {
	ReservationID int64     `json:"reservation_id"`
	Code          string    `json:"code"`
	UserID        int64     `json:"user_id"`
	ScheduleID    int64     `json:"schedule_id"`
	PassengerName string    `json:"passenger_name"`
	TotalPrice    int64     `json:"total_price"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// PublishReservationCreated publishes the booking event.
func (g *ReservationGW) PublishReservationCreated(_ context.Context, res *models.Reservation) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(constants.TopicReservationCreated, ReservationCreatedEvent{
		ReservationID: res.ID,
		Code:          res.Code,
		UserID:        res.UserID,
		ScheduleID:    res.ScheduleID,
		PassengerName: res.PassengerName,
		TotalPrice:    res.TotalPrice,
		ExpiresAt:     res.ExpiresAt,
	})
}
