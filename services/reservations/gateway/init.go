package gateway

import (
	nsqpkg "github.com/rioatrato/transchoco/internal/pkg/nsq"
)

// ReservationGW publishes reservation events for the notification
// pipeline.
type ReservationGW struct {
	producer *nsqpkg.Producer
}

// NewReservationGW creates a new reservation gateway. A nil producer
// disables publishing.
func NewReservationGW(producer *nsqpkg.Producer) *ReservationGW {
	return &ReservationGW{producer: producer}
}
