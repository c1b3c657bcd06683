package gateway

import (
	"context"
	"time"

	"github.com/rioatrato/transchoco/internal/pkg/constants"
	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// RequestAcceptedEvent is published when a driver claims a request, so the
// passenger can be notified with the driver's contact details.
type RequestAcceptedEvent struct {
	RequestID   int64     `json:"request_id"`
	Code        string    `json:"code"`
	PassengerID int64     `json:"passenger_id"`
	DriverID    int64     `json:"driver_id"`
	DriverName  string    `json:"driver_name"`
	DriverPhone string    `json:"driver_phone"`
	FinalPrice  int64     `json:"final_price"`
	AcceptedAt  time.Time `json:"accepted_at"`
}

// PublishRequestAccepted publishes the acceptance event.
func (g *RequestGW) PublishRequestAccepted(_ context.Context, req *models.ServiceRequest) error {
	if g.producer == nil {
		return nil
	}
	event := RequestAcceptedEvent{
		RequestID:   req.ID,
		Code:        req.Code,
		PassengerID: req.PassengerID,
		DriverID:    req.DriverID.Int64,
		DriverName:  req.DriverName,
		DriverPhone: req.DriverPhone,
		FinalPrice:  req.FinalPrice.Int64,
	}
	if req.AcceptedAt.Valid {
		event.AcceptedAt = req.AcceptedAt.Time
	}
	return g.producer.Publish(constants.TopicRequestAccepted, event)
}
