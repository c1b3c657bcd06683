package requests

import (
	"context"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/rioatrato/transchoco/services/requests RequestGW

// RequestGW represents the request gateway interface for outbound events
type RequestGW interface {
	PublishRequestAccepted(ctx context.Context, req *models.ServiceRequest) error
}
