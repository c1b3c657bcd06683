package requests

import (
	"context"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rioatrato/transchoco/services/requests RequestUC

// RequestUC represents the service request usecase interface
type RequestUC interface {
	CreateRequest(ctx context.Context, passengerID int64, payload *models.CreateRequestPayload) (*models.ServiceRequest, error)
	ListPending(ctx context.Context, driverUserID int64, lat, lng *float64) ([]*models.ServiceRequest, error)
	ListMine(ctx context.Context, passengerID int64) ([]*models.ServiceRequest, error)
	ListAssigned(ctx context.Context, driverUserID int64) ([]*models.ServiceRequest, error)
	AcceptRequest(ctx context.Context, requestID, driverUserID int64, finalPrice int64) (*models.ServiceRequest, error)
	StartRequest(ctx context.Context, requestID, driverUserID int64) error
	CompleteRequest(ctx context.Context, requestID, driverUserID int64) error
	CancelRequest(ctx context.Context, requestID, callerID int64, callerRole string) error
}
