package requests

import (
	"context"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rioatrato/transchoco/services/requests RequestRepo

// RequestRepo represents the service request repository interface
type RequestRepo interface {
	CreateRequest(ctx context.Context, req *models.ServiceRequest) error
	CodeExists(ctx context.Context, code string) (bool, error)
	GetRequestByID(ctx context.Context, id int64) (*models.ServiceRequest, error)
	ListPending(ctx context.Context, zones []string) ([]*models.ServiceRequest, error)
	ListByPassenger(ctx context.Context, passengerID int64) ([]*models.ServiceRequest, error)
	ListByDriver(ctx context.Context, driverUserID int64) ([]*models.ServiceRequest, error)
	DriverApproved(ctx context.Context, driverUserID int64) (bool, error)

	// AcceptRequest assigns the driver with a conditional update; returns
	// ErrAlreadyTaken when the request was no longer pending and
	// unassigned.
	AcceptRequest(ctx context.Context, requestID, driverUserID int64, finalPrice int64) error
	UpdateStatusByDriver(ctx context.Context, requestID, driverUserID int64, from, to string) error
	CancelByPassenger(ctx context.Context, requestID, passengerID int64) error
	CancelByDriver(ctx context.Context, requestID, driverUserID int64) error
	IncrementCompletedTrips(ctx context.Context, driverUserID int64) error
}
