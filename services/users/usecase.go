package users

import (
	"context"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rioatrato/transchoco/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context, userID int64) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	// admin-only role elevation
	UpdateUserRole(ctx context.Context, userID int64, role string) error

	// driver profile
	GetDriverProfile(ctx context.Context, userID int64) (*models.Driver, error)
	SetDriverAvailability(ctx context.Context, userID int64, available bool) error
	UpdateDriverStatus(ctx context.Context, driverID int64, status string) error
}
