package users

import (
	"context"
	"time"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rioatrato/transchoco/services/users UserRepo

// UserRepo represents the user repository interface
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User, driver *models.Driver) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	IdentityExists(ctx context.Context, email, nationalID string) (bool, error)
	UpdateUserRole(ctx context.Context, userID int64, role string) error

	// driver profile
	GetDriverByUserID(ctx context.Context, userID int64) (*models.Driver, error)
	SetDriverAvailability(ctx context.Context, userID int64, available bool) error
	UpdateDriverStatus(ctx context.Context, driverID int64, status string) error

	// sessions
	CreateSession(ctx context.Context, userID int64, jti string, ttl time.Duration) error
	DeleteSession(ctx context.Context, userID int64) error
	SessionActive(ctx context.Context, userID int64, jti string) (bool, error)
}
