package usecase

import (
	"context"
	"fmt"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/logger"
	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// GetUserByID returns a user with driver profile attached for drivers.
func (u *UserUC) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, id)
}

// UpdateUserRole is the admin-only role elevation path; roles are otherwise
// immutable after registration.
func (u *UserUC) UpdateUserRole(ctx context.Context, userID int64, role string) error {
	switch role {
	case models.RolePassenger, models.RoleDriver, models.RoleAdmin:
	default:
		return fmt.Errorf("%w: invalid role", apperr.ErrValidation)
	}

	if err := u.userRepo.UpdateUserRole(ctx, userID, role); err != nil {
		return err
	}

	logger.Info("user role updated",
		logger.Int64("user_id", userID),
		logger.String("role", role))
	return nil
}
