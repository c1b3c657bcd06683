package usecase

import (
	"context"
	"fmt"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/logger"
	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// GetDriverProfile returns the driver profile of the given user.
func (u *UserUC) GetDriverProfile(ctx context.Context, userID int64) (*models.Driver, error) {
	return u.userRepo.GetDriverByUserID(ctx, userID)
}

// SetDriverAvailability toggles availability. Only approved drivers may go
// on duty.
func (u *UserUC) SetDriverAvailability(ctx context.Context, userID int64, available bool) error {
	driver, err := u.userRepo.GetDriverByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if available && driver.Status != models.DriverStatusApproved {
		return fmt.Errorf("%w: driver not approved", apperr.ErrForbidden)
	}
	return u.userRepo.SetDriverAvailability(ctx, userID, available)
}

// UpdateDriverStatus moves a driver through the approval state machine
// (admin action).
func (u *UserUC) UpdateDriverStatus(ctx context.Context, driverID int64, status string) error {
	switch status {
	case models.DriverStatusPending, models.DriverStatusApproved,
		models.DriverStatusRejected, models.DriverStatusSuspended:
	default:
		return fmt.Errorf("%w: invalid driver status", apperr.ErrValidation)
	}

	if err := u.userRepo.UpdateDriverStatus(ctx, driverID, status); err != nil {
		return err
	}

	logger.Info("driver status updated",
		logger.Int64("driver_id", driverID),
		logger.String("status", status))
	return nil
}
