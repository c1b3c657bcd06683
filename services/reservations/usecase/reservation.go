package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/logger"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/internal/utils"
)

const codeRetries = 5

// CreateReservation validates the payload and books one seat. The seat
// decrement and the reservation insert are atomic; a full schedule yields
// ErrUnavailable with no row written.
func (u *ReservationUC) CreateReservation(ctx context.Context, userID int64, payload *models.CreateReservationPayload) (*models.Reservation, error) {
	if err := validateReservationPayload(payload); err != nil {
		return nil, err
	}

	res := &models.Reservation{
		UserID:              userID,
		ScheduleID:          payload.ScheduleID,
		PassengerName:       utils.SanitizeString(payload.PassengerName),
		PassengerNationalID: utils.SanitizeString(payload.PassengerNationalID),
		PassengerPhone:      utils.SanitizeString(payload.PassengerPhone),
		PassengerEmail:      utils.NormalizeEmail(payload.PassengerEmail),
		Notes:               utils.SanitizeString(payload.Notes),
	}
	if payload.SeatNumber > 0 {
		res.SeatNumber = sql.NullInt64{Int64: int64(payload.SeatNumber), Valid: true}
	}

	code, err := u.uniqueCode(ctx)
	if err != nil {
		return nil, err
	}
	res.Code = code

	if err := u.reservationRepo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	if err := u.reservationGW.PublishReservationCreated(ctx, res); err != nil {
		logger.Warn("failed to publish reservation event",
			logger.ErrorField(err),
			logger.Int64("reservation_id", res.ID))
	}

	logger.Info("reservation created",
		logger.Int64("reservation_id", res.ID),
		logger.String("code", res.Code),
		logger.Int64("schedule_id", res.ScheduleID))

	return res, nil
}

// ListMine returns the caller's reservations.
func (u *ReservationUC) ListMine(ctx context.Context, userID int64) ([]*models.Reservation, error) {
	return u.reservationRepo.ListByUser(ctx, userID)
}

// GetByCode returns one reservation; only the owner or an admin may look
// it up.
func (u *ReservationUC) GetByCode(ctx context.Context, code string, callerID int64, callerRole string) (*models.Reservation, error) {
	res, err := u.reservationRepo.GetReservationByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if res.UserID != callerID && callerRole != models.RoleAdmin {
		return nil, fmt.Errorf("%w: not your reservation", apperr.ErrForbidden)
	}
	return res, nil
}

// ConfirmReservation moves a pending hold to confirmed. Expired holds are
// rejected.
func (u *ReservationUC) ConfirmReservation(ctx context.Context, reservationID, userID int64) error {
	res, err := u.reservationRepo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if res.UserID != userID {
		return fmt.Errorf("%w: not your reservation", apperr.ErrForbidden)
	}
	if time.Now().After(res.ExpiresAt) {
		return fmt.Errorf("%w: reservation hold expired", apperr.ErrExpired)
	}

	return u.reservationRepo.UpdateStatusConditional(ctx, reservationID, userID,
		models.ReservationStatusPending, models.ReservationStatusConfirmed)
}

// PayReservation marks a confirmed reservation as paid.
func (u *ReservationUC) PayReservation(ctx context.Context, reservationID, userID int64) error {
	return u.reservationRepo.UpdateStatusConditional(ctx, reservationID, userID,
		models.ReservationStatusConfirmed, models.ReservationStatusPaid)
}

// CancelReservation cancels a pending or confirmed reservation and gives
// the seat back.
func (u *ReservationUC) CancelReservation(ctx context.Context, reservationID, userID int64) error {
	if err := u.reservationRepo.CancelReservation(ctx, reservationID, userID); err != nil {
		return err
	}
	logger.Info("reservation cancelled",
		logger.Int64("reservation_id", reservationID),
		logger.Int64("user_id", userID))
	return nil
}

func (u *ReservationUC) uniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < codeRetries; i++ {
		code, err := utils.GenerateBookingCode(utils.BookingCodeLength)
		if err != nil {
			return "", err
		}
		exists, err := u.reservationRepo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique reservation code")
}

func validateReservationPayload(p *models.CreateReservationPayload) error {
	if p.ScheduleID <= 0 {
		return fmt.Errorf("%w: schedule_id is required", apperr.ErrValidation)
	}

	required := map[string]string{
		"passenger_name":        p.PassengerName,
		"passenger_national_id": p.PassengerNationalID,
		"passenger_phone":       p.PassengerPhone,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%w: field %s is required", apperr.ErrValidation, field)
		}
	}

	if p.PassengerEmail != "" && !utils.IsValidEmail(p.PassengerEmail) {
		return fmt.Errorf("%w: invalid email format", apperr.ErrValidation)
	}
	if p.SeatNumber < 0 {
		return fmt.Errorf("%w: seat_number must not be negative", apperr.ErrValidation)
	}

	return nil
}
