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

// codeRetries bounds the collision-regeneration loop for booking codes.
const codeRetries = 5

// CreateRequest validates the payload and posts a new pending request to
// the board.
func (u *RequestUC) CreateRequest(ctx context.Context, passengerID int64, payload *models.CreateRequestPayload) (*models.ServiceRequest, error) {
	if err := validateRequestPayload(payload); err != nil {
		return nil, err
	}

	req := &models.ServiceRequest{
		PassengerID:    passengerID,
		VehicleType:    payload.VehicleType,
		Origin:         utils.SanitizeString(payload.Origin),
		Destination:    utils.SanitizeString(payload.Destination),
		ServiceDate:    payload.ServiceDate,
		ServiceTime:    payload.ServiceTime,
		PassengerCount: payload.PassengerCount,
		ContactPhone:   utils.SanitizeString(payload.ContactPhone),
		Notes:          utils.SanitizeString(payload.Notes),
		EstimatedPrice: payload.EstimatedPrice,
	}

	if payload.OriginLat != nil && payload.OriginLng != nil {
		req.OriginLat = sql.NullFloat64{Float64: *payload.OriginLat, Valid: true}
		req.OriginLng = sql.NullFloat64{Float64: *payload.OriginLng, Valid: true}
		req.OriginZone = sql.NullString{
			String: utils.EncodeZone(*payload.OriginLat, *payload.OriginLng),
			Valid:  true,
		}
	}

	code, err := u.uniqueCode(ctx)
	if err != nil {
		return nil, err
	}
	req.Code = code

	if err := u.requestRepo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	logger.Info("service request created",
		logger.Int64("request_id", req.ID),
		logger.String("code", req.Code),
		logger.Int64("passenger_id", passengerID))

	return req, nil
}

// ListPending returns the open board for approved drivers. When pickup
// coordinates are given the board is narrowed to the surrounding zones.
func (u *RequestUC) ListPending(ctx context.Context, driverUserID int64, lat, lng *float64) ([]*models.ServiceRequest, error) {
	approved, err := u.requestRepo.DriverApproved(ctx, driverUserID)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, fmt.Errorf("%w: driver not approved", apperr.ErrForbidden)
	}

	var zones []string
	if lat != nil && lng != nil {
		zones = utils.ZoneNeighborhood(*lat, *lng)
	}
	return u.requestRepo.ListPending(ctx, zones)
}

// ListMine returns a passenger's own requests.
func (u *RequestUC) ListMine(ctx context.Context, passengerID int64) ([]*models.ServiceRequest, error) {
	return u.requestRepo.ListByPassenger(ctx, passengerID)
}

// ListAssigned returns requests the driver has taken.
func (u *RequestUC) ListAssigned(ctx context.Context, driverUserID int64) ([]*models.ServiceRequest, error) {
	return u.requestRepo.ListByDriver(ctx, driverUserID)
}

// AcceptRequest claims a pending request for an approved driver. The first
// acceptor wins; everyone else gets ErrAlreadyTaken.
func (u *RequestUC) AcceptRequest(ctx context.Context, requestID, driverUserID int64, finalPrice int64) (*models.ServiceRequest, error) {
	approved, err := u.requestRepo.DriverApproved(ctx, driverUserID)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, fmt.Errorf("%w: driver not approved", apperr.ErrForbidden)
	}

	if finalPrice < 0 {
		return nil, fmt.Errorf("%w: final_price must not be negative", apperr.ErrValidation)
	}

	if err := u.requestRepo.AcceptRequest(ctx, requestID, driverUserID, finalPrice); err != nil {
		return nil, err
	}

	req, err := u.requestRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := u.requestGW.PublishRequestAccepted(ctx, req); err != nil {
		logger.Warn("failed to publish acceptance event",
			logger.ErrorField(err),
			logger.Int64("request_id", requestID))
	}

	logger.Info("service request accepted",
		logger.Int64("request_id", requestID),
		logger.Int64("driver_id", driverUserID))

	return req, nil
}

// StartRequest moves an accepted request to in_progress.
func (u *RequestUC) StartRequest(ctx context.Context, requestID, driverUserID int64) error {
	return u.requestRepo.UpdateStatusByDriver(ctx, requestID, driverUserID,
		models.RequestStatusAccepted, models.RequestStatusInProgress)
}

// CompleteRequest finishes an in-progress request and credits the driver's
// trip counter.
func (u *RequestUC) CompleteRequest(ctx context.Context, requestID, driverUserID int64) error {
	err := u.requestRepo.UpdateStatusByDriver(ctx, requestID, driverUserID,
		models.RequestStatusInProgress, models.RequestStatusCompleted)
	if err != nil {
		return err
	}

	if err := u.requestRepo.IncrementCompletedTrips(ctx, driverUserID); err != nil {
		logger.Warn("failed to increment completed trips",
			logger.ErrorField(err),
			logger.Int64("driver_id", driverUserID))
	}

	logger.Info("service request completed",
		logger.Int64("request_id", requestID),
		logger.Int64("driver_id", driverUserID))
	return nil
}

// CancelRequest cancels a request: passengers may cancel their own while it
// is still pending, the assigned driver may cancel after acceptance.
func (u *RequestUC) CancelRequest(ctx context.Context, requestID, callerID int64, callerRole string) error {
	if callerRole == models.RoleDriver {
		return u.requestRepo.CancelByDriver(ctx, requestID, callerID)
	}
	return u.requestRepo.CancelByPassenger(ctx, requestID, callerID)
}

func (u *RequestUC) uniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < codeRetries; i++ {
		code, err := utils.GenerateBookingCode(utils.BookingCodeLength)
		if err != nil {
			return "", err
		}
		exists, err := u.requestRepo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique request code")
}

func validateRequestPayload(p *models.CreateRequestPayload) error {
	if !models.ValidVehicleType(p.VehicleType) {
		return fmt.Errorf("%w: invalid vehicle_type", apperr.ErrValidation)
	}

	required := map[string]string{
		"origin":        p.Origin,
		"destination":   p.Destination,
		"service_date":  p.ServiceDate,
		"service_time":  p.ServiceTime,
		"contact_phone": p.ContactPhone,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%w: field %s is required", apperr.ErrValidation, field)
		}
	}

	if _, err := time.Parse("2006-01-02", p.ServiceDate); err != nil {
		return fmt.Errorf("%w: service_date must be YYYY-MM-DD", apperr.ErrValidation)
	}
	if _, err := time.Parse("15:04", p.ServiceTime); err != nil {
		return fmt.Errorf("%w: service_time must be HH:MM", apperr.ErrValidation)
	}

	if p.PassengerCount < 1 {
		return fmt.Errorf("%w: passenger_count must be at least 1", apperr.ErrValidation)
	}
	if p.EstimatedPrice < 0 {
		return fmt.Errorf("%w: estimated_price must not be negative", apperr.ErrValidation)
	}

	if (p.OriginLat == nil) != (p.OriginLng == nil) {
		return fmt.Errorf("%w: origin_lat and origin_lng must be given together", apperr.ErrValidation)
	}
	if p.OriginLat != nil {
		if *p.OriginLat < -90 || *p.OriginLat > 90 || *p.OriginLng < -180 || *p.OriginLng > 180 {
			return fmt.Errorf("%w: invalid pickup coordinates", apperr.ErrValidation)
		}
	}

	return nil
}
