package usecase

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/requests/mocks"
)

func validCreatePayload() *models.CreateRequestPayload {
	return &models.CreateRequestPayload{
		VehicleType:    models.VehicleTypeCar,
		Origin:         "Quibdó",
		Destination:    "Istmina",
		ServiceDate:    "2026-09-15",
		ServiceTime:    "07:30",
		PassengerCount: 2,
		ContactPhone:   "+573001234567",
		EstimatedPrice: 45000,
	}
}

func TestCreateRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	uc := NewRequestUC(mockRepo, mocks.NewMockRequestGW(ctrl), &models.Config{})

	mockRepo.EXPECT().
		CodeExists(gomock.Any(), gomock.Any()).
		Return(false, nil)
	mockRepo.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.ServiceRequest) error {
			assert.Len(t, req.Code, 8)
			assert.Equal(t, int64(5), req.PassengerID)
			assert.False(t, req.OriginZone.Valid)
			req.ID = 1
			return nil
		})

	req, err := uc.CreateRequest(context.Background(), 5, validCreatePayload())
	require.NoError(t, err)
	assert.Equal(t, int64(1), req.ID)
}

func TestCreateRequest_CoordinatesProduceZone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	uc := NewRequestUC(mockRepo, mocks.NewMockRequestGW(ctrl), &models.Config{})

	payload := validCreatePayload()
	lat, lng := 5.6947, -76.6612 // Quibdó
	payload.OriginLat = &lat
	payload.OriginLng = &lng

	mockRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.ServiceRequest) error {
			require.True(t, req.OriginZone.Valid)
			assert.Len(t, req.OriginZone.String, 6)
			assert.True(t, req.OriginLat.Valid)
			return nil
		})

	_, err := uc.CreateRequest(context.Background(), 5, payload)
	require.NoError(t, err)
}

func TestCreateRequest_CodeCollisionRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	uc := NewRequestUC(mockRepo, mocks.NewMockRequestGW(ctrl), &models.Config{})

	gomock.InOrder(
		mockRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(true, nil),
		mockRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil),
	)
	mockRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.CreateRequest(context.Background(), 5, validCreatePayload())
	require.NoError(t, err)
}

func TestCreateRequest_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateRequestPayload)
	}{
		{"invalid vehicle type", func(p *models.CreateRequestPayload) { p.VehicleType = "boat" }},
		{"missing origin", func(p *models.CreateRequestPayload) { p.Origin = "" }},
		{"bad date", func(p *models.CreateRequestPayload) { p.ServiceDate = "15/09/2026" }},
		{"bad time", func(p *models.CreateRequestPayload) { p.ServiceTime = "7am" }},
		{"zero passengers", func(p *models.CreateRequestPayload) { p.PassengerCount = 0 }},
		{"negative price", func(p *models.CreateRequestPayload) { p.EstimatedPrice = -1 }},
		{"lat without lng", func(p *models.CreateRequestPayload) {
			lat := 5.69
			p.OriginLat = &lat
		}},
		{"out of range coords", func(p *models.CreateRequestPayload) {
			lat, lng := 95.0, -76.0
			p.OriginLat, p.OriginLng = &lat, &lng
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := NewRequestUC(mocks.NewMockRequestRepo(ctrl), mocks.NewMockRequestGW(ctrl), &models.Config{})

			payload := validCreatePayload()
			tt.mutate(payload)

			_, err := uc.CreateRequest(context.Background(), 5, payload)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestAcceptRequest_FirstAcceptorWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockGW := mocks.NewMockRequestGW(ctrl)
	uc := NewRequestUC(mockRepo, mockGW, &models.Config{})

	mockRepo.EXPECT().DriverApproved(gomock.Any(), int64(10)).Return(true, nil)
	mockRepo.EXPECT().DriverApproved(gomock.Any(), int64(11)).Return(true, nil)

	// first driver claims the row, second hits the exhausted guard
	mockRepo.EXPECT().
		AcceptRequest(gomock.Any(), int64(1), int64(10), int64(50000)).
		Return(nil)
	mockRepo.EXPECT().
		AcceptRequest(gomock.Any(), int64(1), int64(11), int64(48000)).
		Return(apperr.ErrAlreadyTaken)

	accepted := &models.ServiceRequest{
		ID:       1,
		DriverID: sql.NullInt64{Int64: 10, Valid: true},
		Status:   models.RequestStatusAccepted,
	}
	mockRepo.EXPECT().GetRequestByID(gomock.Any(), int64(1)).Return(accepted, nil)
	mockGW.EXPECT().PublishRequestAccepted(gomock.Any(), accepted).Return(nil)

	req, err := uc.AcceptRequest(context.Background(), 1, 10, 50000)
	require.NoError(t, err)
	assert.Equal(t, int64(10), req.DriverID.Int64)

	_, err = uc.AcceptRequest(context.Background(), 1, 11, 48000)
	assert.ErrorIs(t, err, apperr.ErrAlreadyTaken)
}

func TestAcceptRequest_UnapprovedDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	uc := NewRequestUC(mockRepo, mocks.NewMockRequestGW(ctrl), &models.Config{})

	mockRepo.EXPECT().DriverApproved(gomock.Any(), int64(10)).Return(false, nil)

	_, err := uc.AcceptRequest(context.Background(), 1, 10, 50000)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestListPending_ZoneFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	uc := NewRequestUC(mockRepo, mocks.NewMockRequestGW(ctrl), &models.Config{})

	mockRepo.EXPECT().DriverApproved(gomock.Any(), int64(10)).Return(true, nil)
	mockRepo.EXPECT().
		ListPending(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, zones []string) ([]*models.ServiceRequest, error) {
			// center zone plus its eight neighbors
			assert.Len(t, zones, 9)
			return []*models.ServiceRequest{}, nil
		})

	lat, lng := 5.6947, -76.6612
	_, err := uc.ListPending(context.Background(), 10, &lat, &lng)
	require.NoError(t, err)
}

func TestListPending_NoCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	uc := NewRequestUC(mockRepo, mocks.NewMockRequestGW(ctrl), &models.Config{})

	mockRepo.EXPECT().DriverApproved(gomock.Any(), int64(10)).Return(true, nil)
	mockRepo.EXPECT().ListPending(gomock.Any(), gomock.Nil()).Return([]*models.ServiceRequest{}, nil)

	_, err := uc.ListPending(context.Background(), 10, nil, nil)
	require.NoError(t, err)
}

func TestCompleteRequest_IncrementsTrips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	uc := NewRequestUC(mockRepo, mocks.NewMockRequestGW(ctrl), &models.Config{})

	mockRepo.EXPECT().
		UpdateStatusByDriver(gomock.Any(), int64(1), int64(10),
			models.RequestStatusInProgress, models.RequestStatusCompleted).
		Return(nil)
	mockRepo.EXPECT().IncrementCompletedTrips(gomock.Any(), int64(10)).Return(nil)

	assert.NoError(t, uc.CompleteRequest(context.Background(), 1, 10))
}

func TestCompleteRequest_WrongState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	uc := NewRequestUC(mockRepo, mocks.NewMockRequestGW(ctrl), &models.Config{})

	mockRepo.EXPECT().
		UpdateStatusByDriver(gomock.Any(), int64(1), int64(10),
			models.RequestStatusInProgress, models.RequestStatusCompleted).
		Return(apperr.ErrInvalidState)

	err := uc.CompleteRequest(context.Background(), 1, 10)
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
}

func TestCancelRequest_RoutesByRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	uc := NewRequestUC(mockRepo, mocks.NewMockRequestGW(ctrl), &models.Config{})

	mockRepo.EXPECT().CancelByPassenger(gomock.Any(), int64(1), int64(5)).Return(nil)
	mockRepo.EXPECT().CancelByDriver(gomock.Any(), int64(2), int64(10)).Return(nil)

	assert.NoError(t, uc.CancelRequest(context.Background(), 1, 5, models.RolePassenger))
	assert.NoError(t, uc.CancelRequest(context.Background(), 2, 10, models.RoleDriver))
}
