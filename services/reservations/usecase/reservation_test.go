package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/reservations/mocks"
)

func validReservationPayload() *models.CreateReservationPayload {
	return &models.CreateReservationPayload{
		ScheduleID:          4,
		PassengerName:       "Maria Mosquera",
		PassengerNationalID: "1077000001",
		PassengerPhone:      "+573001234567",
		PassengerEmail:      "maria@example.com",
	}
}

func TestCreateReservation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockReservationRepo(ctrl)
	mockGW := mocks.NewMockReservationGW(ctrl)
	uc := NewReservationUC(mockRepo, mockGW, &models.Config{})

	mockRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().
		CreateReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, res *models.Reservation) error {
			assert.Len(t, res.Code, 8)
			assert.Equal(t, int64(5), res.UserID)
			res.ID = 9
			res.TotalPrice = 18000
			res.Status = models.ReservationStatusPending
			res.ExpiresAt = time.Now().Add(models.ReservationHoldDuration)
			return nil
		})
	mockGW.EXPECT().PublishReservationCreated(gomock.Any(), gomock.Any()).Return(nil)

	res, err := uc.CreateReservation(context.Background(), 5, validReservationPayload())
	require.NoError(t, err)
	assert.Equal(t, int64(9), res.ID)
	assert.Equal(t, int64(18000), res.TotalPrice)
}

func TestCreateReservation_FullSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockReservationRepo(ctrl)
	uc := NewReservationUC(mockRepo, mocks.NewMockReservationGW(ctrl), &models.Config{})

	mockRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(apperr.ErrUnavailable)

	_, err := uc.CreateReservation(context.Background(), 5, validReservationPayload())
	assert.ErrorIs(t, err, apperr.ErrUnavailable)
}

func TestCreateReservation_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateReservationPayload)
	}{
		{"missing schedule", func(p *models.CreateReservationPayload) { p.ScheduleID = 0 }},
		{"missing name", func(p *models.CreateReservationPayload) { p.PassengerName = "" }},
		{"missing national id", func(p *models.CreateReservationPayload) { p.PassengerNationalID = "" }},
		{"bad email", func(p *models.CreateReservationPayload) { p.PassengerEmail = "not-an-email" }},
		{"negative seat", func(p *models.CreateReservationPayload) { p.SeatNumber = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := NewReservationUC(mocks.NewMockReservationRepo(ctrl), mocks.NewMockReservationGW(ctrl), &models.Config{})

			payload := validReservationPayload()
			tt.mutate(payload)

			_, err := uc.CreateReservation(context.Background(), 5, payload)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestGetByCode_OwnerOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockReservationRepo(ctrl)
	uc := NewReservationUC(mockRepo, mocks.NewMockReservationGW(ctrl), &models.Config{})

	res := &models.Reservation{ID: 9, Code: "A1B2C3D4", UserID: 5}
	mockRepo.EXPECT().GetReservationByCode(gomock.Any(), "A1B2C3D4").Return(res, nil).Times(3)

	// owner
	got, err := uc.GetByCode(context.Background(), "A1B2C3D4", 5, models.RolePassenger)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)

	// admin
	_, err = uc.GetByCode(context.Background(), "A1B2C3D4", 99, models.RoleAdmin)
	assert.NoError(t, err)

	// stranger
	_, err = uc.GetByCode(context.Background(), "A1B2C3D4", 7, models.RolePassenger)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestConfirmReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockReservationRepo(ctrl)
	uc := NewReservationUC(mockRepo, mocks.NewMockReservationGW(ctrl), &models.Config{})

	mockRepo.EXPECT().
		GetReservationByID(gomock.Any(), int64(9)).
		Return(&models.Reservation{
			ID:        9,
			UserID:    5,
			Status:    models.ReservationStatusPending,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
	mockRepo.EXPECT().
		UpdateStatusConditional(gomock.Any(), int64(9), int64(5),
			models.ReservationStatusPending, models.ReservationStatusConfirmed).
		Return(nil)

	assert.NoError(t, uc.ConfirmReservation(context.Background(), 9, 5))
}

func TestConfirmReservation_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockReservationRepo(ctrl)
	uc := NewReservationUC(mockRepo, mocks.NewMockReservationGW(ctrl), &models.Config{})

	mockRepo.EXPECT().
		GetReservationByID(gomock.Any(), int64(9)).
		Return(&models.Reservation{
			ID:        9,
			UserID:    5,
			Status:    models.ReservationStatusPending,
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)

	err := uc.ConfirmReservation(context.Background(), 9, 5)
	assert.ErrorIs(t, err, apperr.ErrExpired)
}

func TestConfirmReservation_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockReservationRepo(ctrl)
	uc := NewReservationUC(mockRepo, mocks.NewMockReservationGW(ctrl), &models.Config{})

	mockRepo.EXPECT().
		GetReservationByID(gomock.Any(), int64(9)).
		Return(&models.Reservation{ID: 9, UserID: 5, ExpiresAt: time.Now().Add(time.Hour)}, nil)

	err := uc.ConfirmReservation(context.Background(), 9, 7)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestPayReservation_RequiresConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockReservationRepo(ctrl)
	uc := NewReservationUC(mockRepo, mocks.NewMockReservationGW(ctrl), &models.Config{})

	mockRepo.EXPECT().
		UpdateStatusConditional(gomock.Any(), int64(9), int64(5),
			models.ReservationStatusConfirmed, models.ReservationStatusPaid).
		Return(apperr.ErrInvalidState)

	err := uc.PayReservation(context.Background(), 9, 5)
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
}
