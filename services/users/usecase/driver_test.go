package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/users/mocks"
)

func TestSetDriverAvailability_Approved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, mocks.NewMockUserGW(ctrl), testConfig())

	mockRepo.EXPECT().
		GetDriverByUserID(gomock.Any(), int64(10)).
		Return(&models.Driver{ID: 3, UserID: 10, Status: models.DriverStatusApproved}, nil)
	mockRepo.EXPECT().
		SetDriverAvailability(gomock.Any(), int64(10), true).
		Return(nil)

	assert.NoError(t, uc.SetDriverAvailability(context.Background(), 10, true))
}

func TestSetDriverAvailability_PendingCannotGoOnDuty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, mocks.NewMockUserGW(ctrl), testConfig())

	mockRepo.EXPECT().
		GetDriverByUserID(gomock.Any(), int64(10)).
		Return(&models.Driver{ID: 3, UserID: 10, Status: models.DriverStatusPending}, nil)

	err := uc.SetDriverAvailability(context.Background(), 10, true)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestSetDriverAvailability_PendingCanGoOffDuty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, mocks.NewMockUserGW(ctrl), testConfig())

	mockRepo.EXPECT().
		GetDriverByUserID(gomock.Any(), int64(10)).
		Return(&models.Driver{ID: 3, UserID: 10, Status: models.DriverStatusSuspended}, nil)
	mockRepo.EXPECT().
		SetDriverAvailability(gomock.Any(), int64(10), false).
		Return(nil)

	assert.NoError(t, uc.SetDriverAvailability(context.Background(), 10, false))
}

func TestUpdateDriverStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, mocks.NewMockUserGW(ctrl), testConfig())

	mockRepo.EXPECT().
		UpdateDriverStatus(gomock.Any(), int64(3), models.DriverStatusApproved).
		Return(nil)

	assert.NoError(t, uc.UpdateDriverStatus(context.Background(), 3, models.DriverStatusApproved))
}

func TestUpdateDriverStatus_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewUserUC(mocks.NewMockUserRepo(ctrl), mocks.NewMockUserGW(ctrl), testConfig())

	err := uc.UpdateDriverStatus(context.Background(), 3, "retired")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateUserRole_InvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewUserUC(mocks.NewMockUserRepo(ctrl), mocks.NewMockUserGW(ctrl), testConfig())

	err := uc.UpdateUserRole(context.Background(), 5, "superuser")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateUserRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, mocks.NewMockUserGW(ctrl), testConfig())

	mockRepo.EXPECT().
		UpdateUserRole(gomock.Any(), int64(5), models.RoleAdmin).
		Return(nil)

	assert.NoError(t, uc.UpdateUserRole(context.Background(), 5, models.RoleAdmin))
}
