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
	"github.com/rioatrato/transchoco/services/catalog/mocks"
)

func TestCreateRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCatalogRepo(ctrl)
	uc := NewCatalogUC(mockRepo, &models.Config{})

	payload := &models.CreateRoutePayload{
		Origin:        "Quibdó",
		Destination:   "Tadó",
		DistanceKm:    85,
		DurationHours: 2.5,
		BasePrice:     18000,
		RouteType:     models.RouteTypeIntercity,
	}

	mockRepo.EXPECT().
		CreateRoute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, route *models.Route) error {
			assert.Equal(t, "Quibdó", route.Origin)
			route.ID = 1
			return nil
		})

	route, err := uc.CreateRoute(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, int64(1), route.ID)
}

func TestCreateRoute_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewCatalogUC(mocks.NewMockCatalogRepo(ctrl), &models.Config{})

	_, err := uc.CreateRoute(context.Background(), &models.CreateRoutePayload{
		Origin:        "Quibdó",
		Destination:   "Tadó",
		DistanceKm:    85,
		DurationHours: 2.5,
		RouteType:     "maritime",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCreateVehicle_NormalizesPlate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCatalogRepo(ctrl)
	uc := NewCatalogUC(mockRepo, &models.Config{})

	mockRepo.EXPECT().PlateExists(gomock.Any(), "ABC123").Return(false, nil)
	mockRepo.EXPECT().
		CreateVehicle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Vehicle) error {
			assert.Equal(t, "ABC123", v.Plate)
			assert.True(t, v.Year.Valid)
			assert.Equal(t, int64(2018), v.Year.Int64)
			return nil
		})

	_, err := uc.CreateVehicle(context.Background(), &models.CreateVehiclePayload{
		Plate:       "abc123",
		VehicleType: models.VehicleTypeBus,
		Capacity:    35,
		Brand:       "Chevrolet",
		Model:       "NPR",
		Year:        2018,
	})
	require.NoError(t, err)
}

func TestCreateVehicle_DuplicatePlate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCatalogRepo(ctrl)
	uc := NewCatalogUC(mockRepo, &models.Config{})

	mockRepo.EXPECT().PlateExists(gomock.Any(), "ABC123").Return(true, nil)

	_, err := uc.CreateVehicle(context.Background(), &models.CreateVehiclePayload{
		Plate:       "ABC123",
		VehicleType: models.VehicleTypeBus,
		Capacity:    35,
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
}

func TestSearchSchedules_UnknownRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCatalogRepo(ctrl)
	uc := NewCatalogUC(mockRepo, &models.Config{})

	mockRepo.EXPECT().GetRouteByID(gomock.Any(), int64(99)).Return(nil, apperr.ErrNotFound)

	_, err := uc.SearchSchedules(context.Background(), 99, "2026-09-15")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSearchSchedules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCatalogRepo(ctrl)
	uc := NewCatalogUC(mockRepo, &models.Config{})

	mockRepo.EXPECT().GetRouteByID(gomock.Any(), int64(1)).Return(&models.Route{ID: 1}, nil)
	mockRepo.EXPECT().
		SearchSchedules(gomock.Any(), int64(1), "2026-09-15").
		Return([]*models.Schedule{{ID: 4, SeatsAvailable: 12}}, nil)

	list, err := uc.SearchSchedules(context.Background(), 1, "2026-09-15")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 12, list[0].SeatsAvailable)
}

func TestCreateSchedule_SeatsDefaultToCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCatalogRepo(ctrl)
	uc := NewCatalogUC(mockRepo, &models.Config{})

	departure := time.Date(2026, 9, 15, 6, 0, 0, 0, time.UTC)
	payload := &models.CreateSchedulePayload{
		RouteID:     1,
		VehicleID:   2,
		DepartureAt: departure,
		ArrivalAt:   departure.Add(150 * time.Minute),
		Price:       18000,
	}

	mockRepo.EXPECT().GetRouteByID(gomock.Any(), int64(1)).Return(&models.Route{ID: 1}, nil)
	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), int64(2)).Return(&models.Vehicle{ID: 2, Capacity: 35}, nil)
	mockRepo.EXPECT().
		CreateSchedule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Schedule) error {
			assert.Equal(t, 35, s.SeatsAvailable)
			return nil
		})

	_, err := uc.CreateSchedule(context.Background(), payload)
	require.NoError(t, err)
}

func TestCreateSchedule_SeatsBeyondCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCatalogRepo(ctrl)
	uc := NewCatalogUC(mockRepo, &models.Config{})

	departure := time.Date(2026, 9, 15, 6, 0, 0, 0, time.UTC)
	payload := &models.CreateSchedulePayload{
		RouteID:        1,
		VehicleID:      2,
		DepartureAt:    departure,
		ArrivalAt:      departure.Add(time.Hour),
		SeatsAvailable: 50,
	}

	mockRepo.EXPECT().GetRouteByID(gomock.Any(), int64(1)).Return(&models.Route{ID: 1}, nil)
	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), int64(2)).Return(&models.Vehicle{ID: 2, Capacity: 35}, nil)

	_, err := uc.CreateSchedule(context.Background(), payload)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateScheduleStatus_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewCatalogUC(mocks.NewMockCatalogRepo(ctrl), &models.Config{})

	err := uc.UpdateScheduleStatus(context.Background(), 4, "boarding")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
