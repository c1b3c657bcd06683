package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/models"
)

func setupCatalogRepoTest(t *testing.T) (*CatalogRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &CatalogRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestListActiveRoutes(t *testing.T) {
	repo, mock, cleanup := setupCatalogRepoTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "origin", "destination", "distance_km",
		"duration_hours", "base_price", "route_type", "description", "active", "created_at"}).
		AddRow(int64(1), "Quibdó", "Istmina", 75.0, 2.0, int64(15000),
			models.RouteTypeIntercity, "", true, now).
		AddRow(int64(2), "Quibdó", "Tadó", 85.0, 2.5, int64(18000),
			models.RouteTypeIntercity, "", true, now)

	mock.ExpectQuery("^\\s*SELECT (.+) FROM routes").WillReturnRows(rows)

	routes, err := repo.ListActiveRoutes(context.Background())
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, "Istmina", routes[0].Destination)
}

func TestSearchSchedules_DayBounds(t *testing.T) {
	repo, mock, cleanup := setupCatalogRepoTest(t)
	defer cleanup()

	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	departure := day.Add(6 * time.Hour)

	rows := sqlmock.NewRows([]string{"id", "route_id", "vehicle_id", "departure_at",
		"arrival_at", "price", "seats_available", "status", "created_at",
		"plate", "vehicle_type", "brand", "model",
		"origin", "destination", "duration_hours"}).
		AddRow(int64(4), int64(1), int64(2), departure, departure.Add(150*time.Minute),
			int64(18000), 12, models.ScheduleStatusScheduled, time.Now(),
			"ABC123", models.VehicleTypeBus, "Chevrolet", "NPR",
			"Quibdó", "Tadó", 2.5)

	mock.ExpectQuery("^\\s*SELECT (.+) FROM schedules s").
		WithArgs(int64(1), models.ScheduleStatusScheduled, day, day.AddDate(0, 0, 1)).
		WillReturnRows(rows)

	schedules, err := repo.SearchSchedules(context.Background(), 1, "2026-09-15")
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "ABC123", schedules[0].Plate)
	assert.Equal(t, 12, schedules[0].SeatsAvailable)
}

func TestSearchSchedules_BadDate(t *testing.T) {
	repo, _, cleanup := setupCatalogRepoTest(t)
	defer cleanup()

	_, err := repo.SearchSchedules(context.Background(), 1, "15-09-2026")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateRoute_PartialSet(t *testing.T) {
	repo, mock, cleanup := setupCatalogRepoTest(t)
	defer cleanup()

	price := int64(20000)
	active := false

	mock.ExpectExec("^UPDATE routes SET base_price = \\$1, active = \\$2 WHERE id = \\$3$").
		WithArgs(price, active, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRoute(context.Background(), 1, &models.UpdateRoutePayload{
		BasePrice: &price,
		Active:    &active,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRoute_NoFields(t *testing.T) {
	repo, _, cleanup := setupCatalogRepoTest(t)
	defer cleanup()

	err := repo.UpdateRoute(context.Background(), 1, &models.UpdateRoutePayload{})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
