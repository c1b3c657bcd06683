package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/models"
)

func TestGetDriverByUserID(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "license_number", "license_category",
		"license_expiry", "years_experience", "owns_vehicle", "available", "rating",
		"completed_trips", "status", "created_at", "updated_at"}).
		AddRow(int64(3), int64(7), "COL-112233", "C2", now.AddDate(1, 0, 0), 8, true,
			true, 4.8, 120, models.DriverStatusApproved, now, now)

	mock.ExpectQuery("^\\s*SELECT (.+) FROM drivers\\s+WHERE user_id").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	driver, err := repo.GetDriverByUserID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), driver.ID)
	assert.True(t, driver.Available)
	assert.Equal(t, 120, driver.CompletedTrips)
}

func TestGetDriverByUserID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^\\s*SELECT (.+) FROM drivers\\s+WHERE user_id").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetDriverByUserID(context.Background(), 99)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSetDriverAvailability(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^UPDATE drivers SET available").
		WithArgs(true, sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetDriverAvailability(context.Background(), 7, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDriverStatus_NoRow(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^UPDATE drivers SET status").
		WithArgs(models.DriverStatusApproved, sqlmock.AnyArg(), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateDriverStatus(context.Background(), 99, models.DriverStatusApproved)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
