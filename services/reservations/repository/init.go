package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// ReservationRepo implements the reservation repository against PostgreSQL.
type ReservationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewReservationRepo creates a new reservation repository instance
func NewReservationRepo(cfg *models.Config, db *sqlx.DB) *ReservationRepo {
	return &ReservationRepo{
		cfg: cfg,
		db:  db,
	}
}
