package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// RequestRepo implements the service request repository against PostgreSQL.
type RequestRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRequestRepo creates a new request repository instance
func NewRequestRepo(cfg *models.Config, db *sqlx.DB) *RequestRepo {
	return &RequestRepo{
		cfg: cfg,
		db:  db,
	}
}
