package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// SupportRepo implements the support repository against PostgreSQL.
type SupportRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewSupportRepo creates a new support repository instance
func NewSupportRepo(cfg *models.Config, db *sqlx.DB) *SupportRepo {
	return &SupportRepo{
		cfg: cfg,
		db:  db,
	}
}
