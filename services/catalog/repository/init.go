package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// CatalogRepo implements the catalog repository against PostgreSQL.
type CatalogRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewCatalogRepo creates a new catalog repository instance
func NewCatalogRepo(cfg *models.Config, db *sqlx.DB) *CatalogRepo {
	return &CatalogRepo{
		cfg: cfg,
		db:  db,
	}
}
