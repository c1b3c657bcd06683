package usecase

import (
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/catalog"
)

// CatalogUC implements the catalog usecase.
type CatalogUC struct {
	catalogRepo catalog.CatalogRepo
	cfg         *models.Config
}

// NewCatalogUC creates a new catalog usecase instance
func NewCatalogUC(catalogRepo catalog.CatalogRepo, cfg *models.Config) *CatalogUC {
	return &CatalogUC{
		catalogRepo: catalogRepo,
		cfg:         cfg,
	}
}
