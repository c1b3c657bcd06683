package usecase

import (
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/support"
)

// SupportUC implements the support usecase.
type SupportUC struct {
	supportRepo support.SupportRepo
	supportGW   support.SupportGW
	cfg         *models.Config
}

// NewSupportUC creates a new support usecase instance
func NewSupportUC(
	supportRepo support.SupportRepo,
	supportGW support.SupportGW,
	cfg *models.Config,
) *SupportUC {
	return &SupportUC{
		supportRepo: supportRepo,
		supportGW:   supportGW,
		cfg:         cfg,
	}
}
