package usecase

import (
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/requests"
)

// RequestUC implements the service request usecase.
type RequestUC struct {
	requestRepo requests.RequestRepo
	requestGW   requests.RequestGW
	cfg         *models.Config
}

// NewRequestUC creates a new request usecase instance
func NewRequestUC(
	requestRepo requests.RequestRepo,
	requestGW requests.RequestGW,
	cfg *models.Config,
) *RequestUC {
	return &RequestUC{
		requestRepo: requestRepo,
		requestGW:   requestGW,
		cfg:         cfg,
	}
}
