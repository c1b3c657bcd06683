package usecase

import (
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/users"
)

// UserUC implements the users usecase.
type UserUC struct {
	userRepo users.UserRepo
	userGW   users.UserGW
	cfg      *models.Config
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	userGW users.UserGW,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		userGW:   userGW,
		cfg:      cfg,
	}
}
