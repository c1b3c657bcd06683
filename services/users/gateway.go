package users

import (
	"context"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/rioatrato/transchoco/services/users UserGW

// UserGW represents the user gateway interface for outbound events
type UserGW interface {
	PublishUserRegistered(ctx context.Context, user *models.User) error
}
