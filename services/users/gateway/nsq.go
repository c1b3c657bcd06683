package gateway

import (
	"context"
	"time"

	"github.com/rioatrato/transchoco/internal/pkg/constants"
	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// UserRegisteredEvent is published whenever a new account is created.
type UserRegisteredEvent struct {
	UserID       int64     `json:"user_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	RegisteredAt time.Time `json:"registered_at"`
}

// PublishUserRegistered publishes the registration event.
func (g *UserGW) PublishUserRegistered(_ context.Context, user *models.User) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(constants.TopicUserRegistered, UserRegisteredEvent{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		RegisteredAt: user.CreatedAt,
	})
}
