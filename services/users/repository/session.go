package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/rioatrato/transchoco/internal/pkg/constants"
)

// CreateSession stores the live token id for a user. A user holds at most
// one session; a new login replaces the previous token.
func (r *UserRepo) CreateSession(ctx context.Context, userID int64, jti string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyUserSession, userID)
	if err := r.redisClient.Set(ctx, key, jti, ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// DeleteSession revokes the user's session.
func (r *UserRepo) DeleteSession(ctx context.Context, userID int64) error {
	key := fmt.Sprintf(constants.KeyUserSession, userID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// SessionActive reports whether the token id is the user's current session.
func (r *UserRepo) SessionActive(ctx context.Context, userID int64, jti string) (bool, error) {
	key := fmt.Sprintf(constants.KeyUserSession, userID)
	stored, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read session: %w", err)
	}
	return stored == jti, nil
}
