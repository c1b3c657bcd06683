package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/rioatrato/transchoco/internal/pkg/database"
	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// UserRepo implements the users repository against PostgreSQL and Redis.
type UserRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *UserRepo {
	return &UserRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
