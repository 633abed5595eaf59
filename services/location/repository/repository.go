package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/prasetya/kumpul/internal/pkg/database"
	"github.com/prasetya/kumpul/internal/pkg/models"
)

// LocationRepo implements the location repository interface over the hot
// store (Redis) and the durable store (Postgres).
type LocationRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *LocationRepo {
	return &LocationRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
