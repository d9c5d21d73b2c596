package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/unistep/loyalty-backend/internal/pkg/database"
	"github.com/unistep/loyalty-backend/internal/pkg/models"
)

// UserRepo implements the user store on PostgreSQL and the OTP challenge
// store on Redis
type UserRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewUserRepo creates a new repository instance
func NewUserRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *UserRepo {
	return &UserRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
