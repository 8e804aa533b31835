package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"account_backend/internal/feature/users/adapters"
	"account_backend/internal/feature/users/adapters/cache"
	"account_backend/internal/feature/users/usecase"
)

// NewUserRepository assembles the UserRepository implementation.
// When Redis is available the PostgreSQL repository is wrapped with the
// read-through cache; otherwise lookups go straight to the database.
func NewUserRepository(rdb *redis.Client, db *gorm.DB, cacheTTL time.Duration) usecase.UserRepository {
	repo := adapters.NewUserPostgres(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingUserRepository(rdb, cacheTTL, repo, "users")
}
