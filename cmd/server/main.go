package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"account_backend/internal/app/di"
	"account_backend/internal/app/router"
	userhandler "account_backend/internal/feature/users/transport/handler"
	userusecase "account_backend/internal/feature/users/usecase"
	"account_backend/internal/platform/config"
	infradb "account_backend/internal/platform/db"
	"account_backend/internal/platform/password"
	infraredis "account_backend/internal/platform/redis"
	"account_backend/internal/platform/token"
)

func main() {
	// Config: fails fast without a signing key, there is no built-in fallback secret.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// DB
	db, err := infradb.Open(cfg.DB)
	if err != nil {
		log.Fatal(err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Platform services
	hasher := password.NewBcryptHasher()
	tokens, err := token.NewManager(cfg.Token.Keys, cfg.Token.ActiveKID, cfg.Token.TTL)
	if err != nil {
		log.Fatalf("token manager: %v", err)
	}

	// Repository (cache-wrapped when Redis is up)
	userRepo := di.NewUserRepository(rdb, db, 5*time.Minute)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo, hasher, tokens)

	// Handler
	userH := userhandler.NewUserHandler(userUC)

	router := router.NewRouter(userH)

	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
