package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"vacation-front/internal/api"
	"vacation-front/internal/config"
	"vacation-front/internal/web"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, falling back to cookie state", zap.Error(err))
			redisClient = nil
		}
		cancel()
	}

	// La credencial por request se resuelve en la capa web; el cliente base
	// queda anónimo.
	client := api.New(cfg.BackendURL, nil, logger)
	handler := web.NewHandler(logger, client, redisClient, cfg.StateDir)
	router := web.NewRouter(logger, cfg, handler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("backend", cfg.BackendURL))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
