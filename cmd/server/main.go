package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jass-platform/distribution-service/internal/api"
	"github.com/jass-platform/distribution-service/internal/core/ports"
	"github.com/jass-platform/distribution-service/internal/core/service"
	"github.com/jass-platform/distribution-service/internal/infrastructure/config"
	mongodb "github.com/jass-platform/distribution-service/internal/infrastructure/db/mongo"
	redisdb "github.com/jass-platform/distribution-service/internal/infrastructure/db/redis"
	"github.com/jass-platform/distribution-service/internal/infrastructure/usersapi"
	"github.com/jass-platform/distribution-service/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	fareRepo := mongodb.NewFareRepository(db)
	if err := fareRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure fare indexes")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Users service gateway ---
	gateway := usersapi.NewService(usersapi.Config{
		BaseURL:        cfg.UsersAPI.BaseURL,
		AdminsPath:     cfg.UsersAPI.AdminsPath,
		UsersPath:      cfg.UsersAPI.UsersPath,
		ClientsPath:    cfg.UsersAPI.ClientsPath,
		UserByIDPath:   cfg.UsersAPI.UserByIDPath,
		ConnectTimeout: cfg.UsersAPI.ConnectTimeout(),
		ReadTimeout:    cfg.UsersAPI.ReadTimeout(),
		MaxAttempts:    cfg.UsersAPI.RetryMaxAttempts,
		RetryBaseDelay: cfg.UsersAPI.RetryBaseDelay(),
		Credential: usersapi.CredentialFor(
			cfg.UsersAPI.AuthScheme,
			cfg.UsersAPI.AuthToken,
			cfg.UsersAPI.APIKey,
			cfg.UsersAPI.Username,
			cfg.UsersAPI.Password,
		),
	}, log)

	var orgs ports.OrganizationService = gateway
	if cfg.Redis.AdminCacheTTL > 0 {
		orgs = redisdb.NewAdminCache(gateway, rdb, cfg.Redis.AdminCacheTTL, log)
	}

	fareService := service.NewFareService(fareRepo, log)

	e := api.NewRouter(api.Deps{
		Mongo:         db,
		Redis:         rdb,
		Organizations: orgs,
		Fares:         fareService,
		AuthReporter:  gateway,
		JWTSecret:     cfg.JWTSecret,
		Logger:        log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("users_api", cfg.UsersAPI.BaseURL).Msg("distribution service started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
