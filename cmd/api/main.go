// Package main is the entrypoint for the household API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/homebase/household-api/internal/api"
	"github.com/homebase/household-api/internal/core/domain"
	"github.com/homebase/household-api/internal/core/service"
	"github.com/homebase/household-api/internal/infrastructure/db/mongo"
	"github.com/homebase/household-api/internal/infrastructure/db/redis"
	"github.com/homebase/household-api/internal/infrastructure/http/handlers"
	"github.com/homebase/household-api/internal/infrastructure/storage"
	"github.com/homebase/household-api/internal/pkg/config"
	"github.com/homebase/household-api/pkg/logger"
)

const serviceName = "household-api"

// @title           Household API
// @version         1.0
// @description     Household management backend: accounts, appliances, bills, inventory and tasks.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: serviceName})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: serviceName,
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  serviceName,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	users := mongo.NewUserRepository(db)
	appliances := mongo.NewApplianceRepository(db)
	bills := mongo.NewBillRepository(db)
	inventory := mongo.NewInventoryRepository(db)
	tasks := mongo.NewTaskRepository(db)

	if err := mongo.EnsureIndexes(ctx, users, appliances, bills, inventory, tasks); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	tokens := service.NewTokenService(service.TokenConfig{
		Secret: cfg.Auth.JWTSecret,
		Issuer: cfg.Auth.JWTIssuer,
		TTL:    cfg.Auth.TokenTTL,
	})
	hasher := service.NewPasswordHasher(cfg.Auth.BcryptCost)
	throttle := redis.NewLoginThrottle(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginLockoutWindow)

	images, err := storage.NewImageStore(afero.NewOsFs(), cfg.Upload.Dir, "/uploads", cfg.Upload.MaxBytes)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	e := api.NewRouter(api.Dependencies{
		Config:     cfg,
		Logger:     log,
		Tokens:     tokens,
		Auth:       service.NewAuthService(users, tokens, hasher, throttle, logger.Component("auth")),
		Accounts:   service.NewAccountService(users, hasher, logger.Component("account")),
		Appliances: service.NewOwnedService[domain.Appliance, *domain.Appliance](appliances, logger.Component("appliances")),
		Bills:      service.NewOwnedService[domain.Bill, *domain.Bill](bills, logger.Component("bills")),
		Inventory:  service.NewOwnedService[domain.InventoryItem, *domain.InventoryItem](inventory, logger.Component("inventory")),
		Tasks:      service.NewOwnedService[domain.Task, *domain.Task](tasks, logger.Component("tasks")),
		Images:     images,
		Readiness: map[string]handlers.Checker{
			"mongodb": handlers.MongoChecker(db),
			"redis":   handlers.RedisChecker(rdb),
		},
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
