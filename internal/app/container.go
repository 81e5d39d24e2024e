package app

import (
	"context"
	"errors"
	"time"

	"parish-match/internal/config"
	"parish-match/internal/database"
	dbpostgres "parish-match/internal/database/postgres"
	"parish-match/internal/infrastructure/cache"
	"parish-match/internal/pkg/jwt"
	"parish-match/internal/repository"
	"parish-match/internal/storage"
	"parish-match/internal/usecase"

	"go.uber.org/zap"
)

// Container owns the long-lived dependencies shared by the CLI commands.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	JWT    *jwt.HMACService

	Matching  *usecase.Matching
	Analytics *usecase.Analytics
	Parishes  *usecase.Parishes
}

func NewContainer(cfg config.Config, log *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return Wire(cfg, log, db, cache.NewRedis(cfg.Redis, log)), nil
}

// Wire assembles the usecases over already opened stores.
func Wire(cfg config.Config, log *zap.Logger, db database.DB, kv *cache.Redis) *Container {
	jobs := repository.NewPostgresJobRepository(db)
	users := repository.NewPostgresUserRepository(db)

	// Without Redis each process keeps its own short-lived recommendations.
	var recommendations storage.KV = kv
	if !kv.Enabled() {
		recommendations = storage.NewMemory(cfg.Redis.TTL)
	}

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Cache:  kv,
		JWT:    jwt.NewHMACService(cfg.Auth.TokenSecret, cfg.App.AppName, cfg.Auth.TokenTTL),

		Matching: usecase.NewMatchingUsecase(users, jobs, recommendations, cfg.Matching.RecommendedLimit, log),
		Analytics: usecase.NewAnalyticsUsecase(
			repository.NewPostgresAnalyticsRepository(db),
			repository.NewPostgresApplicationRepository(db),
			log,
		),
		Parishes: usecase.NewParishUsecase(jobs, log),
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
