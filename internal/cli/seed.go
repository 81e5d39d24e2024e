package cli

import (
	"context"
	"time"

	dbpostgres "parish-match/internal/database/postgres"
	"parish-match/internal/database/seeder"
	"parish-match/internal/infrastructure/cache"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo citizens, jobs and analytics snapshots",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return seed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seed(ctx context.Context) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Error("connecting to database", zap.Error(err))
		return err
	}
	defer db.Close()

	runner := seeder.Runner{Seeders: seeder.Defaults(), Logger: log.Named("seed")}
	if err := runner.Run(ctx, db); err != nil {
		log.Error("seeding failed", zap.Error(err))
		return err
	}

	// Cached recommendations predate the new rows.
	kv := cache.NewRedis(cfg.Redis, log)
	defer kv.Close()
	if err := kv.DeleteByPattern(ctx, "matching:recommended:*"); err != nil {
		log.Warn("invalidating recommendation cache", zap.Error(err))
	}

	log.Info("seed finished")
	return nil
}
