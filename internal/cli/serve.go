package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"parish-match/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(parent context.Context) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return err
	}

	container, err := app.NewContainer(cfg, log)
	if err != nil {
		log.Error("connecting dependencies", zap.Error(err))
		return err
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Warn("cleanup error", zap.Error(err))
		}
	}()

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := app.New(container)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting the parish-match API", zap.String("addr", addr), zap.String("version", version))
		return server.Fiber.Listen(addr)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Fiber.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
