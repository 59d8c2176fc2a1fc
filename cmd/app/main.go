package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"courierhub/cmd"
	"courierhub/internal/adapters/out/postgres"
	"courierhub/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	configs, err := cmd.LoadConfig(os.Getenv("COURIERHUB_CONFIG_DIR"))
	if err != nil {
		panic(err)
	}

	log := logger.New(configs.Log.ToLoggerOptions())
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if runErr := run(ctx, configs, log); runErr != nil {
		log.Fatal("courierhub stopped", zap.Error(runErr))
	}
}

func run(ctx context.Context, configs cmd.Config, log *zap.Logger) error {
	db, err := postgres.Open(configs.Database.Driver, configs.Database.DSN, configs.Database.Pool.ToPoolConfig(), log)
	if err != nil {
		return err
	}
	if err = postgres.Migrate(db); err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(configs, db, log)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if configs.Statuses.SeedOnStart {
		inserted, seedErr := app.SeedStatuses(ctx)
		if seedErr != nil {
			return seedErr
		}
		log.Info("statuses seeded", zap.Int("inserted", inserted))
	}

	registry, err := app.LoadStatusRegistry(ctx)
	if err != nil {
		return err
	}
	if err = registry.RequireWorkflow(); err != nil {
		return err
	}

	manager := app.CreateJobManager()
	if err = manager.StartAll(); err != nil {
		return err
	}
	defer manager.StopAll()

	return startWebServer(ctx, app, configs.HTTP, log)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, cfg cmd.HTTPConfig, log *zap.Logger) error {
	e := app.CreateServer().NewEcho()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("address", cfg.Address()))
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	log.Info("http server shutting down")
	return e.Shutdown(shutdownCtx)
}
