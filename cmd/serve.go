package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "adrecon/internal/adapter/http"
	"adrecon/internal/adapter/notify"
	"adrecon/internal/adapter/usecase"
	"adrecon/internal/config/configs"
	"adrecon/internal/db"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the ingest workers",
	RunE:  runServe,
}

// runServe starts the HTTP server. On SIGINT or SIGTERM it stops accepting
// requests, drains the ingest pool and closes the store.
func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Store.Backend == configs.BackendPostgres && cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	be, err := openBackend(ctx)
	if err != nil {
		return err
	}
	defer be.close()

	recorder := notify.NewRecorder(cfg.HTTP.RecentOutcomes)
	notifier := notify.Multi{
		notify.NewLogger(logger),
		notify.NewMetrics(prometheus.DefaultRegisterer),
		recorder,
	}
	recon := usecase.NewReconciliationUseCase(be.recon, notifier, logger)
	pop := usecase.NewProofOfPlayUseCase(be.pop, notifier, logger)
	pool := usecase.NewIngestPool(recon, cfg.Ingest.Workers, cfg.Ingest.QueueSize, logger)

	handler := httpadapter.NewHandler(recon, pop, pool, recorder, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		select {
		case caught = <-quit:
			logger.Info("shutdown signal received", slog.String("signal", caught.String()))
		case <-gctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		} else {
			logger.Info("server gracefully stopped")
		}
		pool.Shutdown()
		return err
	})
	return g.Wait()
}
