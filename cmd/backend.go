package main

import (
	"context"
	"fmt"
	"log/slog"

	"adrecon/internal/adapter/kv"
	badgerkv "adrecon/internal/adapter/kv/badger"
	"adrecon/internal/adapter/kv/memory"
	"adrecon/internal/adapter/kvrepo"
	"adrecon/internal/adapter/postgres"
	"adrecon/internal/config/configs"
	"adrecon/internal/core/port"
	"adrecon/internal/db"
)

// backend bundles the repositories of the configured store.
type backend struct {
	recon port.ReconciliationRepository
	pop   port.ProofOfPlayRepository
	close func()
}

func openBackend(ctx context.Context) (*backend, error) {
	logger.Info("opening store", slog.String("backend", cfg.Store.Backend))

	switch cfg.Store.Backend {
	case configs.BackendMemory:
		return kvBackend(memory.New()), nil
	case configs.BackendBadger:
		store, err := badgerkv.Open(cfg.Badger, logger)
		if err != nil {
			return nil, err
		}
		return kvBackend(store), nil
	case configs.BackendPostgres:
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		return &backend{
			recon: postgres.NewReconciliationRepository(pool),
			pop:   postgres.NewProofOfPlayRepository(pool),
			close: pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func kvBackend(store kv.Store) *backend {
	return &backend{
		recon: kvrepo.NewReconciliationRepository(store),
		pop:   kvrepo.NewProofOfPlayRepository(store),
		close: func() {
			if err := store.Close(); err != nil {
				logger.Error("close store", slog.Any("error", err))
			}
		},
	}
}
