package cli

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/repository/boltdb"
	"github.com/nikolayk812/storefront/internal/repository/memory"
	"github.com/nikolayk812/storefront/internal/repository/sqlite"
)

func openStorage(ctx context.Context, cfg config.Config) (port.SlotStorage, func() error, error) {
	switch cfg.Storage {
	case config.StorageBolt:
		store, err := boltdb.Open(cfg.StoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("boltdb.Open: %w", err)
		}
		return store, store.Close, nil
	case config.StorageSQLite:
		store, err := sqlite.Open(cfg.StoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite.Open: %w", err)
		}
		return store, store.Close, nil
	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("pool.Ping: %w", err)
		}
		return repository.NewSlots(pool), func() error {
			pool.Close()
			return nil
		}, nil
	case config.StorageMemory:
		return memory.New(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("storage[%s] is not supported", cfg.Storage)
	}
}
