package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/TextRealm_Go/internal/config"
	"github.com/osse101/TextRealm_Go/internal/database"
	"github.com/osse101/TextRealm_Go/internal/database/bolt"
	"github.com/osse101/TextRealm_Go/internal/database/postgres"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

// Pinger reports whether storage is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Storage is the selected character backend. Health is nil for
// backends that live in process.
type Storage struct {
	Items    repository.Items
	Profiles repository.Profiles
	Health   Pinger
	close    func() error
}

// Close releases the backend. Safe on a zero Storage.
func (s *Storage) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// InitializeStorage opens the backend named by cfg.Persistence. Postgres is
// migrated before use.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var st *Storage

	switch cfg.Persistence {
	case config.PersistenceMemory:
		st = &Storage{
			Items:    repository.NewMemoryItems(),
			Profiles: repository.NewMemoryProfiles(),
		}

	case config.PersistencePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{
			MaxConns: cfg.DBMaxConns,
			MaxIdle:  cfg.DBMaxConnIdleTime,
			MaxLife:  cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		st = &Storage{
			Items:    postgres.NewItemRepository(pool),
			Profiles: postgres.NewProfileRepository(pool),
			Health:   pool,
			close: func() error {
				pool.Close()
				return nil
			},
		}

	case config.PersistenceBolt:
		repo, err := bolt.Open(cfg.BoltPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenBolt, err)
		}
		st = &Storage{Items: repo, Profiles: repo.Profiles(), close: repo.Close}

	default:
		return nil, fmt.Errorf(ErrMsgUnknownPersistence, cfg.Persistence)
	}

	slog.Info(LogMsgStorageSelected, "persistence", cfg.Persistence)
	return st, nil
}
