package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftQuest_Go/internal/config"
	"github.com/osse101/CraftQuest_Go/internal/database"
	"github.com/osse101/CraftQuest_Go/internal/database/postgres"
	"github.com/osse101/CraftQuest_Go/internal/repository"
)

// Store is the save-slot persistence the application runs with
type Store struct {
	Pool      *pgxpool.Pool
	SaveState repository.SaveState
}

// InitializeStore connects to PostgreSQL, applies migrations when enabled and
// builds the save-state repository. The caller closes Pool.
func InitializeStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	slog.Info(LogMsgConnectingDatabase, "host", cfg.DBHost, "port", cfg.DBPort, "db", cfg.DBName)

	connectCtx, cancel := context.WithTimeout(ctx, DBConnectTimeout)
	defer cancel()

	pool, err := database.NewPool(connectCtx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedPingDB, err)
	}

	if cfg.DBMigrate {
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied)
	}

	slog.Info(LogMsgSaveStoreReady)
	return &Store{
		Pool:      pool,
		SaveState: postgres.NewSaveStateRepository(pool),
	}, nil
}
