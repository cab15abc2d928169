package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"bulletin/config"
	"bulletin/internal/domain/lifecycle"
	"bulletin/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	// Waits at or above this per sample are logged at warn level.
	poolSlowWaitThreshold = 50 * time.Millisecond
)

// Params defines the dependencies of the bulletin store connection.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to the database holding the roles, users and posts tables.
// The connection is verified when the app starts and released when it stops.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bulletin store")
	}
	db = db.Session(&gorm.Session{
		// Cascading user deletes and sign-up run inside TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get bulletin store handle")
	}

	registerStoreLifecycle(params.Lifecycle, params.Logger, sqlDB)

	return db, nil
}

func registerStoreLifecycle(lc fx.Lifecycle, logger *slog.Logger, sqlDB *sql.DB) {
	samplerCtx, stopSampler := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "bulletin store is unreachable")
			}

			if logger != nil {
				go newPoolSampler(logger, sqlDB.Stats()).run(samplerCtx, sqlDB, poolSampleInterval)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopSampler()

			return sqlDB.Close()
		},
	})
}

// poolSampler reports requests that had to wait for a free connection,
// which usually means identity lookups are queueing behind slow queries.
type poolSampler struct {
	logger *slog.Logger
	last   sql.DBStats
}

func newPoolSampler(logger *slog.Logger, initial sql.DBStats) *poolSampler {
	return &poolSampler{logger: logger, last: initial}
}

func (s *poolSampler) run(ctx context.Context, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.observe(ctx, sqlDB.Stats())
		}
	}
}

// observe logs the waits accumulated since the previous sample and reports
// whether any occurred.
func (s *poolSampler) observe(ctx context.Context, cur sql.DBStats) bool {
	waits := cur.WaitCount - s.last.WaitCount
	waited := cur.WaitDuration - s.last.WaitDuration
	s.last = cur

	if waits <= 0 {
		return false
	}

	level := slog.LevelDebug
	if waited >= poolSlowWaitThreshold {
		level = slog.LevelWarn
	}

	s.logger.LogAttrs(ctx, level, "Bulletin store connections exhausted",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)

	return true
}
