package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval  = 5 * time.Second
	poolWatchThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the storefront database. With autoMigrate set the tables are
// created on start; the pool is watched for contention until stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watch := newPoolWatch(params.Logger, sqlDB.Stats)
	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if params.Config.Env.AutoMigrate {
				if err := migrate(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("Postgres schema migrated", slog.Int("models", len(model.All())))
			}

			go watch.run(watchCtx, poolWatchInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// migrate creates or alters the storefront tables. Production schemas are managed
// outside the service; this is for local and test databases.
func migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS pg_uuidv7`).Error; err != nil {
		return errors.Wrap(err, "failed to enable uuidv7 extension")
	}
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// poolWatch reports connection waits. Every page view loads and saves a
// browser session, so pool pressure shows up here before checkout slows down.
type poolWatch struct {
	logger    *slog.Logger
	stats     func() sql.DBStats
	threshold time.Duration
	prev      sql.DBStats
}

func newPoolWatch(logger *slog.Logger, stats func() sql.DBStats) *poolWatch {
	return &poolWatch{
		logger:    logger,
		stats:     stats,
		threshold: poolWatchThreshold,
		prev:      stats(),
	}
}

func (w *poolWatch) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

// check logs the waits since the previous call: at warn level once their
// total reaches the threshold, at debug level otherwise.
func (w *poolWatch) check(ctx context.Context) {
	cur := w.stats()
	waits := cur.WaitCount - w.prev.WaitCount
	waited := cur.WaitDuration - w.prev.WaitDuration
	w.prev = cur

	if waits <= 0 {
		return
	}

	level, msg := slog.LevelDebug, "Postgres pool wait observed"
	if waited >= w.threshold {
		level, msg = slog.LevelWarn, "Postgres pool wait detected"
	}
	w.logger.LogAttrs(ctx, level, msg,
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	)
}
