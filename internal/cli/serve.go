package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aevon-lab/rental-analytics/internal/aggregation"
	corecfg "github.com/aevon-lab/rental-analytics/internal/core/config"
	"github.com/aevon-lab/rental-analytics/internal/core/rollup"
	"github.com/aevon-lab/rental-analytics/internal/core/storage"
	"github.com/aevon-lab/rental-analytics/internal/core/storage/documents"
	"github.com/aevon-lab/rental-analytics/internal/core/storage/postgres"
	"github.com/aevon-lab/rental-analytics/internal/ingestion"
	"github.com/aevon-lab/rental-analytics/internal/migrations"
	"github.com/aevon-lab/rental-analytics/internal/projection"
	"github.com/aevon-lab/rental-analytics/internal/server"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the background snapshot scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "rental.yaml", "Path to configuration file")
	return cmd
}

// backend is what a configured source contributes to the service.
type backend struct {
	reader    storage.FleetReader
	store     storage.FleetStore // nil unless the source is writable
	snapshots aggregation.SnapshotStore
	checks    map[string]server.HealthChecker
	closers   []func() error
}

func (b *backend) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
}

func runServe(ctx context.Context, configPath string) error {
	// 1. Load Configuration
	cfg, err := corecfg.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("Loaded config",
		"source", cfg.Source.Type,
		"timezone", cfg.Rollup.Timezone,
		"interval", cfg.Rollup.Interval,
		"port", cfg.Server.Port,
	)

	loc, err := cfg.Rollup.Location()
	if err != nil {
		return err
	}

	// 2. Initialize Storage
	be, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer be.close()

	engine := rollup.NewEngine(loc)

	// 3. Initialize Aggregation (ticker-based snapshot job)
	job := aggregation.NewSnapshotJob(be.reader, be.snapshots, engine, aggregation.JobParameter{
		Retention:   cfg.Rollup.Retention,
		LoadTimeout: cfg.Rollup.LoadTimeoutDuration(),
	})
	scheduler := aggregation.NewScheduler(cfg.Rollup.IntervalDuration(), job)

	// 4. Initialize Projection (query API)
	projectionSvc := projection.NewService(be.reader, be.snapshots, engine, projection.Options{
		SnapshotMaxAge: cfg.Rollup.SnapshotMaxAgeDuration(),
		LoadTimeout:    cfg.Rollup.LoadTimeoutDuration(),
	})

	// 5. Initialize Server
	srv := server.New(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port), cfg.Server.Mode, be.checks)
	projectionSvc.RegisterRoutes(srv.Engine)

	// Ingestion needs a writable system of record.
	if be.store != nil {
		ingestion.NewService(be.store, cfg.Server.MaxBodySizeMB).RegisterRoutes(srv.Engine)
	} else {
		slog.Info("Ingestion disabled: source is read-only", "source", cfg.Source.Type)
	}

	// 6. Start Services
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	schedulerDone := make(chan struct{})
	if cfg.Rollup.Enabled {
		go func() {
			defer close(schedulerDone)
			if err := scheduler.Start(ctx); err != nil {
				slog.Error("Scheduler stopped with error", "error", err)
			}
		}()
	} else {
		close(schedulerDone)
		slog.Info("Snapshot scheduler disabled by config")
	}

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}
	cancel()
	<-schedulerDone

	slog.Info("Shutdown complete")
	return nil
}

// openBackend connects the configured source. Snapshots go to PostgreSQL
// whenever a DSN is configured and to process memory otherwise.
func openBackend(ctx context.Context, cfg *corecfg.Config) (*backend, error) {
	be := &backend{checks: make(map[string]server.HealthChecker)}

	var db *sql.DB
	if cfg.Database.DSN != "" {
		var err error
		db, err = postgres.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
		if err != nil {
			return nil, fmt.Errorf("initialize database: %w", err)
		}
		be.closers = append(be.closers, db.Close)

		if err := migrations.RunMigrations(db, cfg.Database.AutoMigrate); err != nil {
			be.close()
			return nil, fmt.Errorf("run database migrations: %w", err)
		}
		be.snapshots = postgres.NewSnapshotAdapter(db)
	} else {
		be.snapshots = aggregation.NewMemorySnapshotStore()
	}

	keys := documents.Keys{
		Bookings: cfg.Source.Keys.Bookings,
		Vehicles: cfg.Source.Keys.Vehicles,
		Users:    cfg.Source.Keys.Users,
	}

	switch cfg.Source.Type {
	case corecfg.SourcePostgres:
		fleet, err := postgres.NewFleetAdapter(db)
		if err != nil {
			be.close()
			return nil, fmt.Errorf("initialize fleet store: %w", err)
		}
		be.closers = append(be.closers, fleet.Close)
		be.reader = fleet
		be.store = fleet
		be.checks["database"] = fleet

	case corecfg.SourceRedis:
		redisStore, err := documents.NewRedisStore(ctx, documents.RedisOptions{
			Addr:     cfg.Source.Redis.Addr,
			Password: cfg.Source.Redis.Password,
			DB:       cfg.Source.Redis.DB,
		})
		if err != nil {
			be.close()
			return nil, fmt.Errorf("initialize redis source: %w", err)
		}
		be.closers = append(be.closers, redisStore.Close)
		be.reader = documents.NewSource(redisStore, keys)
		be.checks["redis"] = redisStore

	case corecfg.SourceFile:
		fileStore, err := documents.NewFileStore(cfg.Source.Dir)
		if err != nil {
			be.close()
			return nil, fmt.Errorf("initialize file source: %w", err)
		}
		be.reader = documents.NewSource(fileStore, keys)
		be.checks["source_dir"] = fileStore

	default:
		be.close()
		return nil, fmt.Errorf("unsupported source.type %q", cfg.Source.Type)
	}

	if db != nil && cfg.Source.Type != corecfg.SourcePostgres {
		be.checks["database"] = dbPinger{db}
	}
	return be, nil
}

type dbPinger struct{ db *sql.DB }

func (p dbPinger) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }
