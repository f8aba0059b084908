package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/fincore-dev/asset_ledger_app/internal/core/services"
	"github.com/fincore-dev/asset_ledger_app/internal/platform/config"
	"github.com/fincore-dev/asset_ledger_app/internal/platform/lock"
	"github.com/fincore-dev/asset_ledger_app/internal/platform/logging"
	"github.com/fincore-dev/asset_ledger_app/internal/repositories/cache"
	"github.com/fincore-dev/asset_ledger_app/internal/repositories/database/pgsql"
	"github.com/fincore-dev/asset_ledger_app/pkg/database"

	portssvc "github.com/fincore-dev/asset_ledger_app/internal/core/ports/services"
)

const masterDataCacheTTL = 15 * time.Minute

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	// Master data is read on every balance calculation; serve it from memory.
	repos.AppSettingRepo = cache.NewCachedAppSettingRepository(repos.AppSettingRepo, masterDataCacheTTL)
	repos.HolidayRepo = cache.NewCachedHolidayRepository(repos.HolidayRepo, masterDataCacheTTL)

	container := services.NewServiceContainer(cfg, *repos, lock.NewIdLockManager())

	logger.Info("Batch scheduler starting", slog.Duration("interval", cfg.BatchInterval))
	runBatchLoop(logging.WithLogger(ctx, logger), container.Batch, cfg.BatchInterval)
	logger.Info("Shutting down.")
}

// runMigrations applies all pending schema migrations before the batch runs
// touch any table.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Migrations use a standard sql.DB connection over the pgx stdlib driver.
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// runBatchLoop triggers the closing and realization runs once at startup and
// then on every tick until the context is cancelled.
func runBatchLoop(ctx context.Context, batch portssvc.BatchSvcFacade, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runBatchOnce(ctx, batch)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runBatchOnce(ctx, batch)
		}
	}
}

// runBatchOnce executes one closing run followed by one realization run.
// Failures are logged and the next tick retries; per-entity errors are already
// isolated inside the batch service.
func runBatchOnce(ctx context.Context, batch portssvc.BatchSvcFacade) {
	logger := logging.GetLoggerFromCtx(ctx)
	if err := batch.ClosingCashOut(ctx); err != nil {
		logger.Error("Closing cash out run failed", slog.String("error", err.Error()))
	}
	if err := batch.RealizeCashflow(ctx); err != nil {
		logger.Error("Cashflow realization run failed", slog.String("error", err.Error()))
	}
}
