package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/arionfin/arion-backend/internal/core/services"
	"github.com/arionfin/arion-backend/internal/export"
	"github.com/arionfin/arion-backend/internal/handlers"
	"github.com/arionfin/arion-backend/internal/middleware"
	"github.com/arionfin/arion-backend/internal/notifier"
	"github.com/arionfin/arion-backend/internal/platform/config"
	"github.com/arionfin/arion-backend/internal/repositories/database/pgsql"
	"github.com/arionfin/arion-backend/pkg/database"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Arion Backend API
// @version 1.0
// @description Personal finance ledger, budget evaluation and reporting API.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		os.Exit(1)
	}

	// Budget alerts are optional: without a broker URL the transaction flow
	// simply skips publishing.
	var alerts portssvc.BudgetAlertPublisher
	if cfg.AMQPURL != "" {
		publisher, err := notifier.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			logger.Error("Failed to connect to AMQP broker", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer publisher.Close()
		alerts = publisher
		logger.Info("Budget alert publisher connected.", slog.String("exchange", cfg.AMQPExchange))
	}

	renderers := map[string]portssvc.ReportRenderer{
		"csv":  export.NewCSVRenderer(),
		"xlsx": export.NewXLSXRenderer(),
		"pdf":  export.NewPDFRenderer(),
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, alerts, renderers)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations from the migrations
// directory using a temporary database/sql connection.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
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

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", upErr.Error()))
		return upErr
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

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
