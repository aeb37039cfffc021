package client

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/BlogApp/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const migrationsSource = "file://internal/database/migrations"

// Client holds the PostgreSQL connections: sqlx for the user/session storages
// and golang-migrate, GORM for the post storage.
type Client struct {
	DB     *sqlx.DB
	Gorm   *gorm.DB
	logger *slog.Logger
}

// NewClient opens the PostgreSQL connections and applies pending migrations.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	start := time.Now()

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open PostgreSQL connection", "error", err)
		return nil, fmt.Errorf("open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := applyMigrations(cfg.DatabaseURL, logger); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.Error("failed to open GORM connection", "error", err)
		return nil, fmt.Errorf("open GORM connection: %w", err)
	}

	logger.Info("PostgreSQL connections established",
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Client{DB: db, Gorm: gormDB, logger: logger}, nil
}

// applyMigrations applies all pending migrations to the database.
func applyMigrations(databaseURL string, logger *slog.Logger) error {
	m, err := migrate.New(migrationsSource, databaseURL)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	err = m.Up()
	switch {
	case err == migrate.ErrNoChange:
		logger.Info("no migrations to apply, schema is up to date")
	case err != nil:
		return fmt.Errorf("run migrations: %w", err)
	default:
		logger.Info("migrations applied successfully")
	}
	return nil
}

func (c *Client) Close() error {
	start := time.Now()
	if err := c.DB.Close(); err != nil {
		c.logger.Error("failed to close database connection", "error", err)
		return err
	}
	c.logger.Info("database connection closed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
