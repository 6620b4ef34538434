package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/https-Luan-Fernandes/rest-api-aws/internal/config"
)

// Connect opens the SQLite database, applies pending migrations and returns
// the handle. The handle is established once per process and reused across
// requests.
func Connect(cfg config.DatabaseConfig, logger *logrus.Logger) (*sql.DB, error) {
	dbPath, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite works best with a single writer connection
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	migrationsPath, err := filepath.Abs(cfg.MigrationsPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	if err := RunMigrations(db, migrationsPath, logger); err != nil {
		db.Close()
		return nil, err
	}

	logger.WithField("db_path", dbPath).Info("Database connection established")
	return db, nil
}
