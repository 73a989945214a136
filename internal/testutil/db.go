// Package testutil holds helpers shared by package tests.
package testutil

import (
	"olympus_backend/internal/config"
	"olympus_backend/pkg/database"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB returns a migrated in-memory SQLite database private to the test.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"}, logger.Silent)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	// every connection to :memory: is a new database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// TestConfig is a minimal configuration for wiring services in tests.
func TestConfig() *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"},
		Session: config.SessionConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
			CookieName: "olympus_session",
		},
		App:     config.AppConfig{MaxUploadMB: 1, PageSize: 20},
		Storage: config.StorageConfig{Type: "local"},
	}
}
