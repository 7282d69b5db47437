package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Initialize creates and returns a database connection
func Initialize(dbPath string) (*gorm.DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(sqlite.Open(dbPath), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys and WAL mode for better concurrent access
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}
	if _, err := sqlDB.Exec("PRAGMA journal_mode = WAL"); err != nil {
		// WAL is an optimization; in-memory databases reject it
		if !strings.Contains(dbPath, ":memory:") {
			return nil, err
		}
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// Migrate runs schema migrations for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.EmailConfig{},
		&models.EmailTemplate{},
		&models.Booking{},
		&models.BlockedDate{},
		&models.Event{},
		&models.Card{},
		&models.CardDetail{},
		&models.Client{},
		&models.Contact{},
		&models.Report{},
		&models.Log{},
	)
}
