package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/Marco-XM/arixyDashboardBack/internal/api"
	"github.com/Marco-XM/arixyDashboardBack/internal/config"
	"github.com/Marco-XM/arixyDashboardBack/internal/database"
	"github.com/Marco-XM/arixyDashboardBack/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, environment variables win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := ensureDataDir(cfg); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	blobs, err := storage.NewS3Store(cfg)
	if err != nil {
		log.Printf("Blob storage disabled: %v", err)
		blobs = storage.Disabled()
	}

	router, _ := api.SetupRouter(db, cfg, blobs)

	log.Printf("Starting Arixy dashboard server on port %s", cfg.APIPort)
	log.Printf("Database path: %s", cfg.DatabasePath)
	if err := router.Run(":" + cfg.APIPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// ensureDataDir creates the data directory and the database parent
// directory if they don't exist
func ensureDataDir(cfg *config.Config) error {
	dirs := []string{
		cfg.DataDir,
		filepath.Dir(cfg.DatabasePath),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
