package config

import (
	"crypto/sha256"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the application configuration
type Config struct {
	DatabasePath string `json:"database_path"`
	APIPort      string `json:"api_port"`
	LogLevel     string `json:"log_level"`
	DataDir      string `json:"data_dir"`
	JWTSecret    string `json:"jwt_secret"`
	// EncryptionKey protects stored sender passwords. Empty means derive
	// from JWTSecret.
	EncryptionKey string `json:"encryption_key"`
	CORSOrigins   string `json:"cors_origins"` // comma separated, * for all

	// Blob storage (S3-compatible) for gallery, card and logo images
	StorageEndpoint  string `json:"storage_endpoint"`
	StorageRegion    string `json:"storage_region"`
	StorageBucket    string `json:"storage_bucket"`
	StorageAccessKey string `json:"storage_access_key"`
	StorageSecretKey string `json:"storage_secret_key"`
	StoragePublicURL string `json:"storage_public_url"`
}

// Default configuration values
const (
	DefaultDatabasePath = "data/arixy.db"
	DefaultAPIPort      = "5000"
	DefaultLogLevel     = "INFO"
	DefaultDataDir      = "data"
	DefaultJWTSecret    = "arixy-default-secret-change-in-production"
	DefaultCORSOrigins  = "*"
)

// Load loads configuration from environment variables and config file
// Priority: Environment variables > Config file > Default values
func Load() (*Config, error) {
	cfg := &Config{
		DatabasePath: DefaultDatabasePath,
		APIPort:      DefaultAPIPort,
		LogLevel:     DefaultLogLevel,
		DataDir:      DefaultDataDir,
		JWTSecret:    DefaultJWTSecret,
		CORSOrigins:  DefaultCORSOrigins,
	}

	// Config file is optional
	_ = cfg.loadFromFile()

	cfg.loadFromEnv()

	return cfg, nil
}

// loadFromFile loads configuration from config.json file
func (c *Config) loadFromFile() error {
	configPaths := []string{
		"config.json",
		filepath.Join(c.DataDir, "config.json"),
	}

	for _, path := range configPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		if err := json.Unmarshal(data, c); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if val := os.Getenv("ARIXY_DATABASE_PATH"); val != "" {
		c.DatabasePath = val
	}
	if val := os.Getenv("ARIXY_API_PORT"); val != "" {
		c.APIPort = val
	}
	if val := os.Getenv("PORT"); val != "" {
		c.APIPort = val
	}
	if val := os.Getenv("ARIXY_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}
	if val := os.Getenv("ARIXY_DATA_DIR"); val != "" {
		c.DataDir = val
	}
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWTSecret = val
	}
	if val := os.Getenv("ARIXY_ENCRYPTION_KEY"); val != "" {
		c.EncryptionKey = val
	}
	if val := os.Getenv("ARIXY_CORS_ORIGINS"); val != "" {
		c.CORSOrigins = val
	}
	if val := os.Getenv("STORAGE_ENDPOINT"); val != "" {
		c.StorageEndpoint = val
	}
	if val := os.Getenv("STORAGE_REGION"); val != "" {
		c.StorageRegion = val
	}
	if val := os.Getenv("STORAGE_BUCKET"); val != "" {
		c.StorageBucket = val
	}
	if val := os.Getenv("STORAGE_ACCESS_KEY"); val != "" {
		c.StorageAccessKey = val
	}
	if val := os.Getenv("STORAGE_SECRET_KEY"); val != "" {
		c.StorageSecretKey = val
	}
	if val := os.Getenv("STORAGE_PUBLIC_URL"); val != "" {
		c.StoragePublicURL = val
	}
}

// GetEncryptionKey returns the 32-byte key used to encrypt sender passwords
// If EncryptionKey is set, use it; otherwise derive from JWTSecret
func (c *Config) GetEncryptionKey() []byte {
	if c.EncryptionKey != "" {
		hash := sha256.Sum256([]byte(c.EncryptionKey))
		return hash[:]
	}
	hash := sha256.Sum256([]byte(c.JWTSecret + "-encryption"))
	return hash[:]
}

// GetCORSOrigins splits the configured origins into a slice
func (c *Config) GetCORSOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}

// Save saves the current configuration to a file
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
