package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/signup/internal/signup/filestore"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"

	StorageLocal = "local"
	StorageS3    = "s3"
)

type Config struct {
	DatabaseDriver string // Record store driver (sqlite, postgres, mongo) (default: sqlite)
	DatabaseURL    string // Driver specific DSN or URI (default depends on the driver)

	StorageBackend string             // File store backend (local, s3) (default: local)
	UploadDir      string             // Directory for the local backend (default: uploads)
	S3             filestore.S3Config // Settings for the s3 backend

	Naming         string // Generated name scheme (ulid, timestamp, uuid, blake2b) (default: ulid)
	CleanupOrphans bool   // Delete written files when a registration fails (default: false)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 3000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		DatabaseDriver: strings.ToLower(getEnvOrDefault("SIGNUP_DATABASE_DRIVER", DriverSQLite)),
		DatabaseURL:    os.Getenv("SIGNUP_DATABASE_URL"),
		StorageBackend: strings.ToLower(getEnvOrDefault("SIGNUP_STORAGE_BACKEND", StorageLocal)),
		UploadDir:      getEnvOrDefault("SIGNUP_UPLOAD_DIR", "uploads"),
		S3: filestore.S3Config{
			Bucket:    os.Getenv("SIGNUP_S3_BUCKET"),
			Region:    getEnvOrDefault("SIGNUP_S3_REGION", "us-east-1"),
			Endpoint:  os.Getenv("SIGNUP_S3_ENDPOINT"),
			AccessKey: os.Getenv("SIGNUP_S3_ACCESS_KEY"),
			SecretKey: os.Getenv("SIGNUP_S3_SECRET_KEY"),
		},
		Naming:              getEnvOrDefault("SIGNUP_NAMING", filestore.SchemeULID),
		CleanupOrphans:      getEnvBoolOrDefault("SIGNUP_CLEANUP_ORPHANS", false),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabaseURL(cfg.DatabaseDriver)
	}

	return cfg
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres, DriverMongo:
	default:
		return fmt.Errorf("unknown database driver %q", c.DatabaseDriver)
	}

	switch c.StorageBackend {
	case StorageLocal:
		if c.UploadDir == "" {
			return fmt.Errorf("SIGNUP_UPLOAD_DIR is required for the local storage backend")
		}
	case StorageS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("SIGNUP_S3_BUCKET is required for the s3 storage backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}

	if _, err := filestore.NewNamer(c.Naming); err != nil {
		return err
	}

	return nil
}

func defaultDatabaseURL(driver string) string {
	switch driver {
	case DriverPostgres:
		return "postgres://localhost:5432/signup?sslmode=disable"
	case DriverMongo:
		return "mongodb://localhost:27017/userDB"
	default:
		return "signup.db"
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
