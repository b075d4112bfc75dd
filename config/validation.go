package config

import (
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is complete for the
// selected storage driver.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.ServerPort == "" {
		errs = append(errs, "SERVER_PORT must not be empty")
	}

	switch cfg.StorageDriver {
	case DriverMemory:
		// No further requirements; data lives for the process lifetime only.
	case DriverRedis:
		if cfg.RedisURL != "" {
			if _, err := redis.ParseURL(cfg.RedisURL); err != nil {
				errs = append(errs, fmt.Sprintf("invalid REDIS_URL: %v", err))
			}
		} else if cfg.RedisHost == "" || cfg.RedisPort == "" {
			errs = append(errs, "redis driver requires REDIS_URL or REDIS_HOST and REDIS_PORT")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			errs = append(errs, "sqlite driver requires SQLITE_PATH")
		}
	case DriverPostgres:
		if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBName == "" {
			errs = append(errs, "postgres driver requires DB_HOST, DB_PORT, DB_USER and DB_NAME")
		}
		// Local and CI databases commonly run passwordless; production
		// must not.
		if cfg.DBPassword == "" && IsProduction() {
			errs = append(errs, "postgres driver requires DB_PASSWORD in production")
		}
	case DriverS3:
		if cfg.S3Bucket == "" {
			errs = append(errs, "s3 driver requires S3_BUCKET_NAME")
		}
		if cfg.AWSRegion == "" {
			errs = append(errs, "s3 driver requires AWS_REGION")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown storage driver %q", cfg.StorageDriver))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
