// Package config loads the process configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Gabo-RDev/LinkUp/cache"
	"github.com/Gabo-RDev/LinkUp/internal/media"
	"github.com/Gabo-RDev/LinkUp/internal/storage"
)

// Config is the full process configuration.
type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
	Cache    cache.Config
	Media    media.Config

	// Posts created within this window show up in the recent listing; zero
	// means the whole category.
	RecentPostsWindow time.Duration

	LogLevel string
	LogPath  string
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectRetries  int
	RetryDelay      time.Duration
	AutoMigrate     bool
}

// Options converts the section into storage options.
func (d DatabaseConfig) Options() storage.Options {
	return storage.Options{
		Driver:          d.Driver,
		DSN:             d.DSN,
		MaxOpenConns:    d.MaxOpenConns,
		MaxIdleConns:    d.MaxIdleConns,
		ConnMaxLifetime: d.ConnMaxLifetime,
		ConnectRetries:  d.ConnectRetries,
		RetryDelay:      d.RetryDelay,
	}
}

type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	Mode            string
}

// Load reads .env when present, then the environment, and validates the result.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment alone is enough.
	_ = godotenv.Load()

	defaults := cache.DefaultConfig()

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", storage.DriverPostgres),
			DSN:             getEnv("DB_DSN", ""),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnectRetries:  getEnvInt("DB_CONNECT_RETRIES", 5),
			RetryDelay:      getEnvDuration("DB_RETRY_DELAY", 2*time.Second),
			AutoMigrate:     getEnvBool("DB_AUTO_MIGRATE", true),
		},
		HTTP: HTTPConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			AllowedOrigins:  getEnvList("HTTP_ALLOWED_ORIGINS", []string{"*"}),
			Mode:            getEnv("GIN_MODE", "release"),
		},
		Cache: cache.Config{
			Backend:            getEnv("CACHE_BACKEND", defaults.Backend),
			TTL:                getEnvDuration("CACHE_TTL", defaults.TTL),
			Codec:              getEnv("CACHE_CODEC", defaults.Codec),
			Capacity:           getEnvInt("CACHE_CAPACITY", defaults.Capacity),
			NumShards:          getEnvInt("CACHE_SHARDS", defaults.NumShards),
			EvictionPercentage: getEnvInt("CACHE_EVICTION_PERCENTAGE", defaults.EvictionPercentage),
			EvictionInterval:   getEnvDuration("CACHE_EVICTION_INTERVAL", defaults.EvictionInterval),
			RedisAddr:          getEnv("REDIS_ADDR", defaults.RedisAddr),
			RedisPassword:      getEnv("REDIS_PASSWORD", ""),
			RedisDB:            getEnvInt("REDIS_DB", 0),
			KeyPrefix:          getEnv("CACHE_KEY_PREFIX", defaults.KeyPrefix),
		},
		Media: media.Config{
			Provider: getEnv("MEDIA_PROVIDER", media.ProviderNone),
			Cloudinary: media.CloudinaryConfig{
				CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
				APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
				APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
				Folder:    getEnv("CLOUDINARY_FOLDER", "linkup"),
				Timeout:   getEnvDuration("CLOUDINARY_TIMEOUT", 30*time.Second),
			},
			S3: media.S3Config{
				Bucket:        getEnv("S3_BUCKET", ""),
				Region:        getEnv("AWS_REGION", "us-east-1"),
				Folder:        getEnv("S3_FOLDER", "profiles"),
				PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
			},
		},
		RecentPostsWindow: getEnvDuration("RECENT_POSTS_WINDOW", 0),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogPath:           getEnv("LOG_PATH", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks required fields and ranges.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case storage.DriverPostgres, storage.DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", storage.DriverPostgres, storage.DriverSQLite, c.Database.Driver)
	}

	if c.Database.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}

	if c.Database.ConnectRetries < 1 {
		return fmt.Errorf("DB_CONNECT_RETRIES must be at least 1")
	}

	if c.HTTP.Addr == "" {
		return fmt.Errorf("HTTP_ADDR is required")
	}

	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("invalid cache config: %w", err)
	}

	switch c.Media.Provider {
	case media.ProviderNone, "":
	case media.ProviderCloudinary:
		if c.Media.Cloudinary.CloudName == "" || c.Media.Cloudinary.APIKey == "" || c.Media.Cloudinary.APISecret == "" {
			return fmt.Errorf("CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET are required for the cloudinary provider")
		}
	case media.ProviderS3:
		if c.Media.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for the s3 provider")
		}
	default:
		return fmt.Errorf("unknown MEDIA_PROVIDER %q", c.Media.Provider)
	}

	if c.RecentPostsWindow < 0 {
		return fmt.Errorf("RECENT_POSTS_WINDOW must not be negative")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated value, dropping empty entries.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
