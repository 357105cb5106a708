package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabo-RDev/LinkUp/cache"
	"github.com/Gabo-RDev/LinkUp/internal/media"
	"github.com/Gabo-RDev/LinkUp/internal/storage"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:         storage.DriverPostgres,
			DSN:            "postgres://linkup@localhost:5432/linkup?sslmode=disable",
			ConnectRetries: 1,
		},
		HTTP:  HTTPConfig{Addr: ":8080"},
		Cache: cache.DefaultConfig(),
		Media: media.Config{Provider: media.ProviderNone},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"sqlite", func(c *Config) { c.Database.Driver = storage.DriverSQLite; c.Database.DSN = "file:linkup.db" }, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"missing dsn", func(c *Config) { c.Database.DSN = "" }, true},
		{"zero retries", func(c *Config) { c.Database.ConnectRetries = 0 }, true},
		{"missing http addr", func(c *Config) { c.HTTP.Addr = "" }, true},
		{"bad cache backend", func(c *Config) { c.Cache.Backend = "memcached" }, true},
		{"cloudinary without secret", func(c *Config) {
			c.Media.Provider = media.ProviderCloudinary
			c.Media.Cloudinary = media.CloudinaryConfig{CloudName: "demo", APIKey: "key"}
		}, true},
		{"s3 without bucket", func(c *Config) { c.Media.Provider = media.ProviderS3 }, true},
		{"s3 with bucket", func(c *Config) { c.Media.Provider = media.ProviderS3; c.Media.S3.Bucket = "photos" }, false},
		{"unknown media provider", func(c *Config) { c.Media.Provider = "ftp" }, true},
		{"negative recent window", func(c *Config) { c.RecentPostsWindow = -time.Hour }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "file::memory:")
	t.Setenv("CACHE_BACKEND", "memory")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("CACHE_CODEC", "msgpack")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://linkup.test, ,https://admin.linkup.test")
	t.Setenv("RECENT_POSTS_WINDOW", "168h")
	t.Setenv("DB_CONNECT_RETRIES", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, storage.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 5, cfg.Database.ConnectRetries, "unparsable values fall back to the default")
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "msgpack", cfg.Cache.Codec)
	assert.Equal(t, []string{"https://linkup.test", "https://admin.linkup.test"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 7*24*time.Hour, cfg.RecentPostsWindow)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")

	_, err := Load()
	assert.Error(t, err)
}
