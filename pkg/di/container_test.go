package di

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/cache"
	"github.com/Gabo-RDev/LinkUp/internal/config"
	"github.com/Gabo-RDev/LinkUp/internal/dto"
	"github.com/Gabo-RDev/LinkUp/internal/media"
	"github.com/Gabo-RDev/LinkUp/internal/storage"
)

func testConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:         storage.DriverSQLite,
			DSN:            "file:" + uuid.NewString() + "?mode=memory&cache=shared",
			ConnectRetries: 1,
			AutoMigrate:    true,
		},
		HTTP: config.HTTPConfig{
			Addr:           ":0",
			AllowedOrigins: []string{"*"},
			Mode:           gin.TestMode,
		},
		Cache:             cache.DefaultConfig(),
		Media:             media.Config{Provider: media.ProviderNone},
		RecentPostsWindow: 24 * time.Hour,
	}
}

func TestNewContainer(t *testing.T) {
	cfg := testConfig()

	container, err := NewContainer(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewContainer() failed: %v", err)
	}
	defer container.Close()

	if container.DB() == nil {
		t.Error("Container should have a database handle")
	}
	if container.CacheService() == nil {
		t.Error("Container should have a non-nil cache service")
	}
	if container.Aside().TTL() != cfg.Cache.TTL {
		t.Errorf("Expected TTL %v, got %v", cfg.Cache.TTL, container.Aside().TTL())
	}
	if container.Config() != cfg {
		t.Error("Container should keep the configuration it was built from")
	}

	svc := container.Services()
	if svc.Posts == nil || svc.Categories == nil || svc.Interests == nil ||
		svc.Admins == nil || svc.Comments == nil || svc.Likes == nil || svc.Users == nil {
		t.Fatalf("Expected every service to be wired, got %+v", svc)
	}
}

func TestNewContainer_SchemaIsUsable(t *testing.T) {
	container, err := NewContainer(context.Background(), testConfig(), nil)
	if err != nil {
		t.Fatalf("NewContainer() failed: %v", err)
	}
	defer container.Close()

	res, err := container.Services().Categories.Create(context.Background(), dto.CreateCategoryDto{CategoryName: "Go"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if !res.IsSuccess() {
		t.Fatalf("Expected category to be created, got %v", res.Err())
	}
}

func TestContainer_Router(t *testing.T) {
	container, err := NewContainer(context.Background(), testConfig(), nil)
	if err != nil {
		t.Fatalf("NewContainer() failed: %v", err)
	}
	defer container.Close()

	rec := httptest.NewRecorder()
	container.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 from /healthz, got %d", rec.Code)
	}
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown driver", func(c *config.Config) { c.Database.Driver = "oracle" }},
		{"unknown cache backend", func(c *config.Config) { c.Cache.Backend = "memcache" }},
		{"unknown media provider", func(c *config.Config) { c.Media.Provider = "ftp" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)

			container, err := NewContainer(context.Background(), cfg, nil)
			if err == nil {
				container.Close()
				t.Fatal("NewContainer() should fail")
			}
		})
	}
}

type closingCache struct {
	cache.CacheService
	closed int
	err    error
}

func (c *closingCache) Close() error {
	c.closed++
	return c.err
}

func stubAside(t *testing.T, backend *closingCache) {
	t.Helper()
	original := newAside
	newAside = func(ctx context.Context, cfg cache.Config, logger *zap.Logger) (*cache.Aside, cache.CacheService, error) {
		aside, svc, err := original(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		backend.CacheService = svc
		return aside, backend, nil
	}
	t.Cleanup(func() { newAside = original })
}

func TestNewContainer_MediaFailureClosesCache(t *testing.T) {
	backend := &closingCache{}
	stubAside(t, backend)

	cfg := testConfig()
	cfg.Media.Provider = "ftp"

	if _, err := NewContainer(context.Background(), cfg, nil); err == nil {
		t.Fatal("NewContainer() should fail")
	}
	if backend.closed != 1 {
		t.Errorf("Expected cache to be closed once, got %d", backend.closed)
	}
}

func TestContainer_CloseToleratesCacheError(t *testing.T) {
	backend := &closingCache{err: errors.New("connection reset")}
	stubAside(t, backend)

	container, err := NewContainer(context.Background(), testConfig(), nil)
	if err != nil {
		t.Fatalf("NewContainer() failed: %v", err)
	}
	if err := container.Close(); err != nil {
		t.Errorf("Expected database close to succeed, got %v", err)
	}
	if backend.closed != 1 {
		t.Errorf("Expected cache to be closed once, got %d", backend.closed)
	}
}
