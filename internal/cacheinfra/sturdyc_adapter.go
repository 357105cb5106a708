package cacheinfra

import (
	"context"
	"errors"
	"time"

	"github.com/viccon/sturdyc"
	"go.uber.org/zap"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Config holds the configuration for the in-process sturdyc backend.
type Config struct {
	// Capacity defines the maximum number of entries that the cache can store.
	// Must be greater than 0.
	Capacity int

	// NumShards determines the number of cache shards for concurrent access.
	// Must be greater than 0. Default: 256
	NumShards int

	// TTL is the client wide time-to-live. Per entry TTLs passed to Set may
	// shorten it but never extend it.
	// Must be greater than 0. Default: 4 minutes
	TTL time.Duration

	// EvictionPercentage specifies what percentage of entries to evict
	// when the cache reaches its capacity. Must be between 1-100.
	EvictionPercentage int

	// EvictionInterval sets how often the cache checks for expired entries.
	// Zero value uses the sturdyc default.
	EvictionInterval time.Duration
}

// DefaultConfig returns the settings used by the paged read path.
func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          256,
		TTL:                4 * time.Minute,
		EvictionPercentage: 10,
	}
}

// ToSturdycOptions maps the optional settings to sturdyc options.
// Capacity, NumShards, TTL and EvictionPercentage go to sturdyc.New directly.
func (c Config) ToSturdycOptions() []sturdyc.Option {
	var options []sturdyc.Option

	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}

	return options
}

// Validate checks if the configuration values are valid.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}

	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}

	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}

	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}

	if c.EvictionInterval < 0 {
		return &ConfigError{Field: "EvictionInterval", Message: "must be non-negative"}
	}

	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// entry keeps the serialized payload with its own deadline so that a Set
// with a TTL shorter than the client TTL is honoured.
type entry struct {
	value     []byte
	expiresAt time.Time
}

// SturdycService stores opaque payloads in a sharded in-process sturdyc client.
type SturdycService struct {
	client *sturdyc.Client[entry]
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// NewSturdycService validates cfg and builds the sturdyc client.
func NewSturdycService(cfg Config, logger *zap.Logger) (*SturdycService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := sturdyc.New[entry](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.ToSturdycOptions()...,
	)

	return &SturdycService{
		client: client,
		ttl:    cfg.TTL,
		now:    time.Now,
		logger: logger,
	}, nil
}

// Get returns the payload stored under key or ErrMiss.
func (s *SturdycService) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e, ok := s.client.Get(key)
	if !ok {
		return nil, ErrMiss
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		s.client.Delete(key)
		return nil, ErrMiss
	}
	return e.value, nil
}

// Set stores value under key. A ttl of zero or one above the client TTL
// falls back to the client TTL.
func (s *SturdycService) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e := entry{value: value}
	if ttl > 0 && ttl < s.ttl {
		e.expiresAt = s.now().Add(ttl)
	}
	s.client.Set(key, e)

	s.logger.Debug("cache entry stored",
		zap.String("key", key),
		zap.Int("bytes", len(value)))
	return nil
}

// Delete removes a single entry.
func (s *SturdycService) Delete(ctx context.Context, key string) error {
	s.client.Delete(key)
	return nil
}

// Len reports the number of stored entries, expired ones included until evicted.
func (s *SturdycService) Len() int {
	return s.client.Size()
}
