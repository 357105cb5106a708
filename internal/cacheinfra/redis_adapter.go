package cacheinfra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisConfig points the distributed backend at a Redis server.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	KeyPrefix   string
	DialTimeout time.Duration
	// TTL is used when Set is called without one.
	TTL time.Duration
}

// DefaultRedisConfig returns a local Redis with the read path TTL.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:        "localhost:6379",
		KeyPrefix:   "linkup",
		DialTimeout: 5 * time.Second,
		TTL:         4 * time.Minute,
	}
}

func (c RedisConfig) Validate() error {
	if c.Addr == "" {
		return &ConfigError{Field: "Addr", Message: "is required"}
	}
	if c.DB < 0 {
		return &ConfigError{Field: "DB", Message: "must be non-negative"}
	}
	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}
	return nil
}

// RedisService stores opaque payloads in Redis with native key expiry.
type RedisService struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisService connects to Redis and verifies the connection with PING.
func NewRedisService(ctx context.Context, cfg RedisConfig, logger *zap.Logger) (*RedisService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}

	return NewRedisServiceFromClient(client, cfg.KeyPrefix, cfg.TTL, logger), nil
}

// NewRedisServiceFromClient wraps an existing client.
func NewRedisServiceFromClient(client *redis.Client, prefix string, ttl time.Duration, logger *zap.Logger) *RedisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisService{client: client, prefix: prefix, ttl: ttl, logger: logger}
}

func (s *RedisService) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

// Get returns the payload stored under key or ErrMiss.
func (s *RedisService) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache key %s: %w", key, err)
	}
	return value, nil
}

// Set stores value with ttl, or the configured TTL when ttl is zero.
func (s *RedisService) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.ttl
	}
	if err := s.client.Set(ctx, s.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache key %s: %w", key, err)
	}
	s.logger.Debug("cache entry stored",
		zap.String("key", key),
		zap.Duration("ttl", ttl))
	return nil
}

func (s *RedisService) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete cache key %s: %w", key, err)
	}
	return nil
}

func (s *RedisService) Close() error {
	return s.client.Close()
}
