package cache

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/internal/cacheinfra"
)

// Backend names accepted by Config.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config selects and sizes the cache backend.
type Config struct {
	Backend string
	TTL     time.Duration
	Codec   string

	// Memory backend settings.
	Capacity           int
	NumShards          int
	EvictionPercentage int
	EvictionInterval   time.Duration

	// Redis backend settings.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
}

// DefaultConfig returns an in-process cache with a four minute TTL.
func DefaultConfig() Config {
	mem := cacheinfra.DefaultConfig()
	red := cacheinfra.DefaultRedisConfig()
	return Config{
		Backend:            BackendMemory,
		TTL:                DefaultTTL,
		Codec:              "json",
		Capacity:           mem.Capacity,
		NumShards:          mem.NumShards,
		EvictionPercentage: mem.EvictionPercentage,
		RedisAddr:          red.Addr,
		KeyPrefix:          red.KeyPrefix,
	}
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	if _, ok := CodecByName(c.Codec); !ok {
		return &cacheinfra.ConfigError{Field: "Codec", Message: "must be json or msgpack"}
	}
	switch c.Backend {
	case BackendMemory:
		return c.memoryConfig().Validate()
	case BackendRedis:
		return c.redisConfig().Validate()
	}
	return &cacheinfra.ConfigError{Field: "Backend", Message: "must be memory or redis"}
}

// NewCacheService builds the configured backend. The Redis backend is pinged
// with ctx before being returned.
func NewCacheService(ctx context.Context, cfg Config, logger *zap.Logger) (CacheService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case BackendRedis:
		svc, err := cacheinfra.NewRedisService(ctx, cfg.redisConfig(), logger)
		if err != nil {
			return nil, err
		}
		return svc, nil
	case BackendMemory:
		svc, err := cacheinfra.NewSturdycService(cfg.memoryConfig(), logger)
		if err != nil {
			return nil, err
		}
		return svc, nil
	}
	return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
}

// NewAsideFromConfig wires a backend into a ready cache-aside helper.
func NewAsideFromConfig(ctx context.Context, cfg Config, logger *zap.Logger) (*Aside, CacheService, error) {
	svc, err := NewCacheService(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	codec, _ := CodecByName(cfg.Codec)
	return NewAside(svc, WithCodec(codec), WithTTL(cfg.TTL), WithLogger(logger)), svc, nil
}

func (c Config) memoryConfig() cacheinfra.Config {
	return cacheinfra.Config{
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
	}
}

func (c Config) redisConfig() cacheinfra.RedisConfig {
	red := cacheinfra.DefaultRedisConfig()
	red.Addr = c.RedisAddr
	red.Password = c.RedisPassword
	red.DB = c.RedisDB
	red.KeyPrefix = c.KeyPrefix
	red.TTL = c.TTL
	return red
}
