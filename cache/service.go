package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/internal/cacheinfra"
)

// ErrCacheMiss is returned by CacheService.Get when nothing is stored under the key.
var ErrCacheMiss = cacheinfra.ErrMiss

// DefaultTTL is the lifetime of a cached page.
const DefaultTTL = 4 * time.Minute

// FetchFn computes a value from the source of truth on a cache miss.
type FetchFn[T any] func(ctx context.Context) (T, error)

// CacheService is the distributed cache boundary: opaque payloads keyed by
// string with a per-entry TTL. Implementations know nothing about entity shapes.
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Aside bundles a CacheService with the codec and TTL used by GetOrFetch.
//
// There is no single-flight: two concurrent misses on the same key both run
// their fetch and both write, the last write wins.
type Aside struct {
	service CacheService
	codec   Codec
	ttl     time.Duration
	logger  *zap.Logger
}

// AsideOption customises an Aside.
type AsideOption func(*Aside)

func WithCodec(codec Codec) AsideOption {
	return func(a *Aside) { a.codec = codec }
}

func WithTTL(ttl time.Duration) AsideOption {
	return func(a *Aside) { a.ttl = ttl }
}

func WithLogger(logger *zap.Logger) AsideOption {
	return func(a *Aside) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAside returns a JSON, four minute cache-aside helper over service.
func NewAside(service CacheService, opts ...AsideOption) *Aside {
	a := &Aside{
		service: service,
		codec:   JSONCodec{},
		ttl:     DefaultTTL,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// TTL returns the lifetime applied to stored entries.
func (a *Aside) TTL() time.Duration { return a.ttl }

// GetOrFetch looks key up; on a hit the payload is decoded and returned, on a
// miss fetchFn runs and its value is encoded and stored before returning.
// Cache and codec failures are returned as errors, never retried.
func GetOrFetch[T any](ctx context.Context, a *Aside, key string, fetchFn FetchFn[T]) (T, error) {
	var zero T

	payload, err := a.service.Get(ctx, key)
	switch {
	case err == nil:
		var value T
		if err := a.codec.Unmarshal(payload, &value); err != nil {
			return zero, fmt.Errorf("failed to decode cached value for %s: %w", key, err)
		}
		a.logger.Debug("cache hit", zap.String("key", key))
		return value, nil
	case !errors.Is(err, ErrCacheMiss):
		return zero, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}

	a.logger.Debug("cache miss", zap.String("key", key))

	value, err := fetchFn(ctx)
	if err != nil {
		return zero, err
	}

	payload, err = a.codec.Marshal(value)
	if err != nil {
		return zero, fmt.Errorf("failed to encode value for %s: %w", key, err)
	}

	if err := a.service.Set(ctx, key, payload, a.ttl); err != nil {
		return zero, fmt.Errorf("failed to store cache key %s: %w", key, err)
	}

	return value, nil
}
