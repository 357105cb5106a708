package cacheinfra

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

// newRedisService connects to REDIS_ADDR or skips the test.
func newRedisService(t *testing.T) *RedisService {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	cfg := DefaultRedisConfig()
	cfg.Addr = addr
	cfg.KeyPrefix = "linkup-test-" + uuid.NewString()

	svc, err := NewRedisService(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func TestRedisService_GetSetDelete(t *testing.T) {
	svc := newRedisService(t)
	ctx := context.Background()

	if _, err := svc.Get(ctx, "posts-page::1::10"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss, got %v", err)
	}

	if err := svc.Set(ctx, "posts-page::1::10", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := svc.Get(ctx, "posts-page::1::10")
	if err != nil {
		t.Fatalf("expected hit, got %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("expected payload, got %s", got)
	}

	if err := svc.Delete(ctx, "posts-page::1::10"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := svc.Get(ctx, "posts-page::1::10"); !errors.Is(err, ErrMiss) {
		t.Errorf("expected ErrMiss after delete, got %v", err)
	}
}

func TestRedisService_Expiry(t *testing.T) {
	svc := newRedisService(t)
	ctx := context.Background()

	if err := svc.Set(ctx, "short", []byte("v"), 100*time.Millisecond); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	time.Sleep(250 * time.Millisecond)

	if _, err := svc.Get(ctx, "short"); !errors.Is(err, ErrMiss) {
		t.Errorf("expected entry to expire, got %v", err)
	}
}

func TestNewRedisService_Unreachable(t *testing.T) {
	cfg := DefaultRedisConfig()
	cfg.Addr = "127.0.0.1:1"
	cfg.DialTimeout = 100 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := NewRedisService(ctx, cfg, nil); err == nil {
		t.Error("expected error connecting to a closed port")
	}
}
