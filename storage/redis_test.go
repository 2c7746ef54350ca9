package storage

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisBackend(t *testing.T) (*miniredis.Miniredis, *RedisBackend) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisBackend(client)
}

func TestRedisBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, backend := newTestRedisBackend(t)

	if err := backend.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := backend.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "1" {
		t.Fatalf("expected 1, got %q", got)
	}

	missing, err := backend.Get(ctx, "nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if missing != "" {
		t.Fatalf("expected empty string for missing key, got %q", missing)
	}

	if err := backend.Remove(ctx, "a"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	got, err = backend.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "" {
		t.Fatalf("expected removed key to read empty, got %q", got)
	}
}

func TestRedisBackendKeysExcludesCookieJar(t *testing.T) {
	ctx := context.Background()
	_, backend := newTestRedisBackend(t)

	if err := backend.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := backend.Set(ctx, "b", "2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := backend.SetCookie(ctx, "state", "xyz", 1); err != nil {
		t.Fatalf("SetCookie failed: %v", err)
	}

	keys, err := backend.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestRedisBackendCookieExpiry(t *testing.T) {
	ctx := context.Background()
	_, backend := newTestRedisBackend(t)

	base := time.Now()
	backend.now = func() time.Time { return base }

	if err := backend.SetCookie(ctx, "state", "xyz", 1); err != nil {
		t.Fatalf("SetCookie failed: %v", err)
	}

	got, err := backend.GetCookie(ctx, "state")
	if err != nil {
		t.Fatalf("GetCookie failed: %v", err)
	}
	if got != "xyz" {
		t.Fatalf("expected xyz, got %q", got)
	}

	backend.now = func() time.Time { return base.Add(25 * time.Hour) }
	got, err = backend.GetCookie(ctx, "state")
	if err != nil {
		t.Fatalf("GetCookie failed: %v", err)
	}
	if got != "" {
		t.Fatalf("expected expired cookie to read empty, got %q", got)
	}
}

func TestRedisBackendRemoveCookie(t *testing.T) {
	ctx := context.Background()
	_, backend := newTestRedisBackend(t)

	if err := backend.SetCookie(ctx, "state", "xyz", 1); err != nil {
		t.Fatalf("SetCookie failed: %v", err)
	}
	if err := backend.RemoveCookie(ctx, "state"); err != nil {
		t.Fatalf("RemoveCookie failed: %v", err)
	}

	got, err := backend.GetCookie(ctx, "state")
	if err != nil {
		t.Fatalf("GetCookie failed: %v", err)
	}
	if got != "" {
		t.Fatalf("expected removed cookie to read empty, got %q", got)
	}
}

func TestRedisBackendPing(t *testing.T) {
	ctx := context.Background()
	mr, backend := newTestRedisBackend(t)

	if _, err := backend.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	mr.Close()
	if _, err := backend.Ping(ctx); err == nil {
		t.Fatal("expected Ping to fail after server shutdown")
	}
}
