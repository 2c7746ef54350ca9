package storage

import (
	"context"
	"sort"
	"testing"
	"time"
)

func TestMemoryBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	if err := backend.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := backend.Set(ctx, "b", "2"); err != nil {
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

	keys, err := backend.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("unexpected keys: %v", keys)
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

func TestMemoryBackendCookieExpiry(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

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

func TestMemoryBackendRemoveCookie(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

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

func TestMemoryBackendCookiesInvisibleToKeys(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	if err := backend.SetCookie(ctx, "state", "xyz", 1); err != nil {
		t.Fatalf("SetCookie failed: %v", err)
	}

	keys, err := backend.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected no entry keys, got %v", keys)
	}
}
