package goTokenCache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// newSharedRedisCaches builds two cache instances over the same redis
// database, the way two browser tabs share one localStorage area.
func newSharedRedisCaches(t *testing.T) (*Cache, *Cache) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	build := func() *Cache {
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		cache, err := New().
			WithClientID("c1").
			WithRedis(client).
			Build(context.Background())
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		t.Cleanup(cache.Close)
		return cache
	}

	return build(), build()
}

func TestSharedAreaVisibleAcrossInstances(t *testing.T) {
	ctx := context.Background()
	a, b := newSharedRedisCaches(t)

	if err := a.Set(ctx, KeyIDToken, "jwt-value", false); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := b.Get(ctx, KeyIDToken, false)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "jwt-value" {
		t.Fatalf("expected write from first instance to be visible, got %q", got)
	}
}

func TestCleanupHonorsRenewalMarkerFromOtherInstance(t *testing.T) {
	ctx := context.Background()
	a, b := newSharedRedisCaches(t)

	state := NewRequestState()
	if err := a.Set(ctx, BuildAuthorityKey(state), "https://login.example.net/common", false); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := a.MarkRenewalInProgress(ctx, state); err != nil {
		t.Fatalf("MarkRenewalInProgress failed: %v", err)
	}

	// The sweeping instance did not start the renewal but must still see
	// the marker through shared storage and leave the entry alone.
	if err := b.RemoveTemporaryEntries(ctx, state); err != nil {
		t.Fatalf("RemoveTemporaryEntries failed: %v", err)
	}

	got, err := b.Get(ctx, BuildAuthorityKey(state), false)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == "" {
		t.Fatal("expected authority entry to survive an in-progress renewal")
	}

	if err := a.CompleteRenewal(ctx, state); err != nil {
		t.Fatalf("CompleteRenewal failed: %v", err)
	}
	if err := b.RemoveTemporaryEntries(ctx, state); err != nil {
		t.Fatalf("RemoveTemporaryEntries failed: %v", err)
	}

	got, err = b.Get(ctx, BuildAuthorityKey(state), false)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "" {
		t.Fatalf("expected authority entry removed after renewal completed, got %q", got)
	}
}
