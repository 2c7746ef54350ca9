package goTokenCache

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func encodeTestIDToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	if err != nil {
		t.Fatalf("marshal header failed: %v", err)
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims failed: %v", err)
	}

	return base64.RawURLEncoding.EncodeToString(header) + "." +
		base64.RawURLEncoding.EncodeToString(payload) + "."
}

func TestCachedIDToken(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t, nil)

	exp := time.Now().Add(time.Hour).Unix()
	raw := encodeTestIDToken(t, map[string]any{
		"iss":                "https://login.example.net/tenant1",
		"aud":                "c1",
		"oid":                "object-1",
		"tid":                "tenant-1",
		"nonce":              "n1",
		"preferred_username": "alice@example.net",
		"exp":                exp,
	})

	if err := cache.Set(ctx, KeyIDToken, raw, false); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	info, err := cache.CachedIDToken(ctx)
	if err != nil {
		t.Fatalf("CachedIDToken failed: %v", err)
	}
	if info.Issuer != "https://login.example.net/tenant1" {
		t.Fatalf("unexpected issuer %q", info.Issuer)
	}
	if info.Audience != "c1" {
		t.Fatalf("unexpected audience %q", info.Audience)
	}
	if info.Nonce != "n1" || info.PreferredUsername != "alice@example.net" {
		t.Fatalf("unexpected claims: %+v", info)
	}
	if info.ExpiresAt.Unix() != exp {
		t.Fatalf("unexpected expiry %v", info.ExpiresAt)
	}

	oid, tid := info.HomeAccountComponents()
	if oid != "object-1" || tid != "tenant-1" {
		t.Fatalf("unexpected home account components %q %q", oid, tid)
	}
}

func TestCachedIDTokenMissing(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t, nil)

	if _, err := cache.CachedIDToken(ctx); !errors.Is(err, ErrIDTokenMissing) {
		t.Fatalf("expected ErrIDTokenMissing, got %v", err)
	}
}

func TestCachedIDTokenMalformed(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t, nil)

	if err := cache.Set(ctx, KeyIDToken, "not-a-jwt", false); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, err := cache.CachedIDToken(ctx); !errors.Is(err, ErrIDTokenMalformed) {
		t.Fatalf("expected ErrIDTokenMalformed, got %v", err)
	}
}
