package goTokenCache

import (
	"context"
	"fmt"
	"strings"

	"github.com/MrEthical07/goTokenCache/storage"
)

// Cache is the client-side authentication token cache. It owns the
// key-namespace policy, the dual-schema compatibility writes, temporary-entry
// cleanup, and owner-scoped token queries; the injected [storage.Backend] owns
// physical persistence and nothing else.
//
// Every operation is a plain sequence of backend reads and writes with no
// internal locking. The backend area may be shared by other processes, so two
// authentication attempts can interleave between any two operations; the
// renewal-status marker is the only coordination primitive and it is advisory,
// not a lock.
//
//	Docs: docs/cache.md
type Cache struct {
	config   Config
	clientID string
	backend  storage.Backend
	audit    *auditDispatcher
	metrics  *Metrics
}

// ClientID returns the client identifier this cache instance namespaces under.
func (c *Cache) ClientID() string {
	return c.clientID
}

// deriveKey maps a logical key to the physical key used against the backend.
//
// Structured keys (serialized access-token record keys) are globally unique by
// construction and pass through untouched. A key already carrying the
// client-scoped prefix also passes through, so re-namespacing is idempotent.
// Everything else gets "prefix.clientId." when clientScoped, or the legacy
// "prefix." otherwise.
func (c *Cache) deriveKey(key string, clientScoped bool) string {
	if classifyKey(key) == keyClassStructured {
		return key
	}

	scoped := c.config.Cache.Prefix + keySeparator + c.clientID
	if strings.HasPrefix(key, scoped) {
		return key
	}

	if clientScoped {
		return scoped + keySeparator + key
	}
	return c.config.Cache.Prefix + keySeparator + key
}

// Set writes value under the current-schema physical key for key. When
// Rollback Mode is enabled the same value is also written under the
// legacy-schema key so older consumers keep seeing it. With cookieAlso and the
// cookie channel enabled, the write is mirrored as a cookie.
//
// Set may return an error when input validation, dependency calls, or security checks fail.
// Set does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cache) Set(ctx context.Context, key, value string, cookieAlso bool) error {
	if err := c.backend.Set(ctx, c.deriveKey(key, true), value); err != nil {
		return c.storageErr(err)
	}
	c.metrics.Inc(MetricCacheWrite)

	if c.config.Cache.RollbackEnabled {
		if err := c.backend.Set(ctx, c.deriveKey(key, false), value); err != nil {
			return c.storageErr(err)
		}
		c.metrics.Inc(MetricDualWrite)
	}

	if cookieAlso && c.config.Cookie.Enabled {
		if err := c.SetCookie(ctx, key, value, 0); err != nil {
			return err
		}
	}

	c.audit.emit(ctx, AuditEvent{
		EventType: auditEventSet,
		ClientID:  c.clientID,
		Key:       key,
		Success:   true,
	})
	return nil
}

// Get reads the current-schema physical key for key. Legacy duplicates exist
// only for older readers and are never consumed here. With cookieFallback and
// the cookie channel enabled, an empty result falls through to the cookie.
//
// Get may return an error when input validation, dependency calls, or security checks fail.
// Get does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cache) Get(ctx context.Context, key string, cookieFallback bool) (string, error) {
	value, err := c.backend.Get(ctx, c.deriveKey(key, true))
	if err != nil {
		return "", c.storageErr(err)
	}
	if value != "" {
		c.metrics.Inc(MetricCacheHit)
		return value, nil
	}

	c.metrics.Inc(MetricCacheMiss)

	if cookieFallback && c.config.Cookie.Enabled {
		cookie, err := c.GetCookie(ctx, key)
		if err != nil {
			return "", err
		}
		if cookie != "" {
			c.metrics.Inc(MetricCookieFallbackHit)
		}
		return cookie, nil
	}

	return "", nil
}

// Remove deletes the entry for key under the current schema, and under the
// legacy schema as well when Rollback Mode is enabled.
//
// Remove may return an error when input validation, dependency calls, or security checks fail.
// Remove does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cache) Remove(ctx context.Context, key string) error {
	if err := c.backend.Remove(ctx, c.deriveKey(key, true)); err != nil {
		return c.storageErr(err)
	}

	if c.config.Cache.RollbackEnabled {
		if err := c.backend.Remove(ctx, c.deriveKey(key, false)); err != nil {
			return c.storageErr(err)
		}
	}

	c.metrics.Inc(MetricCacheRemove)
	c.audit.emit(ctx, AuditEvent{
		EventType: auditEventRemove,
		ClientID:  c.clientID,
		Key:       key,
		Success:   true,
	})
	return nil
}

// SetCookie writes value on the cookie side-channel under the same physical
// key policy as Set, including the legacy mirror under Rollback Mode.
// expireDays <= 0 uses the configured default.
//
// SetCookie may return an error when input validation, dependency calls, or security checks fail.
// SetCookie does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cache) SetCookie(ctx context.Context, key, value string, expireDays int) error {
	if expireDays <= 0 {
		expireDays = c.config.Cookie.ExpiryDays
	}

	if err := c.backend.SetCookie(ctx, c.deriveKey(key, true), value, expireDays); err != nil {
		return c.storageErr(err)
	}
	if c.config.Cache.RollbackEnabled {
		if err := c.backend.SetCookie(ctx, c.deriveKey(key, false), value, expireDays); err != nil {
			return c.storageErr(err)
		}
	}

	c.metrics.Inc(MetricCookieWrite)
	return nil
}

// GetCookie reads the cookie under the current-schema physical key only.
//
// GetCookie may return an error when input validation, dependency calls, or security checks fail.
// GetCookie does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cache) GetCookie(ctx context.Context, key string) (string, error) {
	value, err := c.backend.GetCookie(ctx, c.deriveKey(key, true))
	if err != nil {
		return "", c.storageErr(err)
	}
	return value, nil
}

// RemoveCookie clears the cookie under both schema variants when Rollback Mode
// is enabled. Clearing is an empty write with an immediate expiry.
//
// RemoveCookie may return an error when input validation, dependency calls, or security checks fail.
// RemoveCookie does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cache) RemoveCookie(ctx context.Context, key string) error {
	if err := c.backend.RemoveCookie(ctx, c.deriveKey(key, true)); err != nil {
		return c.storageErr(err)
	}
	if c.config.Cache.RollbackEnabled {
		if err := c.backend.RemoveCookie(ctx, c.deriveKey(key, false)); err != nil {
			return c.storageErr(err)
		}
	}
	return nil
}

// MarkRenewalInProgress sets the renewal-status marker for state to the
// in-progress sentinel. Request-issuing logic calls this before any cleanup
// may run for the attempt.
//
// MarkRenewalInProgress may return an error when input validation, dependency calls, or security checks fail.
// MarkRenewalInProgress does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cache) MarkRenewalInProgress(ctx context.Context, state string) error {
	return c.Set(ctx, buildRenewStatusKey(state), RenewStatusInProgress, false)
}

// CompleteRenewal clears the renewal-status marker for state, making the
// attempt's temporary entries eligible for cleanup.
//
// CompleteRenewal may return an error when input validation, dependency calls, or security checks fail.
// CompleteRenewal does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cache) CompleteRenewal(ctx context.Context, state string) error {
	return c.Remove(ctx, buildRenewStatusKey(state))
}

// TokenRenewalInProgress reports whether the renewal-status marker for state
// currently holds the in-progress sentinel. An absent marker or any other
// value means the attempt is inactive.
//
// TokenRenewalInProgress may return an error when input validation, dependency calls, or security checks fail.
// TokenRenewalInProgress does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cache) TokenRenewalInProgress(ctx context.Context, state string) (bool, error) {
	value, err := c.Get(ctx, buildRenewStatusKey(state), false)
	if err != nil {
		return false, err
	}
	return value == RenewStatusInProgress, nil
}

// MetricsSnapshot returns a point-in-time copy of all cache counters and
// histograms for exporters.
func (c *Cache) MetricsSnapshot() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// AuditDropped returns the number of audit events dropped under backpressure.
func (c *Cache) AuditDropped() uint64 {
	return c.audit.Dropped()
}

// Close flushes and stops the audit dispatcher. The cache itself holds no
// other resources.
func (c *Cache) Close() {
	c.audit.Close()
}

func (c *Cache) storageErr(err error) error {
	c.metrics.Inc(MetricStorageError)
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
