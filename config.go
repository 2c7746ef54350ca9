package goTokenCache

import (
	"errors"
	"strings"
)

// Config defines a public type used by goTokenCache APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Cache     CacheConfig
	Cookie    CookieConfig
	Migration MigrationConfig
	Audit     AuditConfig
	Metrics   MetricsConfig
}

/*
====================================
CACHE CONFIG
====================================
*/

// CacheConfig defines a public type used by goTokenCache APIs.
//
// CacheConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CacheConfig struct {
	// Prefix is the key-namespace prefix shared by every client application
	// on the same storage area.
	Prefix string
	// RollbackEnabled mirrors every write and delete under the legacy
	// (un-client-scoped) key schema so consumers on the older schema keep
	// working during an upgrade window. Fixed true in this design; reads
	// always use the current schema regardless.
	RollbackEnabled bool
}

/*
====================================
COOKIE CONFIG
====================================
*/

// CookieConfig defines a public type used by goTokenCache APIs.
//
// CookieConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CookieConfig struct {
	// Enabled turns on the cookie side-channel for per-call cookie mirroring
	// and cookie fallback reads.
	Enabled bool
	// ExpiryDays is the default lifetime applied by SetCookie.
	ExpiryDays int
}

// MigrationConfig defines a public type used by goTokenCache APIs.
//
// MigrationConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MigrationConfig struct {
	// Enabled runs the one-time legacy-entry rewrite on Build.
	Enabled bool
}

// AuditConfig defines a public type used by goTokenCache APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by goTokenCache APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

func defaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			Prefix:          CachePrefix,
			RollbackEnabled: true,
		},
		Cookie: CookieConfig{
			Enabled:    true,
			ExpiryDays: 1,
		},
		Migration: MigrationConfig{
			Enabled: true,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	clone := cfg
	return clone
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// Cache
	if c.Cache.Prefix == "" {
		return errors.New("Cache Prefix must not be empty")
	}
	if strings.Contains(c.Cache.Prefix, ResourceDelimiter) {
		return errors.New("Cache Prefix must not contain the resource delimiter")
	}
	if strings.Contains(c.Cache.Prefix, keySeparator) {
		return errors.New("Cache Prefix must not contain the key separator")
	}

	// Cookie
	if c.Cookie.Enabled && c.Cookie.ExpiryDays <= 0 {
		return errors.New("Cookie ExpiryDays must be > 0 when cookies are enabled")
	}

	// Audit
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0 when audit is enabled")
	}

	return nil
}
