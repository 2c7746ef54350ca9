package goTokenCache

import (
	"context"

	"github.com/MrEthical07/goTokenCache/storage"
	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by goTokenCache APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config   Config
	clientID string
	backend  storage.Backend
	redis    *redis.Client

	auditSink AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithClientID describes the withclientid operation and its observable behavior.
//
// WithClientID may return an error when input validation, dependency calls, or security checks fail.
// WithClientID does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithClientID(clientID string) *Builder {
	b.clientID = clientID
	return b
}

// WithStorage describes the withstorage operation and its observable behavior.
//
// WithStorage may return an error when input validation, dependency calls, or security checks fail.
// WithStorage does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithStorage(backend storage.Backend) *Builder {
	b.backend = backend
	return b
}

// WithRedis describes the withredis operation and its observable behavior.
//
// WithRedis may return an error when input validation, dependency calls, or security checks fail.
// WithRedis does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink may return an error when input validation, dependency calls, or security checks fail.
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithCookieFallback describes the withcookiefallback operation and its observable behavior.
//
// WithCookieFallback may return an error when input validation, dependency calls, or security checks fail.
// WithCookieFallback does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithCookieFallback(enabled bool) *Builder {
	b.config.Cookie.Enabled = enabled
	return b
}

// Build wires the cache and runs the one-time legacy-entry migration against
// the storage area. Build takes a context because migration performs real
// backend I/O; everything before it is allocation-only.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build(ctx context.Context) (*Cache, error) {
	if b.built {
		return nil, ErrBuilderReused
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.clientID == "" {
		return nil, ErrClientIDRequired
	}

	backend := b.backend
	if backend == nil && b.redis != nil {
		backend = storage.NewRedisBackend(b.redis)
	}
	if backend == nil {
		return nil, ErrStorageRequired
	}

	cache := &Cache{
		config:   cfg,
		clientID: b.clientID,
		backend:  backend,
	}
	cache.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	cache.metrics = NewMetrics(cfg.Metrics)

	if cfg.Migration.Enabled {
		if err := cache.migrateLegacyEntries(ctx); err != nil {
			cache.audit.Close()
			return nil, err
		}
	}

	b.built = true

	return cache, nil
}
