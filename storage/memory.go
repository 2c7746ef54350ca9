package storage

import (
	"context"
	"sync"
	"time"
)

type memoryCookie struct {
	value     string
	expiresAt time.Time
}

// MemoryBackend defines a public type used by goTokenCache APIs.
//
// MemoryBackend instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// MemoryBackend is a session-scoped area: contents live exactly as long as the
// process. It is safe for concurrent use.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]string
	cookies map[string]memoryCookie
	now     func() time.Time
}

// NewMemoryBackend describes the newmemorybackend operation and its observable behavior.
//
// NewMemoryBackend may return an error when input validation, dependency calls, or security checks fail.
// NewMemoryBackend does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		entries: make(map[string]string),
		cookies: make(map[string]memoryCookie),
		now:     time.Now,
	}
}

// Get describes the get operation and its observable behavior.
//
// Get may return an error when input validation, dependency calls, or security checks fail.
// Get does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *MemoryBackend) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[key], nil
}

// Set describes the set operation and its observable behavior.
//
// Set may return an error when input validation, dependency calls, or security checks fail.
// Set does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *MemoryBackend) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

// Remove describes the remove operation and its observable behavior.
//
// Remove may return an error when input validation, dependency calls, or security checks fail.
// Remove does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *MemoryBackend) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// Keys describes the keys operation and its observable behavior.
//
// Keys may return an error when input validation, dependency calls, or security checks fail.
// Keys does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *MemoryBackend) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys, nil
}

// GetCookie describes the getcookie operation and its observable behavior.
//
// GetCookie may return an error when input validation, dependency calls, or security checks fail.
// GetCookie does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *MemoryBackend) GetCookie(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.cookies[key]
	if !ok {
		return "", nil
	}
	if m.now().After(c.expiresAt) {
		return "", nil
	}
	return c.value, nil
}

// SetCookie describes the setcookie operation and its observable behavior.
//
// SetCookie may return an error when input validation, dependency calls, or security checks fail.
// SetCookie does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *MemoryBackend) SetCookie(_ context.Context, key, value string, expireDays int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if expireDays <= 0 && value == "" {
		delete(m.cookies, key)
		return nil
	}

	m.cookies[key] = memoryCookie{
		value:     value,
		expiresAt: m.now().Add(time.Duration(expireDays) * 24 * time.Hour),
	}
	return nil
}

// RemoveCookie describes the removecookie operation and its observable behavior.
//
// RemoveCookie may return an error when input validation, dependency calls, or security checks fail.
// RemoveCookie does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *MemoryBackend) RemoveCookie(ctx context.Context, key string) error {
	return m.SetCookie(ctx, key, "", -1)
}
