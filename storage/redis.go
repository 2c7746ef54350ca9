package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Reserved hash holding the cookie side-channel. The main area is the flat
// redis keyspace; this single key is excluded from Keys enumeration.
const cookieJarKey = "gotokencache.cookiejar"

// Cookie hash field values are "<unix-expiry>\x1f<value>" so a day-granularity
// expiry survives without per-field TTL support.
const cookieFieldSeparator = "\x1f"

// RedisBackend defines a public type used by goTokenCache APIs.
//
// RedisBackend instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// RedisBackend is the durable shared area: every process pointed at the same
// database sees the same entries, so concurrent cache instances interleave at
// arbitrary operation granularity.
type RedisBackend struct {
	redis *redis.Client
	now   func() time.Time
}

// NewRedisBackend describes the newredisbackend operation and its observable behavior.
//
// NewRedisBackend may return an error when input validation, dependency calls, or security checks fail.
// NewRedisBackend does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{
		redis: client,
		now:   time.Now,
	}
}

// Get describes the get operation and its observable behavior.
//
// Get may return an error when input validation, dependency calls, or security checks fail.
// Get does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (r *RedisBackend) Get(ctx context.Context, key string) (string, error) {
	value, err := r.redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return value, nil
}

// Set describes the set operation and its observable behavior.
//
// Set may return an error when input validation, dependency calls, or security checks fail.
// Set does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (r *RedisBackend) Set(ctx context.Context, key, value string) error {
	if err := r.redis.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return nil
}

// Remove describes the remove operation and its observable behavior.
//
// Remove may return an error when input validation, dependency calls, or security checks fail.
// Remove does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (r *RedisBackend) Remove(ctx context.Context, key string) error {
	if err := r.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return nil
}

// Keys scans the whole area and returns every key except the cookie jar.
// This is an O(n) sweep and must not be used in request hot paths.
func (r *RedisBackend) Keys(ctx context.Context) ([]string, error) {
	var (
		cursor uint64
		out    []string
	)

	for {
		keys, next, err := r.redis.Scan(ctx, cursor, "*", 1000).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		for _, k := range keys {
			if k == cookieJarKey {
				continue
			}
			out = append(out, k)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	return out, nil
}

// GetCookie describes the getcookie operation and its observable behavior.
//
// GetCookie may return an error when input validation, dependency calls, or security checks fail.
// GetCookie does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (r *RedisBackend) GetCookie(ctx context.Context, key string) (string, error) {
	raw, err := r.redis.HGet(ctx, cookieJarKey, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	expiry, value, ok := strings.Cut(raw, cookieFieldSeparator)
	if !ok {
		return "", nil
	}
	expiresAt, err := strconv.ParseInt(expiry, 10, 64)
	if err != nil || r.now().Unix() > expiresAt {
		return "", nil
	}
	return value, nil
}

// SetCookie describes the setcookie operation and its observable behavior.
//
// SetCookie may return an error when input validation, dependency calls, or security checks fail.
// SetCookie does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (r *RedisBackend) SetCookie(ctx context.Context, key, value string, expireDays int) error {
	if expireDays <= 0 && value == "" {
		if err := r.redis.HDel(ctx, cookieJarKey, key).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		return nil
	}

	expiresAt := r.now().Add(time.Duration(expireDays) * 24 * time.Hour).Unix()
	encoded := strconv.FormatInt(expiresAt, 10) + cookieFieldSeparator + value
	if err := r.redis.HSet(ctx, cookieJarKey, key, encoded).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return nil
}

// RemoveCookie describes the removecookie operation and its observable behavior.
//
// RemoveCookie may return an error when input validation, dependency calls, or security checks fail.
// RemoveCookie does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (r *RedisBackend) RemoveCookie(ctx context.Context, key string) error {
	return r.SetCookie(ctx, key, "", -1)
}

// Ping returns a point-in-time Redis availability check and latency.
func (r *RedisBackend) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	if err := r.redis.Ping(ctx).Err(); err != nil {
		return time.Since(start), fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return time.Since(start), nil
}
