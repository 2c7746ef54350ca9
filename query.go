package goTokenCache

import (
	"context"
	"strings"
	"time"
)

// GetAllAccessTokens returns every cached access-token record whose structured
// key text contains both clientID and homeAccountID.
//
// Matching is substring-based, not field-exact: a client id that is a prefix
// of another client id will over-match. Callers needing exact ownership must
// compare the returned key fields themselves. Entries whose key or value fail
// to parse, or whose value is empty, are skipped; the result is always a
// best-effort partial set, never an error.
//
// This walks the whole storage area and is not a request hot path.
//
// GetAllAccessTokens may return an error when input validation, dependency calls, or security checks fail.
// GetAllAccessTokens does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cache) GetAllAccessTokens(ctx context.Context, clientID, homeAccountID string) ([]AccessTokenCacheItem, error) {
	start := time.Now()
	defer func() {
		c.metrics.Observe(MetricQueryLatency, time.Since(start))
	}()

	keys, err := c.backend.Keys(ctx)
	if err != nil {
		return nil, c.storageErr(err)
	}

	c.metrics.Inc(MetricAccessTokenQuery)

	var items []AccessTokenCacheItem
	for _, key := range keys {
		if !strings.Contains(key, clientID) || !strings.Contains(key, homeAccountID) {
			continue
		}

		value, err := c.Get(ctx, key, false)
		if err != nil {
			return nil, err
		}
		if value == "" {
			continue
		}

		parsedKey, ok := parseAccessTokenKey(key)
		if !ok {
			continue
		}
		parsedValue, ok := parseAccessTokenValue(value)
		if !ok {
			continue
		}

		c.metrics.Inc(MetricAccessTokenMatch)
		items = append(items, AccessTokenCacheItem{
			Key:   parsedKey,
			Value: parsedValue,
		})
	}

	return items, nil
}
