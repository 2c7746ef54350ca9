package goTokenCache

import (
	"net/http"
	"strconv"
	"time"
)

// BearerTransport is an http.RoundTripper that attaches a cached access token
// to outgoing requests as a bearer Authorization header.
//
// Token selection reuses the owner-scoped query: the first record matching
// ClientID and HomeAccountID whose expiry is still in the future wins.
// Requests that already carry an Authorization header pass through unchanged.
type BearerTransport struct {
	Base          http.RoundTripper
	Cache         *Cache
	ClientID      string
	HomeAccountID string

	now func() time.Time
}

// RoundTrip describes the roundtrip operation and its observable behavior.
//
// RoundTrip may return an error when input validation, dependency calls, or security checks fail.
// RoundTrip does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if req.Header.Get("Authorization") != "" || t.Cache == nil {
		return base.RoundTrip(req)
	}

	items, err := t.Cache.GetAllAccessTokens(req.Context(), t.ClientID, t.HomeAccountID)
	if err != nil {
		return nil, err
	}

	token := t.pickToken(items)
	if token == "" {
		return nil, ErrNoAccessToken
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	return base.RoundTrip(clone)
}

func (t *BearerTransport) pickToken(items []AccessTokenCacheItem) string {
	nowFn := t.now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn().Unix()

	for _, item := range items {
		if item.Value.AccessToken == "" {
			continue
		}
		// ExpiresIn holds a unix expiry timestamp in string form; records
		// with an unparseable expiry are treated as expired.
		expiresAt, err := strconv.ParseInt(item.Value.ExpiresIn, 10, 64)
		if err != nil || expiresAt <= now {
			continue
		}
		return item.Value.AccessToken
	}
	return ""
}
