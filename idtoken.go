package goTokenCache

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IDTokenInfo defines a public type used by goTokenCache APIs.
//
// IDTokenInfo instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type IDTokenInfo struct {
	Raw               string
	Issuer            string
	Audience          string
	ObjectID          string
	TenantID          string
	Nonce             string
	PreferredUsername string
	ExpiresAt         time.Time
}

// HomeAccountComponents returns the object and tenant identifiers that make up
// the account's home identifier, in that order.
func (i IDTokenInfo) HomeAccountComponents() (string, string) {
	return i.ObjectID, i.TenantID
}

// CachedIDToken decodes the persistent id-token entry and exposes its claims.
//
// The token is parsed without signature verification: the cache stores tokens
// already validated by the issuing flow, and this instance has no key material.
// Callers must not treat the result as proof of authentication.
//
// CachedIDToken may return an error when input validation, dependency calls, or security checks fail.
// CachedIDToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cache) CachedIDToken(ctx context.Context) (*IDTokenInfo, error) {
	raw, err := c.Get(ctx, KeyIDToken, true)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, ErrIDTokenMissing
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIDTokenMalformed, err)
	}

	info := &IDTokenInfo{
		Raw:               raw,
		Issuer:            stringClaim(claims, "iss"),
		ObjectID:          stringClaim(claims, "oid"),
		TenantID:          stringClaim(claims, "tid"),
		Nonce:             stringClaim(claims, "nonce"),
		PreferredUsername: stringClaim(claims, "preferred_username"),
	}

	if aud, err := claims.GetAudience(); err == nil && len(aud) > 0 {
		info.Audience = aud[0]
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	v, _ := claims[name].(string)
	return v
}
