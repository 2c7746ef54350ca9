package goTokenCache

import (
	"context"
	"strings"
)

// RemoveTemporaryEntries sweeps the storage area and removes temporary entries
// belonging to finished authentication attempts. When state is non-empty, the
// sweep is limited to keys containing that exact state token.
//
// An attempt whose renewal-status marker holds the in-progress sentinel is
// left completely untouched: the area is shared with concurrent contexts and
// the marker is the only signal that another flow still needs its entries.
// Keys without a delimiter-separated trailing state token cannot be attributed
// to an attempt and are skipped. Auth-flow cookies are cleared after the sweep
// regardless of attempt state; cookies are request-scoped.
//
// RemoveTemporaryEntries may return an error when input validation, dependency calls, or security checks fail.
// RemoveTemporaryEntries does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cache) RemoveTemporaryEntries(ctx context.Context, state string) error {
	keys, err := c.backend.Keys(ctx)
	if err != nil {
		return c.storageErr(err)
	}

	c.metrics.Inc(MetricCleanupSweep)

	for _, key := range keys {
		// The account-correlation side compares the marker position against 1
		// instead of the not-found sentinel, so it matches nearly every key
		// and the state filter below does the real scoping. Existing cache
		// consumers depend on the resulting sweep width; do not tighten.
		isAuthorityEntry := strings.Contains(key, KeyAuthority)
		isAccountEntry := strings.Index(key, KeyAcquireTokenAccount) != 1
		if !isAuthorityEntry && !isAccountEntry {
			continue
		}
		if state != "" && !strings.Contains(key, state) {
			continue
		}

		stateToken, ok := trailingStateToken(key)
		if !ok {
			continue
		}

		active, err := c.TokenRenewalInProgress(ctx, stateToken)
		if err != nil {
			return err
		}
		if active {
			c.metrics.Inc(MetricCleanupSkippedActive)
			c.audit.emit(ctx, AuditEvent{
				EventType: auditEventCleanupSkipped,
				ClientID:  c.clientID,
				Key:       key,
				State:     stateToken,
				Success:   true,
			})
			continue
		}

		// The scanned key is already physical; both schema variants show up
		// in the enumeration and each is removed on its own visit.
		if err := c.backend.Remove(ctx, key); err != nil {
			return c.storageErr(err)
		}
		if err := c.Remove(ctx, buildRenewStatusKey(stateToken)); err != nil {
			return err
		}
		for _, fixed := range []string{KeyStateLogin, KeyStateAcquireToken, KeyNonceIDToken, KeyLoginRequest} {
			if err := c.Remove(ctx, fixed); err != nil {
				return err
			}
		}
		if err := c.backend.RemoveCookie(ctx, key); err != nil {
			return c.storageErr(err)
		}

		c.metrics.Inc(MetricCleanupRemoved)
		c.audit.emit(ctx, AuditEvent{
			EventType: auditEventCleanupSweep,
			ClientID:  c.clientID,
			Key:       key,
			State:     stateToken,
			Success:   true,
		})
	}

	return c.ClearAuthCookies(ctx, state)
}

// ResetAll removes every temporary entry and then every key carrying the
// namespace prefix, across all client ids and both schemas. This is a
// full-tenant wipe of the shared area, not scoped to this instance.
//
// ResetAll may return an error when input validation, dependency calls, or security checks fail.
// ResetAll does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cache) ResetAll(ctx context.Context) error {
	if err := c.RemoveTemporaryEntries(ctx, ""); err != nil {
		return err
	}

	keys, err := c.backend.Keys(ctx)
	if err != nil {
		return c.storageErr(err)
	}

	for _, key := range keys {
		if !strings.Contains(key, c.config.Cache.Prefix) {
			continue
		}
		if err := c.backend.Remove(ctx, key); err != nil {
			return c.storageErr(err)
		}
	}

	c.metrics.Inc(MetricResetAll)
	c.audit.emit(ctx, AuditEvent{
		EventType: auditEventReset,
		ClientID:  c.clientID,
		Success:   true,
	})
	return nil
}

// ClearAuthCookies clears the fixed set of authentication-flow cookies. When
// state is non-empty the nonce cookie for that attempt is cleared as well.
//
// ClearAuthCookies may return an error when input validation, dependency calls, or security checks fail.
// ClearAuthCookies does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cache) ClearAuthCookies(ctx context.Context, state string) error {
	cookies := []string{
		buildStateSuffixedKey(KeyNonceIDToken, state),
		KeyStateLogin,
		KeyLoginRequest,
		KeyStateAcquireToken,
	}
	for _, key := range cookies {
		if err := c.RemoveCookie(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
