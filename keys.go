package goTokenCache

import (
	"encoding/json"
	"strings"
)

// CachePrefix is an exported constant or variable used by the token cache.
const CachePrefix = "msal"

// ResourceDelimiter is an exported constant or variable used by the token cache.
const ResourceDelimiter = "|"

// keySeparator joins prefix, client id, and logical key into a physical key.
const keySeparator = "."

// Persistent logical keys. These survive the authentication attempt and are
// the fixed set rewritten by the startup migration.
const (
	// KeyIDToken is an exported constant or variable used by the token cache.
	KeyIDToken = "idtoken"
	// KeyClientInfo is an exported constant or variable used by the token cache.
	KeyClientInfo = "client.info"
	// KeyError is an exported constant or variable used by the token cache.
	KeyError = "error"
	// KeyErrorDescription is an exported constant or variable used by the token cache.
	KeyErrorDescription = "error.description"
)

// Temporary logical keys. These are scoped to a single authentication attempt
// and are eligible for cleanup once the attempt is no longer in progress.
const (
	// KeyAuthority is an exported constant or variable used by the token cache.
	KeyAuthority = "authority"
	// KeyAcquireTokenAccount is an exported constant or variable used by the token cache.
	KeyAcquireTokenAccount = "acquireTokenAccount"
	// KeyStateLogin is an exported constant or variable used by the token cache.
	KeyStateLogin = "state.login"
	// KeyStateAcquireToken is an exported constant or variable used by the token cache.
	KeyStateAcquireToken = "state.acquireToken"
	// KeyNonceIDToken is an exported constant or variable used by the token cache.
	KeyNonceIDToken = "nonce.idtoken"
	// KeyLoginRequest is an exported constant or variable used by the token cache.
	KeyLoginRequest = "login.request"
	// KeyRenewStatus is an exported constant or variable used by the token cache.
	KeyRenewStatus = "token.renew.status"
)

// RenewStatusInProgress is the sentinel marker value meaning an authentication
// attempt is still active and its temporary entries must not be purged.
const RenewStatusInProgress = "In Progress"

// migratedPersistentKeys is the fixed set rewritten through the dual-write
// path when a cache instance is constructed.
var migratedPersistentKeys = []string{
	KeyIDToken,
	KeyClientInfo,
	KeyError,
	KeyErrorDescription,
}

// keyClass defines a public type used by goTokenCache APIs.
//
// keyClass instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type keyClass int

const (
	keyClassPlain keyClass = iota
	keyClassStructured
)

// classifyKey is the total classification for logical keys: a key whose text
// decodes as a JSON object is structured (access-token record keys are
// self-describing and globally unique); everything else is plain and subject
// to namespacing. Evaluated once per key, never signalled through errors.
func classifyKey(key string) keyClass {
	trimmed := strings.TrimSpace(key)
	if !strings.HasPrefix(trimmed, "{") {
		return keyClassPlain
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &probe); err != nil {
		return keyClassPlain
	}
	return keyClassStructured
}

// BuildAuthorityKey returns the temporary authority entry key for one
// authentication attempt: "authority|{state}". The trailing state token must
// stay the last delimiter-separated field; cleanup extracts it by splitting
// on [ResourceDelimiter].
func BuildAuthorityKey(state string) string {
	return KeyAuthority + ResourceDelimiter + state
}

// BuildAcquireTokenAccountKey returns the temporary account-correlation entry
// key for one authentication attempt:
// "acquireTokenAccount|{accountID}|{state}".
func BuildAcquireTokenAccountKey(accountID, state string) string {
	return KeyAcquireTokenAccount + ResourceDelimiter + accountID + ResourceDelimiter + state
}

// buildRenewStatusKey returns the renewal-status marker key for a state token.
func buildRenewStatusKey(state string) string {
	return KeyRenewStatus + ResourceDelimiter + state
}

// buildStateSuffixedKey appends a state token to a fixed temporary key when a
// state is present.
func buildStateSuffixedKey(key, state string) string {
	if state == "" {
		return key
	}
	return key + ResourceDelimiter + state
}

// trailingStateToken extracts the correlation state token from a physical key
// by taking the last delimiter-separated field. The second return is false
// when the key carries no delimiter and therefore cannot be attributed to an
// authentication attempt.
func trailingStateToken(key string) (string, bool) {
	parts := strings.Split(key, ResourceDelimiter)
	if len(parts) < 2 {
		return "", false
	}
	return parts[len(parts)-1], true
}
