// Package goTokenCache is a client-side authentication token cache over a
// pluggable exact-key string store, with a cookie side-channel, a stable
// collision-free key namespace shared by multiple client applications, and
// backward-compatible dual-schema writes for a key-migration upgrade window.
//
// The package is designed for shared mutable storage: the backing area may be
// visible to other processes and cache instances, so all cleanup is
// best-effort and coordinated only through an advisory renewal-status marker,
// never a lock.
//
// # Architecture boundaries
//
// goTokenCache is the public surface. It exposes [Cache], [Builder], [Config],
// the access-token record types, and pure key builders. Physical persistence
// lives in the storage subpackage behind [storage.Backend] and is injected
// explicitly; the cache never reaches for ambient state.
//
// # What this package must NOT do
//
//   - Acquire tokens, talk to identity providers, or validate signatures.
//   - Encrypt cached values; the backend area is trusted.
//   - Apply additional namespacing to structured (self-describing) keys.
//
// # Failure contract
//
// Absent entries are empty strings, never errors. Parse failures during key
// classification and token queries are expected signals and are swallowed.
// The only error class surfaced to callers is storage unavailability.
package goTokenCache
