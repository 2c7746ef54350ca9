// Package storage defines the persistence contract consumed by the token cache
// and ships two implementations: an in-memory backend for session-scoped or
// test usage, and a Redis backend for a durable area shared across processes.
//
// Backends are deliberately dumb: exact-key get/set/remove plus full-area key
// enumeration, and a parallel cookie side-channel with day-granularity expiry.
// All namespacing policy lives in the parent package.
//
// # What this package must NOT do
//
//   - Apply any key prefixing or schema logic of its own.
//   - Import goTokenCache (no import cycles).
//   - Surface entry absence as an error; absent values are empty strings.
package storage
