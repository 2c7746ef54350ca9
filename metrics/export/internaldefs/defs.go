package internaldefs

import (
	goTokenCache "github.com/MrEthical07/goTokenCache"
)

// CounterDef defines a public type used by goTokenCache APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goTokenCache.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goTokenCache APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goTokenCache.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the token cache.
var CounterDefs = []CounterDef{
	{ID: goTokenCache.MetricCacheHit, Name: "gotokencache_cache_hit_total", Help: "Reads served from the primary store."},
	{ID: goTokenCache.MetricCacheMiss, Name: "gotokencache_cache_miss_total", Help: "Reads that found no entry."},
	{ID: goTokenCache.MetricCacheWrite, Name: "gotokencache_cache_write_total", Help: "Current-schema cache writes."},
	{ID: goTokenCache.MetricDualWrite, Name: "gotokencache_dual_write_total", Help: "Legacy-schema mirror writes under rollback mode."},
	{ID: goTokenCache.MetricCacheRemove, Name: "gotokencache_cache_remove_total", Help: "Cache entry removals."},
	{ID: goTokenCache.MetricCookieWrite, Name: "gotokencache_cookie_write_total", Help: "Cookie side-channel writes."},
	{ID: goTokenCache.MetricCookieFallbackHit, Name: "gotokencache_cookie_fallback_hit_total", Help: "Reads served by cookie fallback."},
	{ID: goTokenCache.MetricMigratedEntry, Name: "gotokencache_migrated_entry_total", Help: "Legacy entries rewritten during startup migration."},
	{ID: goTokenCache.MetricCleanupSweep, Name: "gotokencache_cleanup_sweep_total", Help: "Temporary-entry cleanup sweeps."},
	{ID: goTokenCache.MetricCleanupRemoved, Name: "gotokencache_cleanup_removed_total", Help: "Temporary entries removed by cleanup."},
	{ID: goTokenCache.MetricCleanupSkippedActive, Name: "gotokencache_cleanup_skipped_active_total", Help: "Entries skipped because their renewal was in progress."},
	{ID: goTokenCache.MetricResetAll, Name: "gotokencache_reset_all_total", Help: "Full-tenant reset operations."},
	{ID: goTokenCache.MetricAccessTokenQuery, Name: "gotokencache_access_token_query_total", Help: "Owner-scoped access-token queries."},
	{ID: goTokenCache.MetricAccessTokenMatch, Name: "gotokencache_access_token_match_total", Help: "Records returned by owner-scoped queries."},
	{ID: goTokenCache.MetricStorageError, Name: "gotokencache_storage_error_total", Help: "Storage backend failures."},
}

// HistogramDefs is an exported constant or variable used by the token cache.
var HistogramDefs = []HistogramDef{
	{ID: goTokenCache.MetricQueryLatency, Name: "gotokencache_query_latency_seconds", Help: "Owner-scoped query latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the token cache.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the token cache.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
