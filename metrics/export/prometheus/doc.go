// Package prometheus provides Prometheus collectors for goTokenCache metrics.
//
// [NewPrometheusExporter] accepts a [goTokenCache.Cache] and exposes an [http.Handler]
// that renders all cache counters and histograms in Prometheus text exposition format.
// Counter names are prefixed gotokencache_*_total; the single histogram is
// gotokencache_query_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate cache state.
package prometheus
