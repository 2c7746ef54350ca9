// Package otel provides OpenTelemetry metric exporter bindings for goTokenCache
// counters and histograms.
//
// [NewOTelExporter] registers Int64ObservableCounter instruments for each cache
// metric and Int64ObservableGauge per histogram bucket. A single callback reads
// [goTokenCache.Cache.MetricsSnapshot] on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider — callers supply the Meter.
//   - Mutate cache state.
package otel
