// Package monitoring provides Prometheus metrics for the generation
// service: HTTP request counters and latencies, per-target generation
// counts and durations, archive operation counts, and live websocket
// connection gauges.
package monitoring
