// Package metrics exposes Prometheus instrumentation for the scan
// engine. Metrics are registered against an isolated registry so tests
// and embedded use never collide with a host program's default
// registry.
package metrics
