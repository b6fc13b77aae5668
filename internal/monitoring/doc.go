// Package monitoring provides Prometheus metrics and the gin middleware
// that records them. Each Metrics instance owns its registry so tests can
// construct collectors without collisions.
package monitoring
