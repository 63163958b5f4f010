// Package metrics exposes Prometheus instrumentation for catalog searches,
// inventory loads and order submissions.
//
// Collectors are registered on an explicit registry so tests can create isolated
// instances. The fiber handler is mounted at GET /metrics by the start command.
package metrics
