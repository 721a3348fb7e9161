// Package metrics documents the Prometheus metrics exported by this module.
// All metrics are defined in the package that owns the behavior (client,
// batch) to maintain modularity and avoid circular dependencies.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the module. All
// metrics are automatically registered via promauto in their respective
// packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - steam_requests_total{endpoint, status} (Counter): Total requests by endpoint and HTTP status
//   - steam_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - steam_errors_total{kind} (Counter): Errors by kind (invalid_argument, not_found, malformed_response, transport)
//
// Batch Metrics (pkg/batch):
//   - steam_batch_tasks_total{outcome} (Counter): Batch tasks by outcome (ok, error, cancelled)
//   - steam_batch_series_duration_seconds (Histogram): Duration of full sequential batch runs
//
// Example Prometheus Queries:
//
//   # Request Error Rate
//   rate(steam_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(steam_request_duration_seconds_bucket[5m]))
//
//   # Batch Failure Share
//   rate(steam_batch_tasks_total{outcome="error"}[5m]) / rate(steam_batch_tasks_total[5m])
