// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup results recorded by [RegistryLookupsTotal].
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mcp_manager_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mcp_manager_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	RegistryLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mcp_manager_registry_lookups_total",
		Help: "Total package version lookups by source and result",
	}, []string{"source", "result"})

	UpdateScansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mcp_manager_update_scans_total",
		Help: "Total update scans run",
	})

	ServersWithUpdates = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mcp_manager_servers_with_updates",
		Help: "Number of servers with an available update in the last scan",
	})
)

// LookupResult classifies a lookup outcome for [RegistryLookupsTotal].
func LookupResult(version string, err error) string {
	switch {
	case err != nil:
		return ResultError
	case version == "":
		return ResultNotFound
	default:
		return ResultFound
	}
}

// RecordScan records a finished update scan.
func RecordScan(serversWithUpdates int) {
	UpdateScansTotal.Inc()
	ServersWithUpdates.Set(float64(serversWithUpdates))
}
