package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/mcp-manager/internal/metrics"
)

// unmatchedRoute labels requests served by the not-found handlers, so that
// arbitrary paths do not blow up label cardinality.
const unmatchedRoute = "unmatched"

func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := newResponseWriter(w)

		next.ServeHTTP(mw, r)

		route := routePattern(r)
		if route == "" || route == "/*" || route == "/api/*" {
			route = unmatchedRoute
		}

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(mw.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
