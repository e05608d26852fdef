package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/idot-digital/dbconsole/internal/metrics"
)

// Metrics wraps an HTTP handler with Prometheus metrics. Requests are
// labelled with the path template of the matched route.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create a custom response writer to capture the status code
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		route := "unmatched"
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		if rw.statusCode == 0 {
			rw.statusCode = http.StatusOK
		}

		metrics.HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		metrics.HTTPRequests.WithLabelValues(route, fmt.Sprintf("%d", rw.statusCode)).Inc()
	})
}
