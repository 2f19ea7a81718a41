package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobhub/internal/http/metrics"
)

func Metrics(collector *metrics.Collector) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if collector == nil {
				next.ServeHTTP(w, r)
				return
			}
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)
			collector.ObserveRequest(routeLabel(r), recorder.status, time.Since(start))
		})
	}
}

// routeLabel collapses id segments to the route shape so the counter map
// stays bounded by the number of routes, not the number of entities.
func routeLabel(r *http.Request) string {
	trimmed := strings.Trim(r.URL.Path, "/")
	if trimmed == "" {
		return r.Method + " /"
	}
	segments := strings.Split(trimmed, "/")
	for i, segment := range segments {
		if _, err := uuid.Parse(segment); err == nil {
			segments[i] = "{id}"
		}
	}
	return r.Method + " /" + strings.Join(segments, "/")
}
