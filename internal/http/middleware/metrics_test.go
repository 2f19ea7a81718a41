package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobhub/internal/http/metrics"
)

func TestMetricsNormalizesRouteLabels(t *testing.T) {
	collector := metrics.NewCollector()
	handler := Metrics(collector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	paths := []string{
		"/jobs/0a49d4a4-1f6a-4328-a6a2-bfebc0dcca75/status",
		"/jobs/f0248566-9da2-4a2b-be28-6e9a0c54a67a/status",
		"/jobs/3d9de3e9-8f5b-4f05-9a52-1be0e0e4a86b/status",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodPatch, path, nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	snapshot := collector.Snapshot()
	if len(snapshot.Requests) != 1 {
		t.Fatalf("request labels = %v, want a single normalized route", snapshot.Requests)
	}
	if snapshot.Requests["PATCH /jobs/{id}/status"] != 3 {
		t.Fatalf("normalized route count = %v, want 3", snapshot.Requests)
	}
}

func TestRouteLabelKeepsStaticSegments(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	if got := routeLabel(req); got != "GET /jobs" {
		t.Fatalf("label = %q, want GET /jobs", got)
	}
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	if got := routeLabel(req); got != "GET /" {
		t.Fatalf("label = %q, want GET /", got)
	}
}
