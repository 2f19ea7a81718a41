package http

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobhub/internal/http/handlers"
	"jobhub/internal/http/metrics"
	httpmw "jobhub/internal/http/middleware"
)

type RouterDependencies struct {
	JobHandler         *handlers.JobHandler
	ApplicationHandler *handlers.ApplicationHandler
	AccountHandler     *handlers.AccountHandler
	CompanyHandler     *handlers.CompanyHandler
	CandidateHandler   *handlers.CandidateHandler
	MetricsHandler     *handlers.MetricsHandler
	Metrics            *metrics.Collector
	Limiter            httpmw.Limiter
	Logger             *zap.Logger
	RequestTimeout     time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging(r.deps.Logger), httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return

		case req.Method == http.MethodGet && path == "/jobs":
			r.deps.JobHandler.List(w, req)
			return
		case req.Method == http.MethodPost && path == "/jobs":
			r.deps.JobHandler.Create(w, req)
			return
		case req.Method == http.MethodPatch && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/status"):
			r.deps.JobHandler.UpdateStatus(w, req)
			return
		case req.Method == http.MethodPatch && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/moderate"):
			r.deps.JobHandler.Moderate(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/"):
			r.deps.JobHandler.Get(w, req)
			return
		case req.Method == http.MethodDelete && strings.HasPrefix(path, "/jobs/"):
			r.deps.JobHandler.Delete(w, req)
			return

		case req.Method == http.MethodPost && path == "/applications":
			// Apply is also limited per client address, on top of the
			// handler's per-job/user window.
			httpmw.RateLimit(r.deps.Limiter, httpmw.ClientIP, 30, time.Minute)(http.HandlerFunc(r.deps.ApplicationHandler.Create)).ServeHTTP(w, req)
			return
		case req.Method == http.MethodPatch && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/status"):
			r.deps.ApplicationHandler.UpdateStatus(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/applications/"):
			r.deps.ApplicationHandler.Get(w, req)
			return
		case req.Method == http.MethodDelete && strings.HasPrefix(path, "/applications/"):
			r.deps.ApplicationHandler.Delete(w, req)
			return

		case req.Method == http.MethodPost && path == "/accounts":
			r.deps.AccountHandler.Create(w, req)
			return
		case req.Method == http.MethodPost && strings.HasPrefix(path, "/accounts/") && strings.HasSuffix(path, "/saved-jobs"):
			r.deps.AccountHandler.SaveJob(w, req)
			return
		case req.Method == http.MethodDelete && strings.HasPrefix(path, "/accounts/") && strings.Contains(path, "/saved-jobs/"):
			r.deps.AccountHandler.UnsaveJob(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/accounts/"):
			r.deps.AccountHandler.Get(w, req)
			return

		case req.Method == http.MethodPost && path == "/companies":
			r.deps.CompanyHandler.Create(w, req)
			return
		case req.Method == http.MethodPost && strings.HasPrefix(path, "/companies/") && strings.HasSuffix(path, "/approve"):
			r.deps.CompanyHandler.Approve(w, req)
			return
		case req.Method == http.MethodPatch && strings.HasPrefix(path, "/companies/") && strings.HasSuffix(path, "/status"):
			r.deps.CompanyHandler.UpdateStatus(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/companies/"):
			r.deps.CompanyHandler.Get(w, req)
			return

		case req.Method == http.MethodGet && strings.HasPrefix(path, "/recruiters/") && strings.HasSuffix(path, "/candidates"):
			r.deps.CandidateHandler.List(w, req)
			return
		}

		http.NotFound(w, req)
	})
}
