package metrics

import (
	"sync"
	"time"
)

// Collector keeps in-process request and error counters served on /metrics.
type Collector struct {
	mu          sync.Mutex
	requests    map[string]int64
	errors      map[string]int64
	statuses    map[int]int64
	totalTime   time.Duration
	totalCount  int64
	startedAt   time.Time
}

func NewCollector() *Collector {
	return &Collector{
		requests:  make(map[string]int64),
		errors:    make(map[string]int64),
		statuses:  make(map[int]int64),
		startedAt: time.Now().UTC(),
	}
}

func (c *Collector) ObserveRequest(route string, status int, elapsed time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests[route]++
	c.statuses[status]++
	c.totalTime += elapsed
	c.totalCount++
}

func (c *Collector) ObserveError(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors[code]++
}

type Snapshot struct {
	UptimeSeconds  float64          `json:"uptime_seconds"`
	Requests       map[string]int64 `json:"requests"`
	Errors         map[string]int64 `json:"errors"`
	Statuses       map[int]int64    `json:"statuses"`
	AvgLatencyMS   float64          `json:"avg_latency_ms"`
	TotalRequests  int64            `json:"total_requests"`
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	requests := make(map[string]int64, len(c.requests))
	for route, count := range c.requests {
		requests[route] = count
	}
	errs := make(map[string]int64, len(c.errors))
	for code, count := range c.errors {
		errs[code] = count
	}
	statuses := make(map[int]int64, len(c.statuses))
	for status, count := range c.statuses {
		statuses[status] = count
	}
	avg := 0.0
	if c.totalCount > 0 {
		avg = float64(c.totalTime.Milliseconds()) / float64(c.totalCount)
	}
	return Snapshot{
		UptimeSeconds: time.Since(c.startedAt).Seconds(),
		Requests:      requests,
		Errors:        errs,
		Statuses:      statuses,
		AvgLatencyMS:  avg,
		TotalRequests: c.totalCount,
	}
}
