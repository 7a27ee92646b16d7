package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service is the Prometheus-backed implementation of the Metrics interface.
type Service struct {
	FetchRuns          prometheus.Counter
	TBARequests        prometheus.Counter
	StatboticsRequests prometheus.Counter
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	TeamsProcessed     prometheus.Counter
	BatchDuration      prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
