package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		FetchRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "frc_fetch_runs_total",
			Help: "The total number of fetch runs started.",
		}),
		TBARequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "frc_tba_requests_total",
			Help: "The total number of requests issued to The Blue Alliance API.",
		}),
		StatboticsRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "frc_statbotics_requests_total",
			Help: "The total number of requests issued to the Statbotics API.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "frc_cache_hits_total",
			Help: "The total number of response cache hits.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "frc_cache_misses_total",
			Help: "The total number of response cache misses.",
		}),
		TeamsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "frc_teams_processed_total",
			Help: "The total number of teams aggregated across all batches.",
		}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "frc_batch_duration_seconds",
			Help:    "The duration of a full team batch.",
			Buckets: []float64{1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "frc_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.FetchRuns,
		s.TBARequests,
		s.StatboticsRequests,
		s.CacheHits,
		s.CacheMisses,
		s.TeamsProcessed,
		s.BatchDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncFetchRuns() {
	s.FetchRuns.Inc()
}

func (s *Service) IncTBARequests() {
	s.TBARequests.Inc()
}

func (s *Service) IncStatboticsRequests() {
	s.StatboticsRequests.Inc()
}

func (s *Service) IncCacheHit() {
	s.CacheHits.Inc()
}

func (s *Service) IncCacheMiss() {
	s.CacheMisses.Inc()
}

func (s *Service) IncTeamsProcessed() {
	s.TeamsProcessed.Inc()
}

func (s *Service) ObserveBatchDuration(duration float64) {
	s.BatchDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
