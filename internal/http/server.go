package http

import (
	"net/http"

	"github.com/magber/frc-fetcher/internal/config"
	"github.com/magber/frc-fetcher/internal/exporter"
	"github.com/magber/frc-fetcher/internal/fetcher"
	"github.com/magber/frc-fetcher/internal/metrics"
	"github.com/magber/frc-fetcher/internal/tasks"
)

func NewServer(pipeline fetcher.Pipeline, exp *exporter.Exporter, taskStore *tasks.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Pipeline:       pipeline,
		Exporter:       exp,
		Tasks:          taskStore,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /{$}", Chain(s.IndexHandler(), paramsMiddleware))
	s.Router.Handle("POST /api/fetch", Chain(s.StartFetchHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/progress/{id}", Chain(s.ProgressHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/files", Chain(s.ListFilesHandler(), paramsMiddleware))
	s.Router.Handle("GET /download/{filename}", Chain(s.DownloadHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /delete/{filename}", Chain(s.DeleteHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
