package http

import (
	"net/http"

	"github.com/magber/frc-fetcher/internal/config"
	"github.com/magber/frc-fetcher/internal/exporter"
	"github.com/magber/frc-fetcher/internal/fetcher"
	"github.com/magber/frc-fetcher/internal/metrics"
	"github.com/magber/frc-fetcher/internal/tasks"
)

type Server struct {
	Pipeline       fetcher.Pipeline
	Exporter       *exporter.Exporter
	Tasks          *tasks.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}

// fetchRequest is the body of POST /api/fetch.
type fetchRequest struct {
	EventYear       int      `json:"event_year"`
	EventCodes      []string `json:"event_codes"`
	TeamNumber      int      `json:"team_number"`
	YearsToFetch    int      `json:"years_to_fetch"`
	DeepSearch      bool     `json:"deep_search"`
	DeepSearchYears int      `json:"deep_search_years"`
}
