package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/magber/frc-fetcher/internal/exporter"
	"github.com/magber/frc-fetcher/internal/fetcher"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	}
}

// StartFetchHandler validates a fetch request, registers a task, and runs the
// fetch in the background. The caller polls /api/progress/{id} for updates.
func (s *Server) StartFetchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req fetchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode fetch request", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validateFetchRequest(&req); err != nil {
			log.Warn("Rejected fetch request", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		task := s.Tasks.Create()
		log.Info("Starting fetch task", "taskID", task.ID, "eventYear", req.EventYear, "eventCodes", req.EventCodes, "deepSearch", req.DeepSearch)
		go s.runFetch(task, req)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"task_id": task.ID}); err != nil {
			log.Error("Failed to write response", "error", err)
		}
	}
}

// validateFetchRequest normalizes event codes and bounds the year parameters
// against the supported season range.
func validateFetchRequest(req *fetchRequest) error {
	maxSeason := time.Now().Year() + 1
	if req.EventYear < fetcher.MinSeason || req.EventYear > maxSeason {
		return fmt.Errorf("event_year must be between %d and %d", fetcher.MinSeason, maxSeason)
	}

	codes := make([]string, 0, len(req.EventCodes))
	for _, code := range req.EventCodes {
		code = strings.ToLower(strings.TrimSpace(code))
		if code != "" {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return fmt.Errorf("at least one event code is required")
	}
	req.EventCodes = codes

	maxHistory := req.EventYear - fetcher.MinSeason + 1
	if req.YearsToFetch < 1 || req.YearsToFetch > maxHistory {
		return fmt.Errorf("years_to_fetch must be between 1 and %d", maxHistory)
	}

	if req.DeepSearch && req.DeepSearchYears < 1 {
		return fmt.Errorf("deep_search_years must be at least 1")
	}
	return nil
}

func (s *Server) ProgressHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		w.Header().Set("Content-Type", "application/json")

		task, ok := s.Tasks.Get(id)
		if !ok {
			if err := json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "Task not found"}); err != nil {
				log.Error("Failed to write response", "error", err)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(task.Snapshot()); err != nil {
			log.Error("Failed to encode task snapshot to JSON", "error", err)
		}
	}
}

func (s *Server) ListFilesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := s.Exporter.ListFiles()
		if err != nil {
			http.Error(w, "Failed to list files", http.StatusInternalServerError)
			log.Error("Failed to list output files", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(files); err != nil {
			log.Error("Failed to encode file listing to JSON", "error", err)
		}
	}
}

func (s *Server) DownloadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("filename")
		path, err := s.Exporter.Resolve(name)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		http.ServeFile(w, r, path)
	}
}

func (s *Server) DeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("filename")
		if err := s.Exporter.Delete(name); err != nil {
			if errors.Is(err, exporter.ErrNotFound) {
				http.Error(w, "File not found", http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to delete file", http.StatusInternalServerError)
			log.Error("Failed to delete output file", "name", name, "error", err)
			return
		}
		log.Info("Deleted output file", "name", name)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "File deleted")
	}
}
