package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/magber/frc-fetcher/internal/config"
	"github.com/magber/frc-fetcher/internal/exporter"
	"github.com/magber/frc-fetcher/internal/fetcher"
	"github.com/magber/frc-fetcher/internal/metrics"
	"github.com/magber/frc-fetcher/internal/tasks"
	"github.com/magber/frc-fetcher/internal/tba"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *fetcher.MockPipeline, string) {
	t.Helper()
	dir := t.TempDir()
	pipeline := fetcher.NewMockPipeline()
	s := NewServer(
		pipeline,
		exporter.New(dir),
		tasks.NewStore(),
		metrics.NewMock(),
		metrics.NewMetricsHandler(),
		config.Config{Port: "0", OutputDir: dir, Workers: 2},
	)
	return s, pipeline, dir
}

func doJSON(s *Server, method, target string, body any) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if raw, ok := body.(string); ok {
		reader = strings.NewReader(raw)
	} else {
		encoded, _ := json.Marshal(body)
		reader = strings.NewReader(string(encoded))
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func validRequest() map[string]any {
	return map[string]any{
		"event_year":     2024,
		"event_codes":    []string{"txhou"},
		"team_number":    254,
		"years_to_fetch": 2,
	}
}

func TestHealthCheckHandler(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := doJSON(s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK!", rec.Body.String())
}

func TestIndexHandler(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := doJSON(s, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "FRC Event Data Fetcher")
}

func TestStartFetchHandler_Validation(t *testing.T) {
	s, _, _ := newTestServer(t)

	t.Run("rejects invalid JSON", func(t *testing.T) {
		rec := doJSON(s, http.MethodPost, "/api/fetch", "{not json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects an out-of-range event year", func(t *testing.T) {
		req := validRequest()
		req["event_year"] = 1800
		rec := doJSON(s, http.MethodPost, "/api/fetch", req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects an empty event code list", func(t *testing.T) {
		req := validRequest()
		req["event_codes"] = []string{"  "}
		rec := doJSON(s, http.MethodPost, "/api/fetch", req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects zero years of history", func(t *testing.T) {
		req := validRequest()
		req["years_to_fetch"] = 0
		rec := doJSON(s, http.MethodPost, "/api/fetch", req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects deep search without a span", func(t *testing.T) {
		req := validRequest()
		req["deep_search"] = true
		rec := doJSON(s, http.MethodPost, "/api/fetch", req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("trims and lowercases event codes", func(t *testing.T) {
		s, pipeline, _ := newTestServer(t)
		keys := make(chan string, 1)
		pipeline.EventTeamsFunc = func(eventKey string) ([]int, error) {
			keys <- eventKey
			return []int{100}, nil
		}

		req := validRequest()
		req["event_codes"] = []string{" TXHOU "}
		rec := doJSON(s, http.MethodPost, "/api/fetch", req)
		require.Equal(t, http.StatusOK, rec.Code)

		select {
		case got := <-keys:
			assert.Equal(t, "2024txhou", got)
		case <-time.After(time.Second):
			t.Fatal("roster lookup was never made")
		}
	})
}

func TestFetchFlow(t *testing.T) {
	t.Run("standard run completes and writes the workbook", func(t *testing.T) {
		s, pipeline, dir := newTestServer(t)
		pipeline.EventTeamsFunc = func(eventKey string) ([]int, error) {
			assert.Equal(t, "2024txhou", eventKey)
			return []int{100, 254}, nil
		}

		rec := doJSON(s, http.MethodPost, "/api/fetch", validRequest())
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		taskID := resp["task_id"]
		require.NotEmpty(t, taskID)

		task, ok := s.Tasks.Get(taskID)
		require.True(t, ok)
		require.Eventually(t, func() bool {
			return task.Snapshot().Status != tasks.StatusRunning
		}, 2*time.Second, 10*time.Millisecond)

		snap := task.Snapshot()
		assert.Equal(t, tasks.StatusCompleted, snap.Status)
		assert.Equal(t, float64(100), snap.Progress)
		assert.Equal(t, "2024txhou.xlsx", snap.Filename)

		_, err := os.Stat(filepath.Join(dir, "2024txhou.xlsx"))
		assert.NoError(t, err)
	})

	t.Run("deep search resolves the roster through the union lookup", func(t *testing.T) {
		s, pipeline, dir := newTestServer(t)
		pipeline.EventTeamsDeepFunc = func(eventYear int, code string, span int) ([]int, error) {
			assert.Equal(t, 2024, eventYear)
			assert.Equal(t, "abc", code)
			assert.Equal(t, 3, span)
			return []int{100, 254, 9999}, nil
		}

		req := validRequest()
		req["event_codes"] = []string{"abc"}
		req["deep_search"] = true
		req["deep_search_years"] = 3
		rec := doJSON(s, http.MethodPost, "/api/fetch", req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		task, ok := s.Tasks.Get(resp["task_id"])
		require.True(t, ok)
		require.Eventually(t, func() bool {
			return task.Snapshot().Status != tasks.StatusRunning
		}, 2*time.Second, 10*time.Millisecond)

		snap := task.Snapshot()
		assert.Equal(t, tasks.StatusCompleted, snap.Status)
		assert.Equal(t, "2024abc_deep.xlsx", snap.Filename)
		require.Len(t, pipeline.EventTeamsDeepCalls, 1)

		_, err := os.Stat(filepath.Join(dir, "2024abc_deep.xlsx"))
		assert.NoError(t, err)
	})

	t.Run("roster failure surfaces a clear task error", func(t *testing.T) {
		s, pipeline, _ := newTestServer(t)
		pipeline.EventTeamsFunc = func(eventKey string) ([]int, error) {
			return nil, fmt.Errorf("could not fetch teams for event %s: %w", eventKey, tba.ErrEventNotFound)
		}

		rec := doJSON(s, http.MethodPost, "/api/fetch", validRequest())
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		task, ok := s.Tasks.Get(resp["task_id"])
		require.True(t, ok)
		require.Eventually(t, func() bool {
			return task.Snapshot().Status == tasks.StatusError
		}, 2*time.Second, 10*time.Millisecond)

		assert.Contains(t, task.Snapshot().Message, "Event 2024txhou was not found")
	})
}

func TestProgressHandler(t *testing.T) {
	s, _, _ := newTestServer(t)

	t.Run("unknown task IDs answer with an error payload", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/api/progress/nope", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp["status"])
		assert.Equal(t, "Task not found", resp["message"])
	})

	t.Run("known tasks answer with their snapshot", func(t *testing.T) {
		task := s.Tasks.Create()
		task.SetProgress(55)
		task.SetMessage("Processing event txhou (1/1)")

		rec := doJSON(s, http.MethodGet, "/api/progress/"+task.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var snap tasks.Snapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
		assert.Equal(t, tasks.StatusRunning, snap.Status)
		assert.Equal(t, 55.0, snap.Progress)
	})
}

func TestFileHandlers(t *testing.T) {
	s, _, dir := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024txhou.xlsx"), []byte("stub"), 0o644))

	t.Run("lists output files", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/api/files", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var files []exporter.FileInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &files))
		require.Len(t, files, 1)
		assert.Equal(t, "2024txhou.xlsx", files[0].Name)
	})

	t.Run("downloads a known file as an attachment", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/download/2024txhou.xlsx", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	})

	t.Run("download of an unknown file is a 404", func(t *testing.T) {
		rec := doJSON(s, http.MethodGet, "/download/absent.xlsx", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("deletes a known file once", func(t *testing.T) {
		rec := doJSON(s, http.MethodDelete, "/delete/2024txhou.xlsx", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(s, http.MethodDelete, "/delete/2024txhou.xlsx", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
