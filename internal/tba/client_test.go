package tba

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/magber/frc-fetcher/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) (*APIClient, *metrics.Mock) {
	metr := metrics.NewMock()
	return &APIClient{
		httpClient: server.Client(),
		BaseURL:    server.URL,
		apiKey:     "test-key",
		metrics:    metr,
	}, metr
}

func TestGetEventTeams(t *testing.T) {
	t.Run("returns sorted team numbers", func(t *testing.T) {
		mockJSONResponse := `[
			{ "key": "frc9999", "team_number": 9999, "nickname": "Newcomers" },
			{ "key": "frc100", "team_number": 100, "nickname": "The WildHats" },
			{ "key": "frc254", "team_number": 254, "nickname": "The Cheesy Poofs" }
		]`

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/event/2024txhou/teams/simple", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("X-TBA-Auth-Key"))
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintln(w, mockJSONResponse)
		}))
		defer server.Close()

		client, metr := newTestClient(server)
		teams, err := client.GetEventTeams(context.Background(), "2024txhou")

		require.NoError(t, err)
		assert.Equal(t, []int{100, 254, 9999}, teams)
		assert.Equal(t, 1, metr.TBARequests())
	})

	t.Run("maps a 401 to ErrUnauthorized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client, _ := newTestClient(server)
		_, err := client.GetEventTeams(context.Background(), "2024txhou")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("maps a 404 to ErrEventNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client, _ := newTestClient(server)
		_, err := client.GetEventTeams(context.Background(), "2024nope")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("wraps transport failures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // Shut down immediately so the request fails.

		client := &APIClient{
			httpClient: &http.Client{Timeout: time.Second},
			BaseURL:    server.URL,
			apiKey:     "test-key",
			metrics:    metrics.NewMock(),
		}
		_, err := client.GetEventTeams(context.Background(), "2024txhou")

		require.Error(t, err)
		assert.ErrorContains(t, err, "could not fetch teams for event 2024txhou")
	})
}

func TestGetTeamEventKeys(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/team/frc254/events/2024/keys", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `["2024txhou", "2024cmptx"]`)
	}))
	defer server.Close()

	client, _ := newTestClient(server)
	keys, err := client.GetTeamEventKeys(context.Background(), 254, 2024)

	require.NoError(t, err)
	assert.Equal(t, []string{"2024txhou", "2024cmptx"}, keys)
}

func TestGetTeamEventAwards(t *testing.T) {
	mockJSONResponse := `[
		{ "name": "Regional Winners", "award_type": 1, "event_key": "2024txhou", "year": 2024 },
		{ "name": "Innovation in Control Award", "award_type": 21, "event_key": "2024txhou", "year": 2024 }
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/team/frc254/event/2024txhou/awards", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, mockJSONResponse)
	}))
	defer server.Close()

	client, _ := newTestClient(server)
	awards, err := client.GetTeamEventAwards(context.Background(), 254, "2024txhou")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"2024txhou - Regional Winners",
		"2024txhou - Innovation in Control Award",
	}, awards)
}
