package tba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/magber/frc-fetcher/internal/metrics"
)

// APIClient is a custom Blue Alliance API client that implements the TBAClient interface.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
	apiKey     string
	metrics    metrics.Metrics
}

// NewClient creates a new Blue Alliance client.
func NewClient(host, apiKey string, metricsSvc metrics.Metrics) TBAClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    host,
		apiKey:     apiKey,
		metrics:    metricsSvc,
	}
}

// Ensure APIClient implements the TBAClient interface.
var _ TBAClient = (*APIClient)(nil)

// GetEventTeams fetches the roster for an event and returns sorted team numbers.
// This is the one lookup whose failure aborts a run, so errors carry enough
// context to tell a bad key from an unknown event from an unreachable provider.
func (c *APIClient) GetEventTeams(ctx context.Context, eventKey string) ([]int, error) {
	var response []teamSimple
	url := fmt.Sprintf("%s/event/%s/teams/simple", c.BaseURL, eventKey)
	if err := c.get(ctx, url, &response); err != nil {
		log.Error("Failed to fetch event roster", "eventKey", eventKey, "error", err)
		return nil, fmt.Errorf("could not fetch teams for event %s: %w", eventKey, err)
	}

	teams := make([]int, 0, len(response))
	for _, team := range response {
		teams = append(teams, team.TeamNumber)
	}
	sort.Ints(teams)
	log.Info("Fetched event roster", "eventKey", eventKey, "count", len(teams))
	return teams, nil
}

// GetTeamEventKeys fetches the keys of the events a team attended in a year.
func (c *APIClient) GetTeamEventKeys(ctx context.Context, team, year int) ([]string, error) {
	var keys []string
	url := fmt.Sprintf("%s/team/frc%d/events/%d/keys", c.BaseURL, team, year)
	if err := c.get(ctx, url, &keys); err != nil {
		return nil, fmt.Errorf("could not fetch events for team %d in %d: %w", team, year, err)
	}
	return keys, nil
}

// GetTeamEventAwards fetches the awards a team won at an event, formatted as
// "{eventKey} - {awardName}" for display.
func (c *APIClient) GetTeamEventAwards(ctx context.Context, team int, eventKey string) ([]string, error) {
	var response []awardResponse
	url := fmt.Sprintf("%s/team/frc%d/event/%s/awards", c.BaseURL, team, eventKey)
	if err := c.get(ctx, url, &response); err != nil {
		return nil, fmt.Errorf("could not fetch awards for team %d at %s: %w", team, eventKey, err)
	}

	awards := make([]string, 0, len(response))
	for _, award := range response {
		awards = append(awards, fmt.Sprintf("%s - %s", award.EventKey, award.Name))
	}
	return awards, nil
}

// get issues an authenticated GET request and decodes the JSON response into out.
func (c *APIClient) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-TBA-Auth-Key", c.apiKey)

	log.Debug("Requesting data from The Blue Alliance API", "url", url)
	c.metrics.IncTBARequests()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrEventNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from The Blue Alliance API", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
