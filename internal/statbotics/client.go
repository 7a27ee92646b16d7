package statbotics

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/magber/frc-fetcher/internal/metrics"
)

// APIClient is a custom Statbotics API client that implements the StatboticsClient interface.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
	metrics    metrics.Metrics
}

// NewClient creates a new Statbotics client. The API is public and needs no credential.
func NewClient(host string, metricsSvc metrics.Metrics) StatboticsClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    host,
		metrics:    metricsSvc,
	}
}

// Ensure APIClient implements the StatboticsClient interface.
var _ StatboticsClient = (*APIClient)(nil)

// GetTeamYear fetches the EPA estimate and rank for a team in a given year.
// The EPA mean is rounded to two decimals for display.
func (c *APIClient) GetTeamYear(ctx context.Context, team, year int) (TeamStats, error) {
	url := fmt.Sprintf("%s/v3/team_year/%d/%d", c.BaseURL, team, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Empty(), fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debug("Requesting team year from Statbotics API", "url", url)
	c.metrics.IncStatboticsRequests()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Empty(), fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Empty(), fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var response teamYearResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return Empty(), fmt.Errorf("failed to decode response: %w", err)
	}

	return TeamStats{
		EPA:       math.Round(response.EPA.TotalPoints.Mean*100) / 100,
		Rank:      response.EPA.Ranks.Total.Rank,
		Available: true,
	}, nil
}
