package statbotics

import "context"

// StatboticsClient defines the interface for interacting with the Statbotics API.
// This allows for mock implementations to be used in tests.
type StatboticsClient interface {
	GetTeamYear(ctx context.Context, team, year int) (TeamStats, error)
}
