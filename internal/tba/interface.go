package tba

import "context"

// TBAClient defines the interface for interacting with The Blue Alliance API.
// This allows for mock implementations to be used in tests.
type TBAClient interface {
	GetEventTeams(ctx context.Context, eventKey string) ([]int, error)
	GetTeamEventKeys(ctx context.Context, team, year int) ([]string, error)
	GetTeamEventAwards(ctx context.Context, team int, eventKey string) ([]string, error)
}
