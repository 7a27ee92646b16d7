package fetcher

import "context"

// Pipeline defines the fetch-and-aggregate operations consumed by the HTTP
// handlers and the CLI. This allows for mock implementations to be used in tests.
type Pipeline interface {
	EventTeams(ctx context.Context, eventKey string) ([]int, error)
	EventTeamsDeep(ctx context.Context, eventYear int, code string, span int) ([]int, error)
	TeamRow(ctx context.Context, team, startYear, endYear int, summary bool) Row
	RunBatch(ctx context.Context, teams []int, startYear, endYear, workers int, summary bool, progress ProgressFunc) []Row
}
