package fetcher

import (
	"context"
	"fmt"
	"sync"
)

// MockPipeline is a mock implementation of the Pipeline interface for testing.
// It is safe for concurrent use.
type MockPipeline struct {
	mu sync.Mutex

	// Spies for method calls
	EventTeamsFunc     func(eventKey string) ([]int, error)
	EventTeamsDeepFunc func(eventYear int, code string, span int) ([]int, error)
	TeamRowFunc        func(team, startYear, endYear int, summary bool) Row
	RunBatchFunc       func(teams []int, startYear, endYear, workers int, summary bool, progress ProgressFunc) []Row

	// Call records
	EventTeamsCalls     []string
	EventTeamsDeepCalls []string
	RunBatchCalls       [][]int
}

// NewMockPipeline creates a new mock instance.
func NewMockPipeline() *MockPipeline {
	return &MockPipeline{}
}

// Reset clears all call records.
func (m *MockPipeline) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EventTeamsCalls = nil
	m.EventTeamsDeepCalls = nil
	m.RunBatchCalls = nil
}

func (m *MockPipeline) EventTeams(_ context.Context, eventKey string) ([]int, error) {
	m.mu.Lock()
	m.EventTeamsCalls = append(m.EventTeamsCalls, eventKey)
	fn := m.EventTeamsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(eventKey)
	}
	return []int{}, nil
}

func (m *MockPipeline) EventTeamsDeep(_ context.Context, eventYear int, code string, span int) ([]int, error) {
	m.mu.Lock()
	m.EventTeamsDeepCalls = append(m.EventTeamsDeepCalls, fmt.Sprintf("%d:%s:%d", eventYear, code, span))
	fn := m.EventTeamsDeepFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(eventYear, code, span)
	}
	return []int{}, nil
}

func (m *MockPipeline) TeamRow(_ context.Context, team, startYear, endYear int, summary bool) Row {
	m.mu.Lock()
	fn := m.TeamRowFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(team, startYear, endYear, summary)
	}
	return Row{Team: team}
}

func (m *MockPipeline) RunBatch(_ context.Context, teams []int, startYear, endYear, workers int, summary bool, progress ProgressFunc) []Row {
	m.mu.Lock()
	m.RunBatchCalls = append(m.RunBatchCalls, teams)
	fn := m.RunBatchFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(teams, startYear, endYear, workers, summary, progress)
	}
	rows := make([]Row, 0, len(teams))
	for i, team := range teams {
		rows = append(rows, Row{Team: team})
		if progress != nil {
			progress(i+1, len(teams))
		}
	}
	return rows
}

// Ensure MockPipeline implements the Pipeline interface.
var _ Pipeline = (*MockPipeline)(nil)
