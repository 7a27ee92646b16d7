package tba

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a mock implementation of the TBAClient interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	GetEventTeamsFunc      func(eventKey string) ([]int, error)
	GetTeamEventKeysFunc   func(team, year int) ([]string, error)
	GetTeamEventAwardsFunc func(team int, eventKey string) ([]string, error)

	// Call records
	GetEventTeamsCalls      []string
	GetTeamEventKeysCalls   []string
	GetTeamEventAwardsCalls []string
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetEventTeamsCalls = nil
	m.GetTeamEventKeysCalls = nil
	m.GetTeamEventAwardsCalls = nil
}

func (m *MockClient) GetEventTeams(_ context.Context, eventKey string) ([]int, error) {
	m.mu.Lock()
	m.GetEventTeamsCalls = append(m.GetEventTeamsCalls, eventKey)
	fn := m.GetEventTeamsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(eventKey)
	}
	return []int{}, nil
}

func (m *MockClient) GetTeamEventKeys(_ context.Context, team, year int) ([]string, error) {
	m.mu.Lock()
	m.GetTeamEventKeysCalls = append(m.GetTeamEventKeysCalls, fmt.Sprintf("%d:%d", team, year))
	fn := m.GetTeamEventKeysFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(team, year)
	}
	return []string{}, nil
}

func (m *MockClient) GetTeamEventAwards(_ context.Context, team int, eventKey string) ([]string, error) {
	m.mu.Lock()
	m.GetTeamEventAwardsCalls = append(m.GetTeamEventAwardsCalls, fmt.Sprintf("%d:%s", team, eventKey))
	fn := m.GetTeamEventAwardsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(team, eventKey)
	}
	return []string{}, nil
}
