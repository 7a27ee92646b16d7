package statbotics

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a mock implementation of the StatboticsClient interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spy for method calls
	GetTeamYearFunc func(team, year int) (TeamStats, error)

	// Call records
	GetTeamYearCalls []string
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetTeamYearCalls = nil
}

func (m *MockClient) GetTeamYear(_ context.Context, team, year int) (TeamStats, error) {
	m.mu.Lock()
	m.GetTeamYearCalls = append(m.GetTeamYearCalls, fmt.Sprintf("%d:%d", team, year))
	fn := m.GetTeamYearFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(team, year)
	}
	return Empty(), nil
}
