package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	fetchRuns          int
	tbaRequests        int
	statboticsRequests int
	cacheHits          int
	cacheMisses        int
	teamsProcessed     int
	batchDurations     []float64
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		batchDurations: make([]float64, 0),
	}
}

func (m *Mock) IncFetchRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchRuns++
}

func (m *Mock) IncTBARequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tbaRequests++
}

func (m *Mock) IncStatboticsRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statboticsRequests++
}

func (m *Mock) IncCacheHit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

func (m *Mock) IncCacheMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses++
}

func (m *Mock) IncTeamsProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teamsProcessed++
}

func (m *Mock) ObserveBatchDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batchDurations = append(m.batchDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// FetchRuns returns the number of times IncFetchRuns was called.
func (m *Mock) FetchRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchRuns
}

// TBARequests returns the number of times IncTBARequests was called.
func (m *Mock) TBARequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tbaRequests
}

// StatboticsRequests returns the number of times IncStatboticsRequests was called.
func (m *Mock) StatboticsRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statboticsRequests
}

// CacheHits returns the number of times IncCacheHit was called.
func (m *Mock) CacheHits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits
}

// CacheMisses returns the number of times IncCacheMiss was called.
func (m *Mock) CacheMisses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheMisses
}

// TeamsProcessed returns the number of times IncTeamsProcessed was called.
func (m *Mock) TeamsProcessed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.teamsProcessed
}
