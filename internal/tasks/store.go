// Package tasks is the registry of background fetch runs polled by the web
// UI. Tasks live for the process lifetime and are never persisted.
package tasks

import (
	"sync"

	"github.com/google/uuid"
)

// Task tracks the progress of one background fetch run. All mutators and
// Snapshot are safe for concurrent use: the run goroutine writes while the
// polling handler reads.
type Task struct {
	ID string

	mu       sync.Mutex
	status   Status
	progress float64
	message  string
	detail   string
	filename string
}

// SetProgress updates the completion percentage (0-100).
func (t *Task) SetProgress(progress float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress = progress
}

// SetMessage updates the top-level status message.
func (t *Task) SetMessage(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.message = message
}

// SetDetail updates the fine-grained status line.
func (t *Task) SetDetail(detail string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.detail = detail
}

// SetFilename records the most recently written output file.
func (t *Task) SetFilename(filename string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filename = filename
}

// Complete marks the task as finished successfully.
func (t *Task) Complete(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusCompleted
	t.progress = 100
	t.message = message
}

// Fail marks the task as failed with a user-facing message.
func (t *Task) Fail(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusError
	t.message = message
}

// Snapshot returns a consistent copy of the task state.
func (t *Task) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{
		Status:   t.status,
		Progress: t.progress,
		Message:  t.message,
		Detail:   t.detail,
		Filename: t.filename,
	}
}

// Store maps task IDs to live tasks. It is owned by the serving layer: a
// task is created when a run starts and retained until the process exits.
type Store struct {
	mu    sync.RWMutex
	tasks map[string]*Task
}

// NewStore creates an empty task store.
func NewStore() *Store {
	return &Store{tasks: make(map[string]*Task)}
}

// Create registers a new running task and returns it.
func (s *Store) Create() *Task {
	task := &Task{
		ID:      uuid.NewString(),
		status:  StatusRunning,
		message: "Initializing...",
	}
	s.mu.Lock()
	s.tasks[task.ID] = task
	s.mu.Unlock()
	return task
}

// Get looks up a task by ID.
func (s *Store) Get(id string) (*Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[id]
	return task, ok
}
