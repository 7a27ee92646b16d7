package tasks

// Status is the lifecycle state of a background fetch run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Snapshot is the point-in-time view of a task served to polling clients.
type Snapshot struct {
	Status   Status  `json:"status"`
	Progress float64 `json:"progress"`
	Message  string  `json:"message"`
	Detail   string  `json:"detail"`
	Filename string  `json:"filename"`
}
