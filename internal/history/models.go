package history

import "time"

// Entry records the outcome of processing one dropbox item in one run.
type Entry struct {
	ID             int64
	RunID          string
	Item           string
	Kind           string
	Status         string
	PartsCompleted int
	PartsTotal     int
	OutputPath     string
	ArchivePath    string
	Error          string
	StartedAt      time.Time
	FinishedAt     time.Time
}

// Duration returns the wall time spent on this item.
func (e Entry) Duration() time.Duration {
	if e.FinishedAt.IsZero() || e.StartedAt.IsZero() {
		return 0
	}
	return e.FinishedAt.Sub(e.StartedAt)
}
