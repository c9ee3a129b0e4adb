package models

// Status of an existing event. Creation payloads carry no status,
// the server assigns the initial value.
type Status string

const (
	StatusStarted   Status = "started"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusStarted, StatusPaused, StatusCompleted:
		return true
	}
	return false
}
