package task

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the format used for created and completed dates in the
// state file. Times are local, second precision, no zone.
const TimeLayout = "2006-01-02 15:04:05"

// Status represents a task lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Priority represents a task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels. The
// entity itself accepts any string; only the interactive input layer
// uses this to normalize what the user typed.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Timestamp is a local date-time that marshals as "2006-01-02 15:04:05".
type Timestamp struct {
	time.Time
}

// Now returns the current local time as a Timestamp, truncated to
// second precision so round-trips through the state file are lossless.
func Now() Timestamp {
	return Timestamp{time.Now().Truncate(time.Second)}
}

func (t Timestamp) String() string {
	return t.Format(TimeLayout)
}

// MarshalJSON encodes the timestamp as a TimeLayout string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimeLayout))
}

// UnmarshalJSON decodes a TimeLayout string in local time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// Task represents a single task in the list.
type Task struct {
	ID            int        `json:"id"`
	Description   string     `json:"description"`
	Status        Status     `json:"status"`
	Priority      Priority   `json:"priority"`
	Category      string     `json:"category"`
	CreatedDate   Timestamp  `json:"created_date"`
	CompletedDate *Timestamp `json:"completed_date"`
}

// New creates a pending task with the creation date stamped. The caller
// is responsible for trimming the description; the id stays zero until
// the Manager assigns one. Empty priority and category fall back to
// medium and general.
func New(description string, priority Priority, category string) Task {
	if priority == "" {
		priority = PriorityMedium
	}
	if category == "" {
		category = "general"
	}
	return Task{
		Description: description,
		Status:      StatusPending,
		Priority:    priority,
		Category:    category,
		CreatedDate: Now(),
	}
}

// Complete marks the task completed and stamps the completion date.
func (t *Task) Complete() {
	t.Status = StatusCompleted
	now := Now()
	t.CompletedDate = &now
}

// Matches reports whether the task description equals s, ignoring case.
func (t *Task) Matches(s string) bool {
	return strings.EqualFold(t.Description, s)
}
