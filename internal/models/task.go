package models

import (
	"fmt"
	"time"
)

// Status is the workflow position of a task. It is a closed
// enumeration: only the three constants below are ever persisted.
type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// ParseStatus converts a wire literal into a Status. Anything
// other than the three canonical literals is an error.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusToDo, StatusInProgress, StatusDone:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown task status: %q", s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

type Task struct {
	ID        int64
	OwnerID   string
	Title     string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
