package domain

import (
	"strings"
	"time"
)

// TaskStatus is the completion state of a chore.
type TaskStatus string

const (
	TaskPending   TaskStatus = "Pending"
	TaskCompleted TaskStatus = "Completed"
)

// Task is a household chore. Description holds one entry per step.
type Task struct {
	Ownership   `bson:",inline"`
	Title       string     `json:"title"             bson:"title"`
	Description []string   `json:"description"       bson:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty" bson:"due_date,omitempty"`
	Status      TaskStatus `json:"status"            bson:"status"`
}

func (t *Task) Kind() ResourceKind { return KindTask }

func (t *Task) Normalize() error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return Invalid("title is required")
	}
	if t.Description == nil {
		t.Description = []string{}
	}
	switch t.Status {
	case "":
		t.Status = TaskPending
	case TaskPending, TaskCompleted:
	default:
		return Invalid("status must be one of: Pending, Completed")
	}
	return nil
}
