package task

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"
)

// New creates an open task due at the given deadline.
func New(title string, deadline time.Time, priority int) *Task {
	return &Task{
		Title:    title,
		Deadline: Timestamp{Time: deadline},
		Priority: priority,
		Created:  Timestamp{Time: time.Now()},
	}
}

// Task is a single unit of work. Once a snapshot of tasks has been handed to
// the view model the values are treated as immutable; all mutation happens in
// the store.
type Task struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Note      string    `json:"note,omitempty"`
	Completed bool      `json:"completed,omitempty"`
	Deadline  Timestamp `json:"deadline,omitempty"`
	Priority  int       `json:"priority,omitempty"`
	Created   Timestamp `json:"created,omitempty"`
}

// EnsureID assigns a content-derived identifier when none is set.
func (t *Task) EnsureID() {
	if t.ID != "" {
		return
	}
	b, _ := json.Marshal(t)
	id := md5.Sum(b)
	t.ID = fmt.Sprintf("%x", id[:8])
}

func (t *Task) Active() bool {
	return !t.Completed
}

func (t *Task) String() string {
	switch {
	case t.Completed:
		return fmt.Sprintf("✘ %s", t.Title)
	default:
		return fmt.Sprintf("● %s", t.Title)
	}
}
