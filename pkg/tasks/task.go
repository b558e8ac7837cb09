package tasks

import "time"

// Task is a household to-do item kept in the app itself, separate from the
// user's Google task list. DueDate is optional; its zero value means the
// task has no date.
type Task struct {
	UID     string
	Title   string
	Notes   string
	DueDate time.Time
	Done    bool
}
