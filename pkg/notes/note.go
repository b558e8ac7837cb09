package notes

import "time"

// Note is a free-form household note. Pinned notes are listed first.
type Note struct {
	UID       string
	Title     string
	Content   string
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
