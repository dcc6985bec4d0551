// Package model defines the core note data types.
package model

import "time"

// TimeLayout is the layout of Note.UpdatedAt.
const TimeLayout = "2006-01-02 15:04:05"

// Note represents a stored note.
type Note struct {
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Body      string `json:"body" yaml:"body"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}

// Stamp sets UpdatedAt from t in local time.
func (n *Note) Stamp(t time.Time) {
	n.UpdatedAt = t.Local().Format(TimeLayout)
}

// NextID returns the id the next note added to notes should get: one past
// the highest id present, or 1 for an empty collection.
func NextID(notes []Note) int {
	maxID := 0
	for _, n := range notes {
		if n.ID > maxID {
			maxID = n.ID
		}
	}
	return maxID + 1
}

// Index returns the position of the note with the given id, or -1.
func Index(notes []Note, id int) int {
	for i, n := range notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
