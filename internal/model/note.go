package model

import "time"

// Note is a free-form text note.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Favorite  bool      `json:"favorite"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityID returns the note's identifier.
func (n Note) EntityID() string {
	return n.ID
}

// NewNote creates a note with a fresh ID and current timestamps.
func NewNote(title, content string) Note {
	now := time.Now()
	return Note{
		ID:        NewID(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
