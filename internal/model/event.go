package model

import "time"

// Event is a calendar entry.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	// EventTime is the time of day in HH:MM form, kept separate from
	// EventDate to match the persisted shape.
	EventTime string    `json:"event_time"`
	Attendees int       `json:"attendees"`
	CreatedAt time.Time `json:"created_at"`
}

// EntityID returns the event's identifier.
func (e Event) EntityID() string {
	return e.ID
}

// NewEvent creates an event with a fresh ID and current creation timestamp.
func NewEvent(title, description string, date time.Time, timeOfDay string, attendees int) Event {
	if attendees < 1 {
		attendees = 1
	}
	return Event{
		ID:          NewID(),
		Title:       title,
		Description: description,
		EventDate:   date,
		EventTime:   timeOfDay,
		Attendees:   attendees,
		CreatedAt:   time.Now(),
	}
}
