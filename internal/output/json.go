package output

import (
	"time"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/search"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// NoteOutput represents a note in JSON output.
type NoteOutput struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Favorite  bool   `json:"favorite"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewNoteOutput creates a NoteOutput from a Note.
func NewNoteOutput(n model.Note) NoteOutput {
	return NoteOutput{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Favorite:  n.Favorite,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		UpdatedAt: n.UpdatedAt.Format(time.RFC3339),
	}
}

// TaskOutput represents a task in JSON output.
type TaskOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// NewTaskOutput creates a TaskOutput from a Task.
func NewTaskOutput(t model.Task) TaskOutput {
	out := TaskOutput{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		out.DueDate = t.DueDate.Format(time.RFC3339)
	}
	return out
}

// EventOutput represents an event in JSON output.
type EventOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	EventDate   string `json:"event_date"`
	EventTime   string `json:"event_time"`
	Attendees   int    `json:"attendees"`
	CreatedAt   string `json:"created_at"`
}

// NewEventOutput creates an EventOutput from an Event.
func NewEventOutput(e model.Event) EventOutput {
	return EventOutput{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		EventDate:   e.EventDate.Format("2006-01-02"),
		EventTime:   e.EventTime,
		Attendees:   e.Attendees,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

// NotesResponse wraps a notes listing.
type NotesResponse struct {
	Mode  string       `json:"mode"`
	Notes []NoteOutput `json:"notes"`
}

// TasksResponse wraps a tasks listing.
type TasksResponse struct {
	Mode  string       `json:"mode"`
	Tasks []TaskOutput `json:"tasks"`
}

// EventsResponse wraps an events listing.
type EventsResponse struct {
	Mode   string        `json:"mode"`
	Events []EventOutput `json:"events"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []search.Match `json:"results"`
}

// ModeResponse reports the active mode.
type ModeResponse struct {
	User string `json:"user"`
	Mode string `json:"mode"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}
