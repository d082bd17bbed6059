package repo

import (
	"time"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/demo"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/session"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/storage"
)

// Events is the repository for Event entities.
type Events struct {
	*Repository[model.Event]
}

// NewEvents creates the events repository for the given session.
func NewEvents(db *storage.DB, sess *session.Session, store *demo.Store) *Events {
	return &Events{newRepository(db, sess, store, storage.KindEvents,
		func(b *model.Bundle) *[]model.Event { return &b.Events },
		func(items []model.Event) demo.Patch { return demo.Patch{Events: &items} })}
}

// Create adds an event with a fresh id and current creation timestamp.
func (e *Events) Create(title, description string, date time.Time, timeOfDay string, attendees int) (model.Event, error) {
	return e.insert(model.NewEvent(title, description, date, timeOfDay, attendees))
}

// EventPatch carries the updatable event fields; nil fields are left as-is.
type EventPatch struct {
	Title       *string
	Description *string
	EventDate   *time.Time
	EventTime   *string
	Attendees   *int
}

// Update merges the patch into the event with the given id.
func (e *Events) Update(id string, p EventPatch) (model.Event, error) {
	return e.update(id, func(ev model.Event) model.Event {
		if p.Title != nil {
			ev.Title = *p.Title
		}
		if p.Description != nil {
			ev.Description = *p.Description
		}
		if p.EventDate != nil {
			ev.EventDate = *p.EventDate
		}
		if p.EventTime != nil {
			ev.EventTime = *p.EventTime
		}
		if p.Attendees != nil && *p.Attendees > 0 {
			ev.Attendees = *p.Attendees
		}
		return ev
	})
}
