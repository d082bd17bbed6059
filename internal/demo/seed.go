// Package demo provides the per-user demonstration dataset: a fixed seed
// template plus a persisted, editable, resettable bundle.
package demo

import (
	"time"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
)

// Seed counts. Reset always restores exactly these.
const (
	SeedNoteCount  = 3
	SeedTaskCount  = 4
	SeedEventCount = 3
)

func ptr(t time.Time) *time.Time { return &t }

// Seed builds the fixed demo template. Timestamps are generated relative to
// now so due dates and event dates keep their authored past/future meaning
// whenever the bundle is regenerated.
func Seed(now time.Time) model.Bundle {
	return model.Bundle{
		Notes: []model.Note{
			{
				ID:        "demo-note-1",
				Title:     "Welcome to SkillHub",
				Content:   "Welcome! This is your demo workspace. Everything here is sample data: edit it freely, then reset it from the demo menu whenever you like.",
				Favorite:  true,
				CreatedAt: now.AddDate(0, 0, -7),
				UpdatedAt: now.AddDate(0, 0, -7),
			},
			{
				ID:        "demo-note-2",
				Title:     "Weekly planning",
				Content:   "Review open tasks every Monday morning. Move anything stale to the backlog and pick at most three priorities for the week.",
				CreatedAt: now.AddDate(0, 0, -4),
				UpdatedAt: now.AddDate(0, 0, -3),
			},
			{
				ID:        "demo-note-3",
				Title:     "Reading list",
				Content:   "The Pragmatic Programmer, Deep Work, Getting Things Done. Ask the team for more recommendations.",
				CreatedAt: now.AddDate(0, 0, -2),
				UpdatedAt: now.AddDate(0, 0, -2),
			},
		},
		Tasks: []model.Task{
			{
				ID:          "demo-task-1",
				Title:       "Finish quarterly report",
				Description: "Collect the numbers from the dashboard and write the summary section.",
				Priority:    model.PriorityHigh,
				DueDate:     ptr(now.AddDate(0, 0, 2)),
				CreatedAt:   now.AddDate(0, 0, -5),
				UpdatedAt:   now.AddDate(0, 0, -5),
			},
			{
				ID:          "demo-task-2",
				Title:       "Reply to design feedback",
				Description: "Three comments left on the proposal document.",
				Priority:    model.PriorityMedium,
				DueDate:     ptr(now.AddDate(0, 0, 1)),
				CreatedAt:   now.AddDate(0, 0, -3),
				UpdatedAt:   now.AddDate(0, 0, -3),
			},
			{
				ID:          "demo-task-3",
				Title:       "Water the plants",
				Description: "",
				Completed:   true,
				Priority:    model.PriorityLow,
				CreatedAt:   now.AddDate(0, 0, -2),
				UpdatedAt:   now.AddDate(0, 0, -1),
			},
			{
				ID:          "demo-task-4",
				Title:       "Book dentist appointment",
				Description: "Any morning slot next week works.",
				Priority:    model.PriorityLow,
				DueDate:     ptr(now.AddDate(0, 0, 7)),
				CreatedAt:   now.AddDate(0, 0, -1),
				UpdatedAt:   now.AddDate(0, 0, -1),
			},
		},
		Events: []model.Event{
			{
				ID:          "demo-event-1",
				Title:       "Team standup",
				Description: "Daily sync with the product team.",
				EventDate:   now.AddDate(0, 0, 1),
				EventTime:   "09:30",
				Attendees:   6,
				CreatedAt:   now.AddDate(0, 0, -6),
			},
			{
				ID:          "demo-event-2",
				Title:       "Sprint retrospective",
				Description: "What went well, what to improve.",
				EventDate:   now.AddDate(0, 0, 4),
				EventTime:   "15:00",
				Attendees:   8,
				CreatedAt:   now.AddDate(0, 0, -6),
			},
			{
				ID:          "demo-event-3",
				Title:       "Lunch with Sam",
				Description: "Catch up at the usual place.",
				EventDate:   now.AddDate(0, 0, -3),
				EventTime:   "12:30",
				Attendees:   2,
				CreatedAt:   now.AddDate(0, 0, -8),
			},
		},
	}
}
