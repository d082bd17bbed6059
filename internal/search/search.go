// Package search implements the unified lexical search across all three
// entity collections.
package search

import (
	"strings"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/logging"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
)

// Kind tags a match with its source entity kind.
type Kind string

const (
	KindNote  Kind = "note"
	KindTask  Kind = "task"
	KindEvent Kind = "event"
)

// Navigation targets per kind.
const (
	URLNotes    = "/notes"
	URLTasks    = "/tasks"
	URLCalendar = "/calendar"
)

// excerptLen is the maximum excerpt length before truncation.
const excerptLen = 100

// Match is one search hit.
type Match struct {
	Kind    Kind   `json:"kind"`
	ID      string `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	URL     string `json:"url"`
}

// Query runs a case-insensitive substring search over note titles/contents,
// task titles/descriptions and event titles/descriptions. Matches come back
// in discovery order: notes, then tasks, then events, each preserving its
// collection's order. An empty or whitespace-only query yields no matches.
// The operation is read-only.
func Query(snap model.Bundle, query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Match{}
	}

	matches := []Match{}
	for _, n := range snap.Notes {
		if contains(q, n.Title, n.Content) {
			matches = append(matches, Match{
				Kind:    KindNote,
				ID:      n.ID,
				Title:   n.Title,
				Excerpt: excerpt(n.Content),
				URL:     URLNotes,
			})
		}
	}
	for _, t := range snap.Tasks {
		if contains(q, t.Title, t.Description) {
			matches = append(matches, Match{
				Kind:    KindTask,
				ID:      t.ID,
				Title:   t.Title,
				Excerpt: excerpt(t.Description),
				URL:     URLTasks,
			})
		}
	}
	for _, e := range snap.Events {
		if contains(q, e.Title, e.Description) {
			matches = append(matches, Match{
				Kind:    KindEvent,
				ID:      e.ID,
				Title:   e.Title,
				Excerpt: excerpt(e.Description),
				URL:     URLCalendar,
			})
		}
	}

	logging.LogOperation("search", logging.KeyQuery, q, logging.KeyCount, len(matches))
	return matches
}

func contains(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// excerpt truncates body to the first 100 characters, with an ellipsis
// when something was cut.
func excerpt(body string) string {
	runes := []rune(body)
	if len(runes) <= excerptLen {
		return body
	}
	return string(runes[:excerptLen]) + "..."
}
