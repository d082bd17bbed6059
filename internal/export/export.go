// Package export renders a read-only snapshot of all three collections.
// It receives the snapshot by value and knows nothing about where the data
// came from.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
)

// JSON writes the snapshot as indented JSON.
func JSON(w io.Writer, snap model.Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// csvHeader is the flattened record shape shared by all three kinds.
var csvHeader = []string{"kind", "id", "title", "body", "flag", "when", "created_at"}

// CSV writes the snapshot as one flat CSV, a row per record.
func CSV(w io.Writer, snap model.Bundle) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, n := range snap.Notes {
		row := []string{
			"note", n.ID, n.Title, n.Content,
			strconv.FormatBool(n.Favorite),
			n.UpdatedAt.Format(time.RFC3339),
			n.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	for _, t := range snap.Tasks {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Format(time.RFC3339)
		}
		row := []string{
			"task", t.ID, t.Title, t.Description,
			string(t.Priority) + "/" + strconv.FormatBool(t.Completed),
			due,
			t.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	for _, e := range snap.Events {
		row := []string{
			"event", e.ID, e.Title, e.Description,
			strconv.Itoa(e.Attendees),
			e.EventDate.Format("2006-01-02") + " " + e.EventTime,
			e.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
