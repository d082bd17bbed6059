package repo

import (
	"time"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/demo"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/session"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/storage"
)

// Notes is the repository for Note entities.
type Notes struct {
	*Repository[model.Note]
}

// NewNotes creates the notes repository for the given session.
func NewNotes(db *storage.DB, sess *session.Session, store *demo.Store) *Notes {
	return &Notes{newRepository(db, sess, store, storage.KindNotes,
		func(b *model.Bundle) *[]model.Note { return &b.Notes },
		func(items []model.Note) demo.Patch { return demo.Patch{Notes: &items} })}
}

// Create adds a note with a fresh id and current timestamps.
func (n *Notes) Create(title, content string) (model.Note, error) {
	return n.insert(model.NewNote(title, content))
}

// NotePatch carries the updatable note fields; nil fields are left as-is.
type NotePatch struct {
	Title    *string
	Content  *string
	Favorite *bool
}

// Update merges the patch into the note with the given id and refreshes
// its updated_at timestamp.
func (n *Notes) Update(id string, p NotePatch) (model.Note, error) {
	return n.update(id, func(note model.Note) model.Note {
		if p.Title != nil {
			note.Title = *p.Title
		}
		if p.Content != nil {
			note.Content = *p.Content
		}
		if p.Favorite != nil {
			note.Favorite = *p.Favorite
		}
		note.UpdatedAt = time.Now()
		return note
	})
}

// ToggleFavorite flips the favorite flag, a read-modify-write over Update.
func (n *Notes) ToggleFavorite(id string) (model.Note, error) {
	note, err := n.Get(id)
	if err != nil {
		return model.Note{}, err
	}
	next := !note.Favorite
	return n.Update(id, NotePatch{Favorite: &next})
}
