package demo

import (
	"time"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/errors"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/logging"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/session"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/storage"
)

// Store manages the demo bundle for one session. The bundle is hydrated
// lazily on first touch: from the persisted per-user bundle key if present,
// otherwise from the seed template. Edits are written back as one whole
// bundle, mirroring the whole-collection writes of the live slots.
//
// The execution model is a single cooperative writer per session; Store does
// no locking.
type Store struct {
	db     *storage.DB
	sess   *session.Session
	bundle *model.Bundle
}

// NewStore creates a demo bundle store bound to the given session.
func NewStore(db *storage.DB, sess *session.Session) *Store {
	return &Store{db: db, sess: sess}
}

// Bundle returns the in-memory bundle, hydrating it on first touch.
func (s *Store) Bundle() *model.Bundle {
	if s.bundle != nil {
		return s.bundle
	}

	var b model.Bundle
	err := storage.LoadValue(s.db, s.sess.Key(storage.KindDemoBundle), &b)
	if err != nil {
		if !storage.IsErrKeyNotFound(err) {
			logging.Warn("demo bundle unreadable, reseeding", logging.KeyError, err)
		}
		b = Seed(time.Now())
	}
	s.bundle = &b
	return s.bundle
}

// Persist writes the whole bundle under the session's demo-bundle key.
func (s *Store) Persist() error {
	if s.bundle == nil {
		return nil
	}
	if err := storage.SaveValue(s.db, s.sess.Key(storage.KindDemoBundle), s.bundle); err != nil {
		logging.Warn("demo bundle not persisted", logging.KeyError, err)
		return errors.Wrapf(errors.ErrPersistFailed, "demo bundle: %v", err)
	}
	return nil
}

// Reset discards all accumulated edits and restores the seed template,
// regenerated relative to the current time.
func (s *Store) Reset() error {
	b := Seed(time.Now())
	s.bundle = &b
	logging.Info("demo bundle reset", logging.KeyUser, s.sess.UserID())
	return s.Persist()
}

// Patch carries one or more entity-kind slices to merge into the bundle.
// Nil fields are left untouched.
type Patch struct {
	Notes  *[]model.Note
	Tasks  *[]model.Task
	Events *[]model.Event
}

// Merge applies the patch to the bundle and persists it. Repositories use
// this to write back a single kind without disturbing the others.
func (s *Store) Merge(p Patch) error {
	b := s.Bundle()
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
	if p.Tasks != nil {
		b.Tasks = *p.Tasks
	}
	if p.Events != nil {
		b.Events = *p.Events
	}
	return s.Persist()
}

// Invalidate drops the hydrated bundle so the next touch re-reads storage.
// Called when the session's user identity changes.
func (s *Store) Invalidate() {
	s.bundle = nil
}
