// Package repo implements the per-user entity repositories. One generic
// CRUD core is shared by all three entity kinds; Notes, Tasks and Events
// add the kind-specific conveniences on top.
package repo

import (
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/demo"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/errors"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/logging"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/session"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/storage"
)

// Status is the per-session lifecycle of a repository.
type Status int

const (
	Uninitialized Status = iota
	Loading
	Ready
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Repository is the generic CRUD surface over one entity collection. The
// active slot is chosen per operation from the session's mode: the user's
// live storage key, or the demo bundle slice selected by slot.
//
// Mutations update the in-memory collection first and then write the whole
// collection back; a dropped write is reported via ErrPersistFailed but the
// in-memory state stays authoritative for the session. There is no Error
// state: every failure degrades to an empty or unchanged Ready collection.
type Repository[T model.Entity] struct {
	db    *storage.DB
	sess  *session.Session
	demo  *demo.Store
	kind  storage.Kind
	slot  func(*model.Bundle) *[]T
	patch func([]T) demo.Patch

	status Status
	items  []T
}

func newRepository[T model.Entity](
	db *storage.DB,
	sess *session.Session,
	store *demo.Store,
	kind storage.Kind,
	slot func(*model.Bundle) *[]T,
	patch func([]T) demo.Patch,
) *Repository[T] {
	return &Repository[T]{
		db:    db,
		sess:  sess,
		demo:  store,
		kind:  kind,
		slot:  slot,
		patch: patch,
	}
}

// Status returns the repository's session lifecycle state.
func (r *Repository[T]) Status() Status {
	return r.status
}

// Invalidate drops the session cache. It fires on user or mode changes so
// the next Load reads the newly active slot.
func (r *Repository[T]) Invalidate() {
	r.status = Uninitialized
	r.items = nil
}

// Load returns the full current collection for the active (user, mode)
// slot. Results are cached for the session; use Refetch to force a re-read.
// Absent or unparsable live data yields an empty collection, not an error.
func (r *Repository[T]) Load() []T {
	if r.status == Ready {
		return r.items
	}

	r.status = Loading
	if r.sess.UsingDemo() {
		r.items = *r.slot(r.demo.Bundle())
	} else {
		r.items = storage.LoadCollection[T](r.db, r.sess.Key(r.kind))
	}
	r.status = Ready

	logging.LogOperation("load",
		logging.KeyKind, string(r.kind),
		logging.KeyMode, r.sess.Mode(),
		logging.KeyCount, len(r.items))
	return r.items
}

// Refetch invalidates the cache and loads again.
func (r *Repository[T]) Refetch() []T {
	r.Invalidate()
	return r.Load()
}

// insert prepends the record (collections are ordered most-recent-first)
// and persists.
func (r *Repository[T]) insert(rec T) (T, error) {
	items := r.Load()
	r.items = append([]T{rec}, items...)
	return rec, r.persist()
}

// update merges fields into the record with the given id via apply and
// persists. A missing id still persists the unchanged collection — the
// historical no-op — but returns ErrRecordNotFound so callers can tell.
func (r *Repository[T]) update(id string, apply func(T) T) (T, error) {
	r.Load()

	var out T
	found := false
	for i, it := range r.items {
		if it.EntityID() == id {
			r.items[i] = apply(it)
			out = r.items[i]
			found = true
			break
		}
	}

	err := r.persist()
	if !found {
		return out, errors.Wrapf(errors.ErrRecordNotFound, "%s %s", r.kind, id)
	}
	return out, err
}

// Get returns the record with the given id from the current collection.
func (r *Repository[T]) Get(id string) (T, error) {
	for _, it := range r.Load() {
		if it.EntityID() == id {
			return it, nil
		}
	}
	var zero T
	return zero, errors.Wrapf(errors.ErrRecordNotFound, "%s %s", r.kind, id)
}

// Delete removes the record with the given id if present and persists.
// Deleting an unknown id is a silent no-op on the collection.
func (r *Repository[T]) Delete(id string) error {
	items := r.Load()
	kept := items[:0]
	for _, it := range items {
		if it.EntityID() != id {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return r.persist()
}

// persist writes the entire collection back to the active slot.
func (r *Repository[T]) persist() error {
	var err error
	if r.sess.UsingDemo() {
		err = r.demo.Merge(r.patch(r.items))
	} else {
		err = storage.SaveCollection(r.db, r.sess.Key(r.kind), r.items)
	}

	if err != nil {
		logging.Warn("collection write dropped",
			logging.KeyKind, string(r.kind),
			logging.KeyMode, r.sess.Mode(),
			logging.KeyError, err)
		if errors.IsPersistFailure(err) {
			return err
		}
		return errors.Wrapf(errors.ErrPersistFailed, "%s: %v", r.kind, err)
	}
	return nil
}

// All bundles the three repositories of one session.
type All struct {
	Notes  *Notes
	Tasks  *Tasks
	Events *Events
}

// New constructs the three repositories over a shared session and demo store.
func New(db *storage.DB, sess *session.Session, store *demo.Store) All {
	return All{
		Notes:  NewNotes(db, sess, store),
		Tasks:  NewTasks(db, sess, store),
		Events: NewEvents(db, sess, store),
	}
}

// Invalidate drops all three session caches.
func (a All) Invalidate() {
	a.Notes.Invalidate()
	a.Tasks.Invalidate()
	a.Events.Invalidate()
}

// Snapshot returns a by-value copy of all three collections for read-only
// consumers (search, export, dashboard).
func (a All) Snapshot() model.Bundle {
	return model.Bundle{
		Notes:  a.Notes.Load(),
		Tasks:  a.Tasks.Load(),
		Events: a.Events.Load(),
	}.Clone()
}
