// Package session holds the per-user session state: the opaque user
// identity and the live/demo mode preference.
package session

import (
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/errors"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/logging"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/storage"
)

// Session scopes every storage access to one user and one mode. Repositories
// receive it explicitly at construction; there is no ambient current-user
// state.
type Session struct {
	db        *storage.DB
	userID    string
	usingDemo bool
}

// New creates a session for the given user, loading the persisted mode
// preference. An absent or unreadable preference means live mode. An empty
// userID selects the shared guest namespace.
func New(db *storage.DB, userID string) *Session {
	s := &Session{db: db, userID: userID}

	var demo bool
	if err := storage.LoadValue(db, s.Key(storage.KindModePreference), &demo); err == nil {
		s.usingDemo = demo
	}
	return s
}

// UserID returns the opaque user identifier, empty for guest sessions.
func (s *Session) UserID() string {
	return s.userID
}

// IsGuest reports whether this session uses the shared guest namespace.
func (s *Session) IsGuest() bool {
	return s.userID == ""
}

// Key resolves the storage key for the given kind in this session's
// user namespace.
func (s *Session) Key(kind storage.Kind) string {
	return storage.ResolveKey(s.userID, kind)
}

// UsingDemo reports whether demo mode is active.
func (s *Session) UsingDemo() bool {
	return s.usingDemo
}

// Mode returns "demo" or "live" for display and logging.
func (s *Session) Mode() string {
	if s.usingDemo {
		return "demo"
	}
	return "live"
}

// SetMode switches between live and demo mode. The in-memory flag is updated
// first and stays authoritative for the session even when persisting the
// preference fails; in that case the returned error carries ErrPersistFailed
// so the caller can surface a warning (the switch itself still happened).
func (s *Session) SetMode(demo bool) error {
	s.usingDemo = demo
	logging.DebugLog("mode switched", logging.KeyUser, s.userID, logging.KeyMode, s.Mode())

	if err := storage.SaveValue(s.db, s.Key(storage.KindModePreference), demo); err != nil {
		logging.Warn("mode preference not persisted", logging.KeyError, err)
		return errors.Wrapf(errors.ErrPersistFailed, "mode preference: %v", err)
	}
	return nil
}
