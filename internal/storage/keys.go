package storage

import "fmt"

// Kind identifies one persisted slot within a user's namespace.
type Kind string

// Storage kinds. The preference and bundle kinds keep their historical wire
// names so existing stores stay readable.
const (
	KindNotes          Kind = "notes"
	KindTasks          Kind = "tasks"
	KindEvents         Kind = "events"
	KindModePreference Kind = "stock_preference"
	KindDemoBundle     Kind = "stock_data"
)

// GuestUserID is the shared fallback namespace for sessions without a
// persisted user. All anonymous sessions see the same data; this is a
// deliberate degraded mode, not an error.
const GuestUserID = "guest"

// ResolveKey derives the storage key for a (user, kind) pair. It is pure and
// injective: distinct pairs never collide, and a key never contains another
// user's identifier. An empty userID falls back to GuestUserID.
func ResolveKey(userID string, kind Kind) string {
	if userID == "" {
		userID = GuestUserID
	}
	return fmt.Sprintf("%s_%s_%s", AppName, kind, userID)
}
