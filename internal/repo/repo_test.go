package repo

import (
	"testing"
	"time"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/demo"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/errors"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/session"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T, userID string) (*storage.DB, *session.Session, All) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sess := session.New(db, userID)
	store := demo.NewStore(db, sess)
	return db, sess, New(db, sess, store)
}

// switchMode flips the session mode and invalidates the caches, the way the
// runtime context does on a mode change.
func switchMode(t *testing.T, sess *session.Session, all All, demoMode bool) {
	require.NoError(t, sess.SetMode(demoMode))
	all.Invalidate()
}

func TestCreateThenLoad(t *testing.T) {
	_, _, all := setupRepos(t, "user-1")

	created, err := all.Notes.Create("Groceries", "milk, eggs")
	require.NoError(t, err)

	notes := all.Notes.Load()
	require.Len(t, notes, 1)
	assert.Equal(t, "Groceries", notes[0].Title)
	assert.Equal(t, "milk, eggs", notes[0].Content)
	assert.Equal(t, created.ID, notes[0].ID)

	// IDs stay unique within the collection.
	second, err := all.Notes.Create("Groceries", "milk, eggs")
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)
}

func TestCreatePrependsMostRecentFirst(t *testing.T) {
	_, _, all := setupRepos(t, "user-1")

	_, err := all.Tasks.Create("first", "", model.PriorityLow, nil)
	require.NoError(t, err)
	_, err = all.Tasks.Create("second", "", model.PriorityLow, nil)
	require.NoError(t, err)

	tasks := all.Tasks.Load()
	require.Len(t, tasks, 2)
	assert.Equal(t, "second", tasks[0].Title)
	assert.Equal(t, "first", tasks[1].Title)
}

func TestCreateSurvivesReload(t *testing.T) {
	db, _, all := setupRepos(t, "user-1")

	_, err := all.Notes.Create("persisted", "body")
	require.NoError(t, err)

	// A fresh set of repositories reads the same live slot.
	sess := session.New(db, "user-1")
	fresh := New(db, sess, demo.NewStore(db, sess))
	notes := fresh.Notes.Load()
	require.Len(t, notes, 1)
	assert.Equal(t, "persisted", notes[0].Title)
}

func TestUpdateIdempotent(t *testing.T) {
	_, _, all := setupRepos(t, "user-1")

	created, err := all.Notes.Create("draft", "v1")
	require.NoError(t, err)

	content := "v2"
	first, err := all.Notes.Update(created.ID, NotePatch{Content: &content})
	require.NoError(t, err)

	second, err := all.Notes.Update(created.ID, NotePatch{Content: &content})
	require.NoError(t, err)

	// Same visible state; only updated_at advances.
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Favorite, second.Favorite)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
	assert.Equal(t, created.CreatedAt.Unix(), second.CreatedAt.Unix())
}

func TestUpdateRefreshesTimestamp(t *testing.T) {
	_, _, all := setupRepos(t, "user-1")

	created, err := all.Tasks.Create("t", "", model.PriorityMedium, nil)
	require.NoError(t, err)

	title := "renamed"
	updated, err := all.Tasks.Update(created.ID, TaskPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
}

func TestUpdateMissingIDIsDetectableNoOp(t *testing.T) {
	db, _, all := setupRepos(t, "user-1")

	_, err := all.Notes.Create("only", "note")
	require.NoError(t, err)

	title := "ghost"
	_, err = all.Notes.Update("no-such-id", NotePatch{Title: &title})
	assert.True(t, errors.IsNotFound(err))

	// The collection is unchanged but was still written back.
	notes := all.Notes.Load()
	require.Len(t, notes, 1)
	assert.Equal(t, "only", notes[0].Title)

	key := storage.ResolveKey("user-1", storage.KindNotes)
	exists, err := db.Exists(key)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDelete(t *testing.T) {
	_, _, all := setupRepos(t, "user-1")

	a, err := all.Events.Create("a", "", time.Now(), "10:00", 2)
	require.NoError(t, err)
	b, err := all.Events.Create("b", "", time.Now(), "11:00", 3)
	require.NoError(t, err)

	require.NoError(t, all.Events.Delete(a.ID))

	events := all.Events.Load()
	require.Len(t, events, 1)
	assert.Equal(t, b.ID, events[0].ID)

	// Deleting a nonexistent id leaves the collection unchanged.
	require.NoError(t, all.Events.Delete("no-such-id"))
	assert.Len(t, all.Events.Load(), 1)
}

func TestToggleFavorite(t *testing.T) {
	_, _, all := setupRepos(t, "user-1")

	created, err := all.Notes.Create("n", "c")
	require.NoError(t, err)

	toggled, err := all.Notes.ToggleFavorite(created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Favorite)

	toggled, err = all.Notes.ToggleFavorite(created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Favorite)

	_, err = all.Notes.ToggleFavorite("no-such-id")
	assert.True(t, errors.IsNotFound(err))
}

func TestToggleCompletion(t *testing.T) {
	_, _, all := setupRepos(t, "user-1")

	created, err := all.Tasks.Create("t", "", model.PriorityHigh, nil)
	require.NoError(t, err)

	toggled, err := all.Tasks.ToggleCompletion(created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
}

func TestDemoModeServesSeed(t *testing.T) {
	_, sess, all := setupRepos(t, "user-1")
	switchMode(t, sess, all, true)

	assert.Len(t, all.Notes.Load(), demo.SeedNoteCount)
	assert.Len(t, all.Tasks.Load(), demo.SeedTaskCount)
	assert.Len(t, all.Events.Load(), demo.SeedEventCount)
}

func TestModeSwitchNeverMixesData(t *testing.T) {
	_, sess, all := setupRepos(t, "user-A")

	// User A creates a task in live mode.
	_, err := all.Tasks.Create("Buy milk", "", model.PriorityMedium, nil)
	require.NoError(t, err)

	// Demo mode shows only the seed tasks, never "Buy milk".
	switchMode(t, sess, all, true)
	demoTasks := all.Tasks.Load()
	require.Len(t, demoTasks, demo.SeedTaskCount)
	for _, task := range demoTasks {
		assert.NotEqual(t, "Buy milk", task.Title)
	}

	// Back to live: "Buy milk" is still there, and nothing leaked in.
	switchMode(t, sess, all, false)
	liveTasks := all.Tasks.Load()
	require.Len(t, liveTasks, 1)
	assert.Equal(t, "Buy milk", liveTasks[0].Title)
}

func TestDemoEditsStayInDemo(t *testing.T) {
	_, sess, all := setupRepos(t, "user-1")
	switchMode(t, sess, all, true)

	_, err := all.Notes.Create("demo scratch", "only in demo")
	require.NoError(t, err)
	assert.Len(t, all.Notes.Load(), demo.SeedNoteCount+1)

	switchMode(t, sess, all, false)
	assert.Empty(t, all.Notes.Load())

	// Demo edits survive the round trip until reset.
	switchMode(t, sess, all, true)
	assert.Len(t, all.Notes.Load(), demo.SeedNoteCount+1)
}

func TestPerUserIsolation(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	aliceSess := session.New(db, "alice")
	alice := New(db, aliceSess, demo.NewStore(db, aliceSess))
	bobSess := session.New(db, "bob")
	bob := New(db, bobSess, demo.NewStore(db, bobSess))

	_, err = alice.Notes.Create("alice note", "private")
	require.NoError(t, err)

	assert.Len(t, alice.Notes.Load(), 1)
	assert.Empty(t, bob.Notes.Load())
}

func TestCorruptLiveSlotDegradesToEmpty(t *testing.T) {
	db, _, all := setupRepos(t, "user-1")

	key := storage.ResolveKey("user-1", storage.KindTasks)
	require.NoError(t, db.SetBytes(key, []byte("][ not json")))

	assert.Empty(t, all.Tasks.Load())
	assert.Equal(t, Ready, all.Tasks.Status())
}

func TestStatusLifecycle(t *testing.T) {
	_, _, all := setupRepos(t, "user-1")

	assert.Equal(t, Uninitialized, all.Notes.Status())
	all.Notes.Load()
	assert.Equal(t, Ready, all.Notes.Status())

	all.Notes.Invalidate()
	assert.Equal(t, Uninitialized, all.Notes.Status())
}

func TestSnapshotIsByValue(t *testing.T) {
	_, _, all := setupRepos(t, "user-1")

	_, err := all.Notes.Create("n", "c")
	require.NoError(t, err)

	snap := all.Snapshot()
	require.Len(t, snap.Notes, 1)
	snap.Notes[0].Title = "mutated"

	assert.Equal(t, "n", all.Notes.Load()[0].Title)
}

func TestPersistFailureKeepsInMemoryState(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)

	sess := session.New(db, "user-1")
	all := New(db, sess, demo.NewStore(db, sess))
	all.Notes.Load()

	require.NoError(t, db.Close())

	created, err := all.Notes.Create("unsaved", "body")
	assert.True(t, errors.IsPersistFailure(err))
	assert.NotEmpty(t, created.ID)

	// The session still sees the record; it just will not survive a reload.
	assert.Len(t, all.Notes.Load(), 1)
}
