package runtime

import (
	"testing"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/demo"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, userID string) *Context {
	opts := DefaultOptions()
	opts.InMemory = true
	opts.UserID = userID

	ctx, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })
	return ctx
}

func TestNewContext(t *testing.T) {
	ctx := newTestContext(t, "user-1")
	assert.NotNil(t, ctx.DB)
	assert.Equal(t, "user-1", ctx.Session.UserID())
	assert.Equal(t, "live", ctx.Session.Mode())
	assert.Equal(t, output.FormatCLI, ctx.Formatter.Format)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SKILLHUB_DATABASE", ":memory:")
	t.Setenv("SKILLHUB_USER", "env-user")

	ctx, err := New(DefaultOptions())
	require.NoError(t, err)
	defer ctx.Close()

	assert.Equal(t, "", ctx.DB.Path())
	assert.Equal(t, "env-user", ctx.Session.UserID())
}

func TestSetModeInvalidatesRepos(t *testing.T) {
	ctx := newTestContext(t, "user-1")

	_, err := ctx.Repos.Notes.Create("live note", "body")
	require.NoError(t, err)
	require.Len(t, ctx.Repos.Notes.Load(), 1)

	require.NoError(t, ctx.SetMode(true))
	assert.Len(t, ctx.Repos.Notes.Load(), demo.SeedNoteCount)

	require.NoError(t, ctx.SetMode(false))
	notes := ctx.Repos.Notes.Load()
	require.Len(t, notes, 1)
	assert.Equal(t, "live note", notes[0].Title)
}

func TestSnapshot(t *testing.T) {
	ctx := newTestContext(t, "user-1")

	_, err := ctx.Repos.Tasks.Create("t", "", model.PriorityLow, nil)
	require.NoError(t, err)

	snap := ctx.Snapshot()
	assert.Len(t, snap.Tasks, 1)
	assert.Empty(t, snap.Notes)
}
