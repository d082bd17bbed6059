// Package runtime provides the application runtime context for SkillHub.
package runtime

import (
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/config"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/demo"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/logging"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/output"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/repo"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/session"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/storage"
)

// Context holds the application runtime context: one database handle, one
// user session and the repositories bound to it. It is the explicit session
// object every command works through; nothing reads ambient user or mode
// state.
type Context struct {
	DB        *storage.DB
	Session   *session.Session
	Demo      *demo.Store
	Repos     repo.All
	Formatter *output.Formatter

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	UserID    string
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context. Environment overrides take
// precedence over flag-derived options so scripts can pin the database
// and identity without touching every invocation.
func New(opts Options) (*Context, error) {
	cfg := config.FromEnv()
	if cfg.Storage.InMemory {
		opts.InMemory = true
	}
	if cfg.Storage.DatabasePath != "" {
		opts.DBPath = cfg.Storage.DatabasePath
	}
	if opts.UserID == "" {
		opts.UserID = cfg.Session.User
	}

	// Open database
	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	// Build the session and its repositories
	sess := session.New(db, opts.UserID)
	store := demo.NewStore(db, sess)
	repos := repo.New(db, sess, store)

	// Create formatter
	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	logging.DebugLog("runtime ready",
		logging.KeyUser, opts.UserID,
		logging.KeyMode, sess.Mode())

	return &Context{
		DB:        db,
		Session:   sess,
		Demo:      store,
		Repos:     repos,
		Formatter: formatter,
		Debug:     opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// SetMode switches between live and demo mode and invalidates the
// repository caches so the next load reads the newly active slot.
// The returned error, if any, is a persistence warning: the switch itself
// already happened.
func (c *Context) SetMode(demoMode bool) error {
	err := c.Session.SetMode(demoMode)
	c.Repos.Invalidate()
	return err
}

// Snapshot returns a by-value copy of all three collections.
func (c *Context) Snapshot() model.Bundle {
	return c.Repos.Snapshot()
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
