package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/demo"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	snap model.Bundle
	demo bool
}

func (f *fakeBackend) Snapshot() model.Bundle { return f.snap }
func (f *fakeBackend) SetMode(d bool) error   { f.demo = d; return nil }
func (f *fakeBackend) UserID() string         { return "user-1" }
func (f *fakeBackend) UsingDemo() bool        { return f.demo }
func (f *fakeBackend) Mode() string {
	if f.demo {
		return "demo"
	}
	return "live"
}

func newTestModel() (*DashboardModel, *fakeBackend) {
	backend := &fakeBackend{snap: demo.Seed(time.Now())}
	m := NewDashboardModel(DashboardConfig{
		Backend: backend,
		Session: backend,
	})
	return m, backend
}

func TestViewRendersSections(t *testing.T) {
	m, _ := newTestModel()

	// Load data the way Init's refresh command does.
	updated, _ := m.Update(refreshMsg{})
	m = updated.(*DashboardModel)

	view := m.View()
	assert.Contains(t, view, "SkillHub")
	assert.Contains(t, view, "user-1")
	assert.Contains(t, view, "notes 3")
	assert.Contains(t, view, "tasks 4")
	assert.Contains(t, view, "toggle demo mode")
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModeToggleKey(t *testing.T) {
	m, backend := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	assert.True(t, backend.demo)
	require.NotNil(t, cmd)
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(*DashboardModel)
	assert.Equal(t, 100, m.width)
}

func TestResetOnlyInDemoMode(t *testing.T) {
	m, _ := newTestModel()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(*DashboardModel)
	assert.Contains(t, m.View(), "reset only applies in demo mode")
}
