package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/output"
)

// tickMsg is sent when the refresh timer ticks.
type tickMsg time.Time

// refreshMsg is sent when data needs to be reloaded.
type refreshMsg struct{}

// errMsg is sent when an operation fails.
type errMsg struct {
	err error
}

// Backend is what the dashboard needs from the data layer. The runtime
// context satisfies it.
type Backend interface {
	Snapshot() model.Bundle
	SetMode(demo bool) error
}

// SessionInfo describes the session shown in the header.
type SessionInfo interface {
	UserID() string
	UsingDemo() bool
	Mode() string
}

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	snapshot model.Bundle

	// Collaborators
	backend Backend
	sess    SessionInfo
	resetFn func() error

	// UI state
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	// Configuration
	refreshInterval time.Duration
	maxRecent       int
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Backend         Backend
	Session         SessionInfo
	ResetDemo       func() error
	RefreshInterval time.Duration
	MaxRecent       int
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}
	if config.MaxRecent == 0 {
		config.MaxRecent = 5
	}

	return &DashboardModel{
		backend:         config.Backend,
		sess:            config.Session,
		resetFn:         config.ResetDemo,
		refreshInterval: config.RefreshInterval,
		maxRecent:       config.MaxRecent,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.refreshCmd(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()

	case refreshMsg:
		m.snapshot = m.backend.Snapshot()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "m":
		if err := m.backend.SetMode(!m.sess.UsingDemo()); err != nil {
			m.showMessage("mode switched, but preference not saved")
		} else {
			m.showMessage(fmt.Sprintf("switched to %s mode", m.sess.Mode()))
		}
		return m, m.refreshCmd()

	case "r":
		if !m.sess.UsingDemo() || m.resetFn == nil {
			m.showMessage("reset only applies in demo mode")
			return m, nil
		}
		if err := m.resetFn(); err != nil {
			return m, func() tea.Msg { return errMsg{err} }
		}
		m.showMessage("demo data reset")
		return m, m.refreshCmd()
	}

	return m, nil
}

func (m *DashboardModel) showMessage(text string) {
	m.message = text
	m.messageExp = time.Now().Add(3 * time.Second)
}

func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	var b strings.Builder

	b.WriteString(StyleTitle.Render("SkillHub"))
	b.WriteString("\n")
	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.countsView(width))
	b.WriteString("\n\n")
	b.WriteString(m.recentView(width))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleError.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(StyleWarning.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString(StyleHelp.Render("m: toggle demo mode • r: reset demo data • q: quit"))
	return b.String()
}

func (m *DashboardModel) headerView() string {
	user := m.sess.UserID()
	if user == "" {
		user = "guest"
	}

	badge := StyleLive.Render("LIVE")
	if m.sess.UsingDemo() {
		badge = StyleDemo.Render("DEMO")
	}
	return StyleSubtitle.Render("user: "+user+"  mode: ") + badge
}

func (m *DashboardModel) countsView(width int) string {
	counts := fmt.Sprintf("notes %d   tasks %d   events %d",
		len(m.snapshot.Notes), len(m.snapshot.Tasks), len(m.snapshot.Events))
	return StyleBox.Width(width - 4).Render(counts)
}

func (m *DashboardModel) recentView(width int) string {
	var lines []string

	for i, n := range m.snapshot.Notes {
		if i >= m.maxRecent {
			break
		}
		lines = append(lines, StyleRecord.Render(n.Title)+
			StyleSubtitle.Render("  "+output.FormatDate(n.UpdatedAt)))
	}
	for i, t := range m.snapshot.Tasks {
		if i >= m.maxRecent {
			break
		}
		check := "[ ] "
		if t.Completed {
			check = "[x] "
		}
		lines = append(lines, check+StyleRecord.Render(t.Title))
	}

	if len(lines) == 0 {
		lines = append(lines, StyleSubtitle.Render("nothing here yet"))
	}
	return StyleBox.Width(width - 4).Render(strings.Join(lines, "\n"))
}
