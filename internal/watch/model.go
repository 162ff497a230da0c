// Package watch is a live terminal preview of the workspace strip.
package watch

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/undrift/wsstrip/internal/module"
	"github.com/undrift/wsstrip/internal/workspace"
)

const retryInterval = time.Second

// Strip is the part of module.Module the preview drives.
type Strip interface {
	Poll() module.PollResult
	Update() bool
	Workspaces() []*workspace.Workspace
	Build(b module.Builder, tag string) bool
	ConnState() module.ConnState
	Focus(name string) error
	Next() error
	Prev() error
}

// Messages for the bubbletea event loop.
type (
	pollMsg        struct{ result module.PollResult }
	retryMsg       struct{}
	refreshDoneMsg struct{ ok bool }
	actionDoneMsg  struct{ err error }
)

// Model is the bubbletea model for the preview.
type Model struct {
	strip      Strip
	format     string
	keys       KeyMap
	styles     Styles
	list       viewport.Model
	workspaces []*workspace.Workspace
	line       string
	cursor     int
	events     int
	lastErr    error
	refreshOK  bool
	width      int
	height     int
	refreshing bool // guards against overlapping refreshes
	pending    bool // an event arrived during a refresh
}

// NewModel creates a preview of strip rendered with format.
func NewModel(strip Strip, format string) Model {
	return Model{
		strip:      strip,
		format:     format,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		list:       viewport.New(0, 0),
		refreshOK:  true,
		refreshing: true,
	}
}

// Init starts the first refresh and the event poll.
func (m Model) Init() tea.Cmd {
	return tea.Batch(refreshCmd(m.strip), pollCmd(m.strip))
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.Width = msg.Width
		m.list.Height = max(1, m.listHeight())
		m.syncList()
		return m, nil

	case pollMsg:
		if !msg.result.HasEvent {
			// Disconnected or between reconnect attempts.
			return m, tea.Tick(retryInterval, func(time.Time) tea.Msg { return retryMsg{} })
		}
		m.events++
		if m.refreshing {
			m.pending = true
			return m, pollCmd(m.strip)
		}
		m.refreshing = true
		return m, tea.Batch(refreshCmd(m.strip), pollCmd(m.strip))

	case retryMsg:
		return m, pollCmd(m.strip)

	case refreshDoneMsg:
		m.refreshOK = msg.ok
		m.workspaces = m.strip.Workspaces()
		m.line = m.renderStrip()
		if m.cursor >= len(m.workspaces) {
			m.cursor = max(0, len(m.workspaces)-1)
		}
		m.syncList()
		if m.pending {
			m.pending = false
			return m, refreshCmd(m.strip)
		}
		m.refreshing = false
		return m, nil

	case actionDoneMsg:
		m.lastErr = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Prev):
		return m, actionCmd(m.strip.Prev)

	case key.Matches(msg, m.keys.Next):
		return m, actionCmd(m.strip.Next)

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.workspaces)-1 {
			m.cursor++
			m.syncList()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.syncList()
		}
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if selected := m.selected(); selected != nil && selected.Addressable() {
			name := selected.Name
			return m, actionCmd(func() error { return m.strip.Focus(name) })
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, refreshCmd(m.strip)
	}

	return m, nil
}

// View renders the preview.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderStripBox(),
		m.list.View(),
		m.renderFooter(),
	)
}

// selected returns the workspace under the cursor, or nil.
func (m Model) selected() *workspace.Workspace {
	if m.cursor < 0 || m.cursor >= len(m.workspaces) {
		return nil
	}
	return m.workspaces[m.cursor]
}

// syncList refreshes the list pane and keeps the cursor row in view.
func (m *Model) syncList() {
	m.list.SetContent(m.renderList())
	if m.list.Height <= 0 {
		return
	}
	if m.cursor < m.list.YOffset {
		m.list.SetYOffset(m.cursor)
	} else if m.cursor >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(m.cursor - m.list.Height + 1)
	}
}

// Commands

func pollCmd(strip Strip) tea.Cmd {
	return func() tea.Msg {
		return pollMsg{result: strip.Poll()}
	}
}

func refreshCmd(strip Strip) tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{ok: strip.Update()}
	}
}

func actionCmd(fn func() error) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: fn()}
	}
}
