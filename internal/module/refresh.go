package module

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/undrift/wsstrip/internal/workspace"
	"github.com/undrift/wsstrip/pkg/i3ipc"
)

// Update refreshes the strip and reports whether it succeeded. It does
// nothing when the format has no <label-state>.
func (m *Module) Update() bool {
	if err := m.Refresh(); err != nil {
		m.log.Errorf("%v", err)
		return false
	}
	return true
}

// Refresh fetches the workspaces, classifies and labels them and lays
// them out under the budget. The previous strip stays in place when the
// fetch fails.
func (m *Module) Refresh() error {
	if !m.HasTag(TagLabelState) {
		return nil
	}

	all, err := m.fetch()
	if err != nil {
		return err
	}
	shown := workspace.Layout(all, m.opts.Budget, m.newEllipsis)

	m.mu.Lock()
	m.workspaces = shown
	m.mu.Unlock()
	return nil
}

// fetch returns every labeled workspace in scope, dropping those whose
// label renders empty.
func (m *Module) fetch() ([]*workspace.Workspace, error) {
	output := ""
	if m.opts.PinWorkspaces {
		output = m.opts.Monitor
	}

	raw, err := i3ipc.ListWorkspaces(m.client, output, m.opts.ShowUrgent)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workspaces: %w", err)
	}
	if m.opts.IndexSort {
		i3ipc.SortByNum(raw)
	}

	names := make([]string, len(raw))
	for i, ws := range raw {
		names[i] = ws.Name
	}
	activeGroup := workspace.ActiveGroup(names)

	all := make([]*workspace.Workspace, 0, len(raw))
	for _, ws := range raw {
		sections := workspace.ParseName(ws.Name)
		if sections.GlobalNumber != workspace.MissingNumber && int64(sections.GlobalNumber) != ws.Num {
			m.log.Warningf("Mismatched workspace global number: %d vs %d", ws.Num, sections.GlobalNumber)
		}

		state := workspace.Classify(workspace.Facts{
			Name:    ws.Name,
			Focused: ws.Focused,
			Urgent:  ws.Urgent,
			Visible: ws.Visible,
		}, activeGroup)

		l := m.stateLabels[state].Clone()
		l.ResetTokens()
		l.ReplaceToken("%output%", ws.Output)
		l.ReplaceToken("%name%", m.shownName(ws.Name))
		l.ReplaceToken("%icon%", m.icons.Get(ws.Name, defaultIconKey, m.opts.FuzzyMatch).Text())
		l.ReplaceToken("%index%", strconv.FormatInt(ws.Num, 10))
		l.ReplaceToken("%display_name%", workspace.DisplayName(sections))

		if l.Width() == 0 {
			continue
		}
		all = append(all, &workspace.Workspace{Name: ws.Name, State: state, Label: l})
	}
	return all, nil
}

// shownName is the %name% value: the name without its "N:" prefix when
// strip_wsnumbers is set, trimmed of spaces.
func (m *Module) shownName(name string) string {
	if m.opts.StripWsnumbers {
		if i := strings.Index(name, ":"); i >= 0 {
			name = name[i+1:]
		}
	}
	return strings.Trim(name, " ")
}

func (m *Module) newEllipsis() *workspace.Workspace {
	l := m.stateLabels[workspace.StateEllipsis].Clone()
	l.ResetTokens()
	l.ReplaceToken("%output%", "")
	l.ReplaceToken("%name%", "...")
	l.ReplaceToken("%icon%", "")
	l.ReplaceToken("%index%", "")
	l.ReplaceToken("%display_name%", "")
	return &workspace.Workspace{State: workspace.StateEllipsis, Label: l}
}
