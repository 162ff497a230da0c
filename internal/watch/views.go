package watch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/undrift/wsstrip/internal/render"
)

// renderHeader renders the title bar with connection stats.
func (m Model) renderHeader() string {
	s := m.styles

	title := s.HeaderTitle.Render("WSSTRIP WATCH")
	stats := s.HeaderStat.Render(fmt.Sprintf(
		"  %d shown  |  %s  |  %d events",
		len(m.workspaces), m.strip.ConnState(), m.events,
	))

	return lipgloss.JoinHorizontal(lipgloss.Center, title, stats)
}

// renderStrip renders the format the way the bar shows it.
func (m Model) renderStrip() string {
	return render.Line(NewBuilder(m.styles), m.format, m.strip)
}

// renderStripBox frames the rendered strip.
func (m Model) renderStripBox() string {
	s := m.styles

	line := m.line
	if line == "" {
		line = s.DimText.Render("(empty)")
	}
	if !m.refreshOK {
		line += "  " + s.ErrorText.Render("refresh failed, showing last strip")
	}
	return s.Strip.Width(max(0, m.width-2)).Render(line)
}

// renderList renders one row per displayed entry.
func (m Model) renderList() string {
	s := m.styles

	if len(m.workspaces) == 0 {
		return s.EmptyState.Render("No workspaces to show")
	}

	rows := make([]string, 0, len(m.workspaces))
	for i, ws := range m.workspaces {
		marker := " "
		if i == m.cursor {
			marker = "*"
		}
		name := ws.Name
		if name == "" {
			name = "-"
		}
		row := fmt.Sprintf("%s %-20s %-15s %s",
			marker, name, s.State(ws.State).Render(ws.State.String()), ws.Label.Text())

		if i == m.cursor {
			rows = append(rows, s.SelectedRow.Width(m.width).Render(row))
		} else {
			rows = append(rows, s.Row.Render(row))
		}
	}
	return strings.Join(rows, "\n")
}

// renderFooter renders the keybinding help bar and the last action error.
func (m Model) renderFooter() string {
	s := m.styles

	var bindings []string
	for _, b := range m.keys.ShortHelp() {
		bindings = append(bindings, s.FooterKey.Render(b.Help().Key)+" "+s.FooterDesc.Render(b.Help().Desc))
	}

	divider := s.DimText.Render(strings.Repeat("─", m.width))
	footer := divider + "\n" + s.Footer.Render(strings.Join(bindings, "  "))
	if m.lastErr != nil {
		footer += "\n" + s.ErrorText.Render(m.lastErr.Error())
	}
	return footer
}

// listHeight returns the rows left for the list pane.
func (m Model) listHeight() int {
	return m.height - 7 // header, strip box, footer
}
