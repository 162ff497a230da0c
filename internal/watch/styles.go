package watch

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/undrift/wsstrip/internal/module"
	"github.com/undrift/wsstrip/internal/workspace"
)

// Colors follow the ui package palette.
const (
	colorCyan   = lipgloss.Color("#00BCD4")
	colorGreen  = lipgloss.Color("#4CAF50")
	colorYellow = lipgloss.Color("#FFC107")
	colorRed    = lipgloss.Color("#F44336")
	colorDim    = lipgloss.Color("#666666")
	colorWhite  = lipgloss.Color("#FFFFFF")
	colorSelect = lipgloss.Color("#16213e")
)

// Styles holds all lipgloss styles for the preview.
type Styles struct {
	HeaderTitle lipgloss.Style
	HeaderStat  lipgloss.Style
	Strip       lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	DimText     lipgloss.Style
	ErrorText   lipgloss.Style
	Footer      lipgloss.Style
	FooterKey   lipgloss.Style
	FooterDesc  lipgloss.Style
	EmptyState  lipgloss.Style

	// States style strip entries by workspace state.
	States map[workspace.State]lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		HeaderTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan),
		HeaderStat: lipgloss.NewStyle().
			Foreground(colorDim),
		Strip: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1),
		Row: lipgloss.NewStyle().
			Padding(0, 1),
		SelectedRow: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(colorWhite).
			Background(colorSelect),
		DimText: lipgloss.NewStyle().
			Foreground(colorDim),
		ErrorText: lipgloss.NewStyle().
			Foreground(colorRed),
		Footer: lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1),
		FooterKey: lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true),
		FooterDesc: lipgloss.NewStyle().
			Foreground(colorDim),
		EmptyState: lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(1, 0),
		States: map[workspace.State]lipgloss.Style{
			workspace.StateFocused:       lipgloss.NewStyle().Bold(true).Foreground(colorGreen).Underline(true),
			workspace.StateUnfocused:     lipgloss.NewStyle(),
			workspace.StateVisible:       lipgloss.NewStyle().Foreground(colorCyan),
			workspace.StateUrgent:        lipgloss.NewStyle().Bold(true).Foreground(colorRed),
			workspace.StateInactiveGroup: lipgloss.NewStyle().Foreground(colorDim),
			workspace.StateEllipsis:      lipgloss.NewStyle().Foreground(colorDim),
			workspace.StateNone:          lipgloss.NewStyle().Foreground(colorYellow),
		},
	}
}

// State returns the style for a workspace state.
func (s Styles) State(state workspace.State) lipgloss.Style {
	if style, ok := s.States[state]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Builder renders a tag as styled terminal text. Actions have no
// terminal representation and are dropped.
type Builder struct {
	styles Styles
	sb     strings.Builder
}

// NewBuilder creates a builder using styles.
func NewBuilder(styles Styles) *Builder {
	return &Builder{styles: styles}
}

func (b *Builder) Node(text string, state workspace.State) {
	b.sb.WriteString(b.styles.State(state).Render(text))
}

func (b *Builder) OpenAction(module.MouseButton, string, string) {}

func (b *Builder) CloseAction() {}

func (b *Builder) String() string {
	return b.sb.String()
}
