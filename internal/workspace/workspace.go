// Package workspace holds the window-manager independent core of the
// workspace strip: name parsing, state classification and layout.
package workspace

import "github.com/undrift/wsstrip/internal/label"

// State is the display state of a workspace.
type State int

const (
	StateNone          State = iota
	StateFocused             // active workspace on the bar's output
	StateUnfocused           // inactive workspace in the active group
	StateVisible             // active workspace on another output
	StateUrgent              // urgency hint set
	StateInactiveGroup       // workspace in a group other than the active one
	StateEllipsis            // placeholder for hidden workspaces
)

// States lists every state that has a configurable label.
var States = []State{
	StateFocused,
	StateUnfocused,
	StateVisible,
	StateUrgent,
	StateInactiveGroup,
	StateEllipsis,
}

// String returns the configuration name of a state.
func (s State) String() string {
	switch s {
	case StateFocused:
		return "focused"
	case StateUnfocused:
		return "unfocused"
	case StateVisible:
		return "visible"
	case StateUrgent:
		return "urgent"
	case StateInactiveGroup:
		return "inactive_group"
	case StateEllipsis:
		return "ellipsis"
	default:
		return "none"
	}
}

// Workspace is one entry of the displayed strip.
type Workspace struct {
	Name  string // window manager id; empty for ellipsis entries
	State State
	Label *label.Label
}

// Width returns the display width of the workspace label.
func (w *Workspace) Width() int {
	return w.Label.Width()
}

// IsEllipsis reports whether w is a synthetic placeholder.
func (w *Workspace) IsEllipsis() bool {
	return w.State == StateEllipsis
}

// Addressable reports whether navigation may target w.
func (w *Workspace) Addressable() bool {
	return !w.IsEllipsis() && w.Name != ""
}
