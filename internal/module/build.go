package module

import (
	"github.com/undrift/wsstrip/internal/workspace"
)

// MouseButton identifies the input an action is bound to.
type MouseButton int

// Button numbers as used by polybar action tags.
const (
	ButtonLeft       MouseButton = 1
	ButtonScrollUp   MouseButton = 4
	ButtonScrollDown MouseButton = 5
)

// Builder receives the nodes and actions of a rendered tag. Actions nest:
// every OpenAction is matched by a CloseAction.
type Builder interface {
	Node(text string, state workspace.State)
	OpenAction(button MouseButton, action, data string)
	CloseAction()
}

// Build emits tag onto b and reports whether anything was emitted. The
// mode label is emitted only while a non-default mode is active, the
// state strip only when it is non-empty. Unknown tags yield false.
func (m *Module) Build(b Builder, tag string) bool {
	switch tag {
	case TagLabelMode:
		mode := m.Mode()
		if mode == nil {
			return false
		}
		b.Node(mode.Text(), workspace.StateNone)
		return true

	case TagLabelState:
		shown := m.Workspaces()
		if len(shown) == 0 {
			return false
		}
		m.buildState(b, shown)
		return true

	default:
		return false
	}
}

func (m *Module) buildState(b Builder, shown []*workspace.Workspace) {
	if m.opts.EnableScroll {
		down, up := ActionPrev, ActionNext
		if m.opts.ReverseScroll {
			down, up = ActionNext, ActionPrev
		}
		b.OpenAction(ButtonScrollDown, down, "")
		b.OpenAction(ButtonScrollUp, up, "")
	}

	for i, ws := range shown {
		if i > 0 && !m.separator.Empty() {
			b.Node(m.separator.Text(), workspace.StateNone)
		}

		if m.opts.EnableClick && ws.Addressable() {
			b.OpenAction(ButtonLeft, ActionFocus, ws.Name)
			b.Node(ws.Label.Text(), ws.State)
			b.CloseAction()
		} else {
			b.Node(ws.Label.Text(), ws.State)
		}
	}

	if m.opts.EnableScroll {
		b.CloseAction()
		b.CloseAction()
	}
}
