package workspace

// Facts are the window manager's raw flags for a workspace.
type Facts struct {
	Name    string
	Focused bool
	Urgent  bool
	Visible bool
}

// ActiveGroup returns the group of the first workspace name, which is the
// group every other workspace is compared against.
func ActiveGroup(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return ParseName(names[0]).Group
}

// Classify assigns a display state. Priority, first match wins:
// focused, urgent, other group, visible, unfocused.
func Classify(f Facts, activeGroup string) State {
	switch {
	case f.Focused:
		return StateFocused
	case f.Urgent:
		return StateUrgent
	case ParseName(f.Name).Group != activeGroup:
		return StateInactiveGroup
	case f.Visible:
		return StateVisible
	default:
		return StateUnfocused
	}
}
