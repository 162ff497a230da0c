package workspace

// Unlimited disables a Budget limit.
const Unlimited = -1

// Budget limits the displayed strip. Negative fields are unlimited.
type Budget struct {
	MaxCount int
	MaxWidth int
}

// NoBudget returns a budget that never truncates.
func NoBudget() Budget {
	return Budget{MaxCount: Unlimited, MaxWidth: Unlimited}
}

// Layout picks the workspaces to display from all, in order, and inserts
// ellipsis entries (created by newEllipsis) where workspaces are hidden.
//
// When everything fits, all is returned as is. Otherwise the focused
// workspace is the anchor: it is counted first, then workspaces are taken
// from the start of the list while they fit, and the focused one is
// appended after an ellipsis if the prefix did not reach it. A trailing
// ellipsis marks workspaces hidden after the last one shown. Width for
// two ellipses is reserved up front, so the summed width never exceeds
// MaxWidth. Ellipsis entries do not count towards MaxCount.
func Layout(all []*Workspace, b Budget, newEllipsis func() *Workspace) []*Workspace {
	maxShown := len(all)
	if b.MaxCount >= 0 && b.MaxCount < maxShown {
		maxShown = b.MaxCount
	}
	if maxShown >= len(all) && numFitting(all, b.MaxWidth) == len(all) {
		return all
	}

	ellipsis := newEllipsis()
	ellipsisWidth := ellipsis.Width()

	count := 0
	width := 2 * ellipsisWidth
	fits := func(ws *Workspace) bool {
		if count+1 > maxShown {
			return false
		}
		w := ws.Width()
		if b.MaxWidth >= 0 && width+w > b.MaxWidth {
			return false
		}
		count++
		width += w
		return true
	}

	focused := -1
	for i, ws := range all {
		if ws.State == StateFocused {
			focused = i
			break
		}
	}

	if focused < 0 || !fits(all[focused]) {
		if b.MaxWidth >= 0 && ellipsisWidth > b.MaxWidth {
			return nil
		}
		return []*Workspace{ellipsis}
	}

	shown := make([]*Workspace, 0, maxShown+2)
	prefix := 0
	for i, ws := range all {
		if i != focused && !fits(ws) {
			break
		}
		shown = append(shown, ws)
		prefix = i + 1
	}

	if focused < prefix {
		// Not everything fit, so something after the prefix is hidden.
		return append(shown, ellipsis)
	}

	shown = append(shown, ellipsis, all[focused])
	if focused < len(all)-1 {
		shown = append(shown, newEllipsis())
	}
	return shown
}

// numFitting returns how many workspaces, from the start, fit in maxWidth.
func numFitting(all []*Workspace, maxWidth int) int {
	if maxWidth < 0 {
		return len(all)
	}
	total := 0
	for i, ws := range all {
		w := ws.Width()
		if total+w > maxWidth {
			return i
		}
		total += w
	}
	return len(all)
}

// TotalWidth returns the summed label width of a strip.
func TotalWidth(shown []*Workspace) int {
	total := 0
	for _, ws := range shown {
		total += ws.Width()
	}
	return total
}
