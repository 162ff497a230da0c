package i3ipc

import (
	"fmt"
	"sort"
	"strings"
)

// ListWorkspaces fetches the workspaces of output, or of every output
// when output is empty. With showUrgent, urgent workspaces on other
// outputs are kept too.
func ListWorkspaces(c Client, output string, showUrgent bool) ([]Workspace, error) {
	all, err := c.Workspaces()
	if err != nil {
		return nil, err
	}
	return FilterOutput(all, output, showUrgent), nil
}

// FilterOutput keeps the workspaces shown on output, preserving order.
func FilterOutput(all []Workspace, output string, showUrgent bool) []Workspace {
	if output == "" {
		return all
	}
	var result []Workspace
	for _, ws := range all {
		if ws.Output == output || (showUrgent && ws.Urgent) {
			result = append(result, ws)
		}
	}
	return result
}

// SortByNum orders workspaces by their i3 number, keeping the relative
// order of equal numbers.
func SortByNum(ws []Workspace) {
	sort.SliceStable(ws, func(i, j int) bool {
		return ws[i].Num < ws[j].Num
	})
}

// FocusCommand returns the command focusing the workspace called name.
func FocusCommand(name string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(name)
	return fmt.Sprintf("workspace \"%s\"", escaped)
}

// Relative workspace commands.
const (
	CommandNextOnOutput = "workspace next_on_output"
	CommandPrevOnOutput = "workspace prev_on_output"
)
