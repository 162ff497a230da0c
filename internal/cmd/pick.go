package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/undrift/wsstrip/internal/ui"
	"github.com/undrift/wsstrip/internal/workspace"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a workspace of the strip interactively and focus it",
	Args:  cobra.NoArgs,
	RunE:  runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	_, m, err := newModule()
	if err != nil {
		return err
	}
	defer m.Stop()

	if err := m.Refresh(); err != nil {
		return err
	}

	items, cursor := pickItems(m.Workspaces())
	if len(items) == 0 {
		return errors.New("no workspaces to pick from")
	}

	idx, err := ui.PromptSelectDetailed("Focus workspace", items, cursor)
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		return fmt.Errorf("selection failed: %w", err)
	}

	return m.Focus(items[idx].Name)
}

// pickItems lists the addressable entries of shown and the index of the
// focused one.
func pickItems(shown []*workspace.Workspace) ([]ui.SelectItem, int) {
	var items []ui.SelectItem
	cursor := 0
	for _, ws := range shown {
		if !ws.Addressable() {
			continue
		}
		if ws.State == workspace.StateFocused {
			cursor = len(items)
		}
		items = append(items, ui.SelectItem{
			Name:        ws.Name,
			Description: ws.State.String(),
		})
	}
	return items, cursor
}
