package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/undrift/wsstrip/internal/ui"
	"github.com/undrift/wsstrip/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live preview of the strip in the terminal",
	Long: `Interactive TUI showing the strip as the bar renders it, redrawn on every
i3 event, with the laid out workspaces listed below.

Keys: h/l previous/next, j/k move, enter focus, r refresh, q quit.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, m, err := newModule()
	if err != nil {
		return err
	}
	defer m.Stop()

	// Log lines would tear the alt screen.
	ui.SetOutput(io.Discard)
	defer ui.SetOutput(nil)

	p := tea.NewProgram(watch.NewModel(m, cfg.Module.Format), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("watch error: %w", err)
	}
	return nil
}
