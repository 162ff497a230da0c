package cmd

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/undrift/wsstrip/internal/ui"
	"github.com/undrift/wsstrip/internal/workspace"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the workspaces of the strip",
	Long:    `Show the strip as the bar would lay it out: one row per entry with its state, width and rendered label.`,
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, m, err := newModule()
	if err != nil {
		return err
	}
	defer m.Stop()

	if err := m.Refresh(); err != nil {
		return err
	}

	shown := m.Workspaces()
	if len(shown) == 0 {
		ui.Info("No workspaces to show")
		return nil
	}

	table := ui.NewTable(cmd.OutOrStdout(), []string{"WORKSPACE", "STATE", "WIDTH", "LABEL"})
	for _, ws := range shown {
		row, colors := listRow(ws)
		table.AddColoredRow(row, colors)
	}
	table.Render()
	return nil
}

func listRow(ws *workspace.Workspace) ([]string, []tablewriter.Colors) {
	name := ws.Name
	if ws.IsEllipsis() {
		name = "-"
	}
	state := ws.State.String()

	row := []string{name, state, strconv.Itoa(ws.Width()), ws.Label.Text()}
	colors := []tablewriter.Colors{
		ui.TableColor.Normal,
		ui.StateTableColor(state),
		ui.TableColor.Dim,
		ui.TableColor.Normal,
	}
	return row, colors
}
