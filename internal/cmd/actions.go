package cmd

import (
	"github.com/spf13/cobra"

	"github.com/undrift/wsstrip/internal/module"
)

var focusCmd = &cobra.Command{
	Use:   "focus <workspace>",
	Short: "Focus a workspace by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(module.ActionFocus, args[0])
	},
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Focus the next workspace on the bar's monitor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(module.ActionNext, "")
	},
}

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Focus the previous workspace on the bar's monitor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(module.ActionPrev, "")
	},
}

func init() {
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
}

// runAction executes one bar action, as bound to the strip's click and
// scroll regions, over its own short-lived connection.
func runAction(action, data string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := module.NewCommander(cfg, newClient())
	if err != nil {
		return err
	}
	defer c.Close()

	return c.Dispatch(action, data)
}
