package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/undrift/wsstrip/internal/config"
	"github.com/undrift/wsstrip/internal/ui"
)

var (
	configInitPath  string
	configInitForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  `View and create wsstrip configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Print the configuration after defaults, the config file and WSSTRIP_* environment overrides are merged.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Example: `  wsstrip config init                     # ~/.config/wsstrip/config.yaml
  wsstrip config init --path .wsstrip.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().StringVar(&configInitPath, "path", "", "where to write the file (default is the user config path)")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file without asking")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	source := cfg.ConfigPath()
	if source == "" {
		source = "defaults"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", source, data)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configInitPath
	if path == "" {
		path = config.UserConfigPath()
	}
	if path == "" {
		return fmt.Errorf("could not determine a config path, use --path")
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		overwrite, err := ui.PromptYesNo(fmt.Sprintf("%s exists. Overwrite?", path), false)
		if err != nil {
			return err
		}
		if !overwrite {
			ui.Info("Keeping the existing configuration")
			return nil
		}
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	ui.Successf("Wrote %s", path)
	return nil
}
