// Package cmd implements the wsstrip CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/undrift/wsstrip/internal/config"
	"github.com/undrift/wsstrip/internal/module"
	"github.com/undrift/wsstrip/internal/ui"
	"github.com/undrift/wsstrip/pkg/i3ipc"
	"github.com/undrift/wsstrip/pkg/shell"
)

var (
	version = "dev"
	cfgFile string
	verbose bool
	noColor bool
)

// SetVersion sets the version string (called from main).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wsstrip",
	Short: "i3 workspace strip for status bars",
	Long: `wsstrip renders the i3 workspaces of one monitor as a labeled strip
for polybar-style status bars, and executes the focus/next/prev actions
bound to its click and scroll regions.

Get started:
  wsstrip config init   Write a default configuration
  wsstrip doctor        Check the i3 connection
  wsstrip run           Print the strip, one line per change
  wsstrip watch         Live preview in the terminal`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/wsstrip/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("wsstrip version {{.Version}}\n")
}

func initConfig() {
	if noColor {
		os.Setenv("NO_COLOR", "1")
		color.NoColor = true
	}
	ui.SetVerbose(verbose)
}

// newClient is replaced in tests.
var newClient = func() i3ipc.Client {
	return i3ipc.NewClient(shell.NewRunner())
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newModule loads the configuration and connects a module to i3.
func newModule() (*config.Config, *module.Module, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	m, err := module.New(cfg, newClient())
	if err != nil {
		return nil, nil, err
	}
	return cfg, m, nil
}
