package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/undrift/wsstrip/internal/config"
	"github.com/undrift/wsstrip/internal/ui"
	"github.com/undrift/wsstrip/pkg/i3ipc"
	"github.com/undrift/wsstrip/pkg/shell"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the i3 connection and configuration",
	Long: `Check that wsstrip can reach i3 and that the configuration loads.

This command verifies:
  - The i3 binary and its version
  - The IPC socket location
  - A workspace query over IPC
  - Configuration file presence, validity and deprecated keys`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type checkResult struct {
	name    string
	status  string // "ok", "warning", "error"
	message string
	version string
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ui.Header("wsstrip doctor")

	ui.SubHeader("System Information")
	ui.KeyValue("OS", runtime.GOOS)
	ui.KeyValue("Arch", runtime.GOARCH)
	ui.KeyValue("wsstrip", version)
	ui.NewLine()

	client := newClient()

	ui.SubHeader("Window Manager")
	results := []checkResult{
		checkI3Binary(),
		checkSocket(client),
	}
	hasErrors := false
	for _, r := range results {
		printCheckResult(r)
		if r.status == "error" {
			hasErrors = true
		}
	}
	ui.NewLine()

	if !hasErrors {
		ui.SubHeader("IPC")
		count := 0
		err := ui.WithSpinnerResult("Querying workspaces", func() error {
			ws, err := client.Workspaces()
			count = len(ws)
			return err
		})
		if err != nil {
			hasErrors = true
		} else {
			ui.KeyValue("Workspaces", strconv.Itoa(count))
		}
		ui.NewLine()
	}

	ui.SubHeader("Configuration")
	if !checkConfig() {
		hasErrors = true
	}
	ui.NewLine()

	if hasErrors {
		ui.Error("Some checks failed.")
		return fmt.Errorf("doctor checks failed")
	}

	ui.Success("All checks passed!")
	return nil
}

func checkI3Binary() checkResult {
	path := shell.Which("i3")
	if path == "" {
		return checkResult{
			name:    "i3",
			status:  "warning",
			message: "Not in PATH (fine when I3SOCK or SWAYSOCK is set)",
		}
	}

	result, err := shell.Run(path, "--version")
	if err != nil || !result.OK() {
		return checkResult{
			name:    "i3",
			status:  "warning",
			message: fmt.Sprintf("Found at %s but --version failed", path),
		}
	}

	return checkResult{
		name:    "i3",
		status:  "ok",
		version: parseI3Version(result.Stdout),
		message: fmt.Sprintf("Found at %s", path),
	}
}

// parseI3Version extracts "4.22" from "i3 version 4.22 (2023-01-02) © ...".
func parseI3Version(out string) string {
	fields := strings.Fields(out)
	if len(fields) >= 3 && fields[1] == "version" {
		return fields[2]
	}
	return strings.TrimSpace(out)
}

func checkSocket(client i3ipc.Client) checkResult {
	path, err := client.SocketPath()
	if err != nil {
		return checkResult{
			name:    "socket",
			status:  "error",
			message: err.Error(),
		}
	}
	if path == "" {
		return checkResult{
			name:    "socket",
			status:  "error",
			message: "i3 reported an empty socket path",
		}
	}
	if _, err := os.Stat(path); err != nil {
		return checkResult{
			name:    "socket",
			status:  "error",
			message: fmt.Sprintf("%s does not exist", path),
		}
	}
	return checkResult{
		name:    "socket",
		status:  "ok",
		message: path,
	}
}

func printCheckResult(r checkResult) {
	switch r.status {
	case "ok":
		version := ""
		if r.version != "" {
			version = ui.Dim(fmt.Sprintf(" (%s)", r.version))
		}
		ui.Success(fmt.Sprintf("%s%s", r.name, version))
		if r.message != "" {
			ui.Info(fmt.Sprintf("  %s", r.message))
		}
	case "warning":
		ui.Warning(fmt.Sprintf("%s - %s", r.name, r.message))
	case "error":
		ui.Error(fmt.Sprintf("%s - %s", r.name, r.message))
	}
}

// checkConfig reports where the configuration comes from and returns
// false when it fails to load.
func checkConfig() bool {
	cfg, err := loadConfig()
	if err != nil {
		ui.Error(err.Error())
		return false
	}

	if path := cfg.ConfigPath(); path != "" {
		ui.Success(fmt.Sprintf("Loaded %s", path))
	} else {
		_, findErr := config.FindConfigFile()
		if errors.Is(findErr, config.ErrNotFound) {
			ui.Warning("No config file found (using defaults)")
			ui.Info("  Run 'wsstrip config init' to create one")
		}
	}

	ui.KeyValue("Monitor", valueOr(cfg.Bar.Monitor, "(any)"))
	ui.KeyValue("Format", cfg.Module.Format)
	ui.KeyValue("Max count", limitString(cfg.Module.WorkspacesMaxCount))
	ui.KeyValue("Max width", limitString(cfg.Module.WorkspacesMaxWidth))

	for _, warning := range cfg.Deprecations() {
		ui.Warning(warning)
	}
	return true
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func limitString(n int) string {
	if n < 0 {
		return "unlimited"
	}
	return strconv.Itoa(n)
}
