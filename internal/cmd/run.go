package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/undrift/wsstrip/internal/module"
	"github.com/undrift/wsstrip/internal/render"
	"github.com/undrift/wsstrip/internal/ui"
)

var (
	runLogFile string
	runOnce    bool
)

// Backoff between reconnect attempts while the event connection is down.
var (
	reconnectBaseDelay = time.Second
	reconnectMaxDelay  = 30 * time.Second
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Print the workspace strip for the bar",
	Long: `Connect to i3 and print the rendered strip to stdout, one line each
time it changes. Click and scroll regions are emitted as polybar action
tags invoking this binary.

Log lines go to stderr, or to a rotated file with --log-file.`,
	Example: `  # polybar
  [module/wsstrip]
  type = custom/script
  exec = wsstrip run
  tail = true`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runLogFile, "log-file", "", "write logs to a rotated file instead of stderr")
	runCmd.Flags().BoolVar(&runOnce, "once", false, "print the strip once and exit")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// stdout belongs to the bar.
	logFile := cfg.Log.File
	if runLogFile != "" {
		logFile = runLogFile
	}
	if logFile != "" {
		logger := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
		}
		ui.SetOutput(logger)
		defer logger.Close()
	} else {
		ui.SetOutput(os.Stderr)
	}
	defer ui.SetOutput(nil)

	_, m, err := newModule()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runLoop(ctx, m, lineEmitter{
		w:       cmd.OutOrStdout(),
		format:  cfg.Module.Format,
		command: cfg.Output.Command,
	}, runOnce)
}

// lineEmitter prints the rendered strip when it differs from the last
// printed line.
type lineEmitter struct {
	w       io.Writer
	format  string
	command string
	last    string
	printed bool
}

func (e *lineEmitter) emit(src render.Source) error {
	line := render.Line(render.NewPolybar(e.command), e.format, src)
	if e.printed && line == e.last {
		return nil
	}
	if _, err := fmt.Fprintln(e.w, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	e.last = line
	e.printed = true
	return nil
}

// runLoop prints the strip, then redraws after every event until ctx is
// done. The module is stopped on return.
func runLoop(ctx context.Context, m *module.Module, out lineEmitter, once bool) error {
	defer m.Stop()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			// Unblocks a pending Poll.
			m.Stop()
		case <-done:
		}
	}()

	m.Update()
	if err := out.emit(m); err != nil {
		return err
	}
	if once {
		return nil
	}

	var delay time.Duration
	for ctx.Err() == nil {
		result := m.Poll()
		if ctx.Err() != nil {
			break
		}

		switch {
		case result.HasEvent:
			delay = 0
		case m.ConnState() == module.Connected:
			// Reconnected; workspaces may have changed meanwhile.
			delay = 0
		default:
			delay = advanceBackoff(delay)
			ui.Debugf("Retrying connection in %s", delay)
			if !sleepContext(ctx, delay) {
				return nil
			}
			continue
		}

		m.Update()
		if err := out.emit(m); err != nil {
			return err
		}
	}
	return nil
}

// advanceBackoff doubles the delay up to reconnectMaxDelay, starting at
// reconnectBaseDelay.
func advanceBackoff(current time.Duration) time.Duration {
	if current <= 0 {
		return reconnectBaseDelay
	}
	next := current * 2
	if next > reconnectMaxDelay {
		next = reconnectMaxDelay
	}
	return next
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
