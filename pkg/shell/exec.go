// Package shell runs external programs such as the window manager binary.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Result holds the output and exit code of a command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// OK reports whether the command ran and exited with status 0.
func (r *Result) OK() bool {
	return r != nil && r.ExitCode == 0
}

// Runner executes commands. Tests substitute their own implementation.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

// DefaultRunner implements Runner with os/exec.
type DefaultRunner struct{}

// NewRunner creates a new DefaultRunner.
func NewRunner() Runner {
	return &DefaultRunner{}
}

// Run executes a command, honouring ctx cancellation.
func (r *DefaultRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	return runCmd(ctx, name, args...)
}

// runCmd executes a command and captures its output. A non-zero exit is
// reported through Result.ExitCode, not as an error.
func runCmd(ctx context.Context, name string, args ...string) (*Result, error) {
	start := time.Now()
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &Result{
		Stdout:   strings.TrimSpace(stdout.String()),
		Stderr:   strings.TrimSpace(stderr.String()),
		Duration: time.Since(start),
	}

	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	result.ExitCode = -1
	return result, fmt.Errorf("failed to execute '%s': %w", name, err)
}

// Run executes a command with a background context.
func Run(name string, args ...string) (*Result, error) {
	return runCmd(context.Background(), name, args...)
}

// RunWithTimeout runs a command, killing it after timeout.
func RunWithTimeout(timeout time.Duration, name string, args ...string) (*Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return runCmd(ctx, name, args...)
}

// CommandExists checks if a command is available in PATH.
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Which returns the full path to a command, or empty string if not found.
func Which(name string) string {
	path, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	return path
}
