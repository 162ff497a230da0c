package shell

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestRun_EchoCommand(t *testing.T) {
	result, err := Run("echo", "hello world")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stdout != "hello world" {
		t.Errorf("Run() stdout = %q, want %q", result.Stdout, "hello world")
	}
	if !result.OK() {
		t.Errorf("Run() exitCode = %d, want 0", result.ExitCode)
	}
}

func TestRun_NonExistentCommand(t *testing.T) {
	result, err := Run("this-command-does-not-exist-12345")
	if err == nil {
		t.Error("Run() expected error for non-existent command")
	}

	if result.ExitCode != -1 {
		t.Errorf("Run() exitCode = %d, want -1 for non-existent command", result.ExitCode)
	}
	if result.OK() {
		t.Error("Result.OK() = true for a command that never ran")
	}
}

func TestRun_CommandWithExitCode(t *testing.T) {
	result, err := Run("sh", "-c", "echo out; echo err >&2; exit 42")
	if err != nil {
		t.Fatalf("Run() error = %v, want nil (exit codes are not errors)", err)
	}

	if result.Stdout != "out" || result.Stderr != "err" {
		t.Errorf("Run() = (%q, %q), want (%q, %q)", result.Stdout, result.Stderr, "out", "err")
	}
	if result.ExitCode != 42 {
		t.Errorf("Run() exitCode = %d, want 42", result.ExitCode)
	}
}

func TestRunWithTimeout_TimesOut(t *testing.T) {
	result, err := RunWithTimeout(100*time.Millisecond, "sleep", "10")

	if err == nil && result.OK() {
		t.Error("RunWithTimeout() expected non-zero exit or error for timed out command")
	}
}

func TestDefaultRunner_WithCancelledContext(t *testing.T) {
	runner := NewRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := runner.Run(ctx, "sleep", "10"); err == nil {
		t.Error("DefaultRunner.Run() with cancelled context should return error")
	}
}

func TestCommandExists(t *testing.T) {
	if !CommandExists("echo") {
		t.Error("CommandExists(echo) = false, want true")
	}
	if CommandExists("this-command-definitely-does-not-exist-xyz") {
		t.Error("CommandExists(nonexistent) = true, want false")
	}
}

func TestWhich(t *testing.T) {
	if path := Which("echo"); !filepath.IsAbs(path) {
		t.Errorf("Which(echo) = %q, want absolute path", path)
	}
	if path := Which("this-command-definitely-does-not-exist-xyz"); path != "" {
		t.Errorf("Which(nonexistent) = %q, want empty", path)
	}
}
