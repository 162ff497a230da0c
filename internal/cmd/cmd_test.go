package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/undrift/wsstrip/internal/config"
	"github.com/undrift/wsstrip/internal/module"
	"github.com/undrift/wsstrip/internal/ui"
	"github.com/undrift/wsstrip/pkg/i3ipc"
	"github.com/undrift/wsstrip/pkg/i3ipc/i3ipctest"
)

func TestMain(m *testing.M) {
	ui.SetOutput(io.Discard)
	os.Exit(m.Run())
}

const testConfigYAML = `bar:
  monitor: DP-1
module:
  enable_click: false
  enable_scroll: false
labels:
  focused: "%name%"
  unfocused: "%name%"
  visible: "%name%"
  urgent: "%name%"
  inactive_group: "%name%"
  ellipsis: "%name%"
  separator: " "
`

func socketFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ipc.sock")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatalf("failed to create socket placeholder: %v", err)
	}
	return path
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func barWorkspaces() []i3ipc.Workspace {
	return []i3ipc.Workspace{
		{Name: "1:web", Num: 1, Output: "DP-1", Visible: true, Focused: true},
		{Name: "2:mail", Num: 2, Output: "DP-1", Urgent: true},
	}
}

// useClient makes every command talk to client.
func useClient(t *testing.T, client i3ipc.Client) {
	t.Helper()
	prev := newClient
	newClient = func() i3ipc.Client { return client }
	t.Cleanup(func() { newClient = prev })
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		cfgFile = ""
		configInitPath, configInitForce = "", false
		ui.SetOutput(io.Discard)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

// newTestModule connects a module for the test configuration to fake.
func newTestModule(t *testing.T, fake i3ipc.Client) *module.Module {
	t.Helper()
	cfg, err := config.LoadFromPath(writeConfig(t, testConfigYAML))
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	m, err := module.New(cfg, fake)
	if err != nil {
		t.Fatalf("module.New() error = %v", err)
	}
	return m
}

func TestFocusNextPrev(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "focus by name",
			args: []string{"focus", `2:"mail"`},
			want: []string{`workspace "2:\"mail\""`},
		},
		{
			name: "next",
			args: []string{"next"},
			want: []string{"workspace next_on_output"},
		},
		{
			name: "prev wraps at the first workspace",
			args: []string{"prev"},
			want: []string{"workspace prev_on_output"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &i3ipctest.Fake{Path: socketFile(t), WorkspaceList: barWorkspaces()}
			useClient(t, fake)

			args := append([]string{"--config", writeConfig(t, testConfigYAML)}, tt.args...)
			if _, err := execute(t, args...); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			got := fake.SentCommands()
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("commands = %q, want %q", got, tt.want)
			}
			if !fake.Closed {
				t.Error("client was not closed")
			}
			if fake.Subscribes != 0 {
				t.Errorf("Subscribes = %d, want 0 for a single action", fake.Subscribes)
			}
		})
	}
}

func TestAction_SkipsDeprecationWarnings(t *testing.T) {
	useClient(t, &i3ipctest.Fake{Path: socketFile(t), WorkspaceList: barWorkspaces()})
	var log bytes.Buffer
	ui.SetOutput(&log)

	cfg := strings.Replace(testConfigYAML, "module:\n", "module:\n  wsname_maxlen: 8\n", 1)
	if _, err := execute(t, "--config", writeConfig(t, cfg), "next"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Contains(log.String(), "deprecated") {
		t.Errorf("action logged deprecation warnings:\n%s", log.String())
	}
}

func TestFocus_RequiresName(t *testing.T) {
	useClient(t, &i3ipctest.Fake{Path: socketFile(t)})
	if _, err := execute(t, "--config", writeConfig(t, testConfigYAML), "focus"); err == nil {
		t.Error("focus without a workspace succeeded")
	}
}

func TestAction_SocketMissing(t *testing.T) {
	useClient(t, &i3ipctest.Fake{Path: "/nonexistent/ipc.sock"})
	_, err := execute(t, "--config", writeConfig(t, testConfigYAML), "next")
	if err == nil || !strings.Contains(err.Error(), "could not find socket") {
		t.Errorf("Execute() error = %v, want socket not found", err)
	}
}

func TestList(t *testing.T) {
	useClient(t, &i3ipctest.Fake{Path: socketFile(t), WorkspaceList: barWorkspaces()})

	out, err := execute(t, "--config", writeConfig(t, testConfigYAML), "list")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"WORKSPACE", "1:web", "focused", "2:mail", "urgent"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShow(t *testing.T) {
	path := writeConfig(t, testConfigYAML)
	out, err := execute(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "# source: "+path) {
		t.Errorf("config show output starts with %q, want the source path", strings.SplitN(out, "\n", 2)[0])
	}
	for _, want := range []string{"monitor: DP-1", "enable_click: false", "workspaces_max_count: -1"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show output missing %q", want)
		}
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wsstrip", "config.yaml")
	if _, err := execute(t, "config", "init", "--path", path, "--force"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.Module.Format != config.DefaultConfig().Module.Format {
		t.Errorf("written Format = %q, want the default", cfg.Module.Format)
	}
}

func TestPickItems(t *testing.T) {
	fake := &i3ipctest.Fake{Path: socketFile(t), WorkspaceList: []i3ipc.Workspace{
		{Name: "1", Num: 1, Output: "DP-1"},
		{Name: "2", Num: 2, Output: "DP-1", Visible: true, Focused: true},
		{Name: "3", Num: 3, Output: "DP-1"},
	}}
	m := newTestModule(t, fake)
	defer m.Stop()
	if err := m.Refresh(); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	items, cursor := pickItems(m.Workspaces())
	if len(items) != 3 {
		t.Fatalf("pickItems() returned %d items, want 3", len(items))
	}
	if cursor != 1 || items[cursor].Name != "2" {
		t.Errorf("cursor = %d, want the focused workspace at 1", cursor)
	}
	if items[0].Description != "unfocused" {
		t.Errorf("items[0].Description = %q, want %q", items[0].Description, "unfocused")
	}
}

func TestParseI3Version(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"i3 version 4.22 (2023-01-02) © 2009 Michael Stapelberg and contributors", "4.22"},
		{"sway version 1.9", "1.9"},
		{"something else", "something else"},
	}
	for _, tt := range tests {
		if got := parseI3Version(tt.in); got != tt.want {
			t.Errorf("parseI3Version(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
