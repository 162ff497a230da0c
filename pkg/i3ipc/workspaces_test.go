package i3ipc

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/undrift/wsstrip/pkg/shell"
)

func names(ws []Workspace) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Name)
	}
	return out
}

func TestFilterOutput(t *testing.T) {
	all := []Workspace{
		{Name: "1", Output: "DP-1"},
		{Name: "2", Output: "HDMI-1", Urgent: true},
		{Name: "3", Output: "DP-1"},
		{Name: "4", Output: "HDMI-1"},
	}

	tests := []struct {
		name       string
		output     string
		showUrgent bool
		want       []string
	}{
		{"all outputs", "", false, []string{"1", "2", "3", "4"}},
		{"pinned", "DP-1", false, []string{"1", "3"}},
		{"pinned with urgent", "DP-1", true, []string{"1", "2", "3"}},
		{"unknown output", "eDP-1", false, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := names(FilterOutput(all, tt.output, tt.showUrgent)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterOutput(%q, %v) = %v, want %v", tt.output, tt.showUrgent, got, tt.want)
			}
		})
	}
}

func TestSortByNum(t *testing.T) {
	ws := []Workspace{
		{Name: "10", Num: 10},
		{Name: "b", Num: -1},
		{Name: "2", Num: 2},
		{Name: "a", Num: -1},
	}
	SortByNum(ws)

	want := []string{"b", "a", "2", "10"}
	if got := names(ws); !reflect.DeepEqual(got, want) {
		t.Errorf("SortByNum() = %v, want %v", got, want)
	}
}

func TestFocusCommand(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"1:web", `workspace "1:web"`},
		{`say "hi"`, `workspace "say \"hi\""`},
		{`back\slash`, `workspace "back\\slash"`},
	}

	for _, tt := range tests {
		if got := FocusCommand(tt.name); got != tt.want {
			t.Errorf("FocusCommand(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

type stubRunner struct {
	result *shell.Result
	err    error
	calls  [][]string
}

func (r *stubRunner) Run(ctx context.Context, name string, args ...string) (*shell.Result, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.result, r.err
}

func TestDefaultClient_SocketPath(t *testing.T) {
	t.Run("I3SOCK wins", func(t *testing.T) {
		t.Setenv("I3SOCK", "/run/user/1000/i3/ipc-socket.1")
		t.Setenv("SWAYSOCK", "/run/user/1000/sway-ipc.sock")
		runner := &stubRunner{}
		c := &DefaultClient{runner: runner}

		path, err := c.SocketPath()
		if err != nil || path != "/run/user/1000/i3/ipc-socket.1" {
			t.Errorf("SocketPath() = (%q, %v)", path, err)
		}
		if len(runner.calls) != 0 {
			t.Errorf("SocketPath() ran %v, want no command", runner.calls)
		}
	})

	t.Run("asks i3", func(t *testing.T) {
		t.Setenv("I3SOCK", "")
		t.Setenv("SWAYSOCK", "")
		runner := &stubRunner{result: &shell.Result{Stdout: "/tmp/i3-ipc.sock"}}
		c := &DefaultClient{runner: runner}

		path, err := c.SocketPath()
		if err != nil || path != "/tmp/i3-ipc.sock" {
			t.Errorf("SocketPath() = (%q, %v)", path, err)
		}
		want := [][]string{{"i3", "--get-socketpath"}}
		if !reflect.DeepEqual(runner.calls, want) {
			t.Errorf("SocketPath() ran %v, want %v", runner.calls, want)
		}
	})

	t.Run("i3 missing", func(t *testing.T) {
		t.Setenv("I3SOCK", "")
		t.Setenv("SWAYSOCK", "")
		runner := &stubRunner{result: &shell.Result{ExitCode: -1}, err: errors.New("not found")}
		c := &DefaultClient{runner: runner}

		if _, err := c.SocketPath(); err == nil {
			t.Error("SocketPath() expected error when i3 cannot be run")
		}
	})

	t.Run("i3 fails", func(t *testing.T) {
		t.Setenv("I3SOCK", "")
		t.Setenv("SWAYSOCK", "")
		runner := &stubRunner{result: &shell.Result{ExitCode: 1, Stderr: "no running instance"}}
		c := &DefaultClient{runner: runner}

		if _, err := c.SocketPath(); err == nil {
			t.Error("SocketPath() expected error for non-zero exit")
		}
	})
}
