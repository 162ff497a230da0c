// Package i3ipc is the window manager transport used by the workspace
// module. It wraps go.i3wm.org/i3/v4 behind a small interface so the
// module can be driven by a fake in tests.
package i3ipc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.i3wm.org/i3/v4"

	"github.com/undrift/wsstrip/pkg/shell"
)

// socketPathTimeout bounds the `i3 --get-socketpath` lookup.
const socketPathTimeout = 2 * time.Second

// EventKind identifies a subscribed event stream.
type EventKind int

const (
	EventOther EventKind = iota
	EventWorkspace
	EventMode
)

// String returns the i3 event type name.
func (k EventKind) String() string {
	switch k {
	case EventWorkspace:
		return "workspace"
	case EventMode:
		return "mode"
	default:
		return "other"
	}
}

// Event is one decoded i3 event. For mode events Change holds the mode
// name; for workspace events it holds the change type (focus, init, ...).
type Event struct {
	Kind   EventKind
	Change string
}

// Workspace holds the facts i3 reports for a workspace.
type Workspace struct {
	Name    string
	Num     int64
	Output  string
	Focused bool
	Visible bool
	Urgent  bool
}

// EventStream delivers subscribed events. Next blocks until an event
// arrives or the stream fails; Close unblocks a pending Next.
type EventStream interface {
	Next() (Event, error)
	Close() error
}

// Client is the IPC surface consumed by the workspace module.
type Client interface {
	// SocketPath returns the path of the IPC socket.
	SocketPath() (string, error)
	// Subscribe opens an event channel for the given kinds.
	Subscribe(kinds ...EventKind) (EventStream, error)
	// Workspaces returns all workspaces in i3's order.
	Workspaces() ([]Workspace, error)
	// RunCommand sends a command and reports i3's verdict.
	RunCommand(command string) error
	// Close tears down the command channel.
	Close() error
}

// DefaultClient talks to a running i3 (or sway) instance.
type DefaultClient struct {
	runner shell.Runner
}

// NewClient creates a client that discovers the socket with runner.
func NewClient(runner shell.Runner) Client {
	c := &DefaultClient{runner: runner}
	i3.SocketPathHook = c.SocketPath
	return c
}

// SocketPath returns $I3SOCK, $SWAYSOCK, or the answer of
// `i3 --get-socketpath`.
func (c *DefaultClient) SocketPath() (string, error) {
	for _, env := range []string{"I3SOCK", "SWAYSOCK"} {
		if path := os.Getenv(env); path != "" {
			return path, nil
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), socketPathTimeout)
	defer cancel()

	result, err := c.runner.Run(ctx, "i3", "--get-socketpath")
	if err != nil {
		return "", fmt.Errorf("failed to query i3 socket path: %w", err)
	}
	if !result.OK() {
		return "", fmt.Errorf("i3 --get-socketpath exited with %d: %s", result.ExitCode, result.Stderr)
	}
	return result.Stdout, nil
}

// Subscribe verifies the socket answers, then subscribes to kinds.
func (c *DefaultClient) Subscribe(kinds ...EventKind) (EventStream, error) {
	if _, err := i3.GetVersion(); err != nil {
		return nil, fmt.Errorf("failed to connect to i3: %w", err)
	}

	types := make([]i3.EventType, 0, len(kinds))
	for _, k := range kinds {
		switch k {
		case EventWorkspace:
			types = append(types, i3.WorkspaceEventType)
		case EventMode:
			types = append(types, i3.ModeEventType)
		}
	}
	if len(types) == 0 {
		return nil, errors.New("no event types to subscribe to")
	}
	return &eventStream{recv: i3.Subscribe(types...)}, nil
}

// Workspaces returns all workspaces.
func (c *DefaultClient) Workspaces() ([]Workspace, error) {
	raw, err := i3.GetWorkspaces()
	if err != nil {
		return nil, fmt.Errorf("failed to get workspaces: %w", err)
	}

	workspaces := make([]Workspace, 0, len(raw))
	for _, ws := range raw {
		workspaces = append(workspaces, Workspace{
			Name:    ws.Name,
			Num:     ws.Num,
			Output:  ws.Output,
			Focused: ws.Focused,
			Visible: ws.Visible,
			Urgent:  ws.Urgent,
		})
	}
	return workspaces, nil
}

// RunCommand sends command to i3.
func (c *DefaultClient) RunCommand(command string) error {
	if _, err := i3.RunCommand(command); err != nil {
		return fmt.Errorf("command %q failed: %w", command, err)
	}
	return nil
}

// Close is a no-op: go-i3 opens a fresh connection for each request.
func (c *DefaultClient) Close() error {
	return nil
}

type eventStream struct {
	recv *i3.EventReceiver
}

func (s *eventStream) Next() (Event, error) {
	if !s.recv.Next() {
		if err := s.recv.Err(); err != nil {
			return Event{}, err
		}
		return Event{}, io.EOF
	}

	switch ev := s.recv.Event().(type) {
	case *i3.ModeEvent:
		return Event{Kind: EventMode, Change: ev.Change}, nil
	case *i3.WorkspaceEvent:
		return Event{Kind: EventWorkspace, Change: ev.Change}, nil
	default:
		return Event{Kind: EventOther}, nil
	}
}

func (s *eventStream) Close() error {
	return s.recv.Close()
}
