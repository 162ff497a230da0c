package module

import (
	"errors"
	"fmt"

	"github.com/undrift/wsstrip/internal/config"
	"github.com/undrift/wsstrip/internal/ui"
	"github.com/undrift/wsstrip/pkg/i3ipc"
)

// Action names dispatched from the rendered strip.
const (
	ActionFocus = "focus"
	ActionNext  = "next"
	ActionPrev  = "prev"
)

// ErrUnknownAction is returned by Dispatch for unregistered actions.
var ErrUnknownAction = errors.New("unknown action")

// Commander executes the strip's actions against i3. It only sends
// commands and lists workspaces; it never subscribes to events.
type Commander struct {
	client  i3ipc.Client
	log     *ui.Logger
	monitor string
	wrap    bool
	actions map[string]func(data string) error
}

// NewCommander checks that the IPC socket exists and returns a commander
// for cfg. Use it when only an action has to run.
func NewCommander(cfg *config.Config, client i3ipc.Client) (*Commander, error) {
	opts := OptionsFromConfig(cfg)
	if err := checkSocket(client); err != nil {
		return nil, &InitError{Module: opts.Name, Err: err}
	}
	return newCommander(opts, client, ui.NewLogger(opts.Name)), nil
}

func newCommander(opts Options, client i3ipc.Client, log *ui.Logger) *Commander {
	c := &Commander{
		client:  client,
		log:     log,
		monitor: opts.Monitor,
		wrap:    opts.WrappingScroll,
	}
	c.actions = map[string]func(string) error{
		ActionFocus: c.Focus,
		ActionNext:  func(string) error { return c.Next() },
		ActionPrev:  func(string) error { return c.Prev() },
	}
	return c
}

// Close closes the command connection. Errors and panics are swallowed.
func (c *Commander) Close() {
	defer func() { _ = recover() }()
	_ = c.client.Close()
}

// Dispatch runs the named action with its payload.
func (c *Commander) Dispatch(action, data string) error {
	fn, ok := c.actions[action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return fn(data)
}

// Focus switches to the workspace called name.
func (c *Commander) Focus(name string) error {
	if name == "" {
		return errors.New("no workspace name given")
	}
	c.log.Infof("Sending workspace focus command to ipc handler")
	return c.client.RunCommand(i3ipc.FocusCommand(name))
}

// Next moves to the next workspace on the bar's output.
func (c *Commander) Next() error {
	return c.focusDirection(true)
}

// Prev moves to the previous workspace on the bar's output.
func (c *Commander) Prev() error {
	return c.focusDirection(false)
}

// focusDirection looks up the workspace visible on the bar's output in a
// fresh listing. Without wrapping nothing is sent at the ends. The visible
// workspace is focused first so the relative move starts from it.
func (c *Commander) focusDirection(next bool) error {
	workspaces, err := i3ipc.ListWorkspaces(c.client, c.monitor, false)
	if err != nil {
		return fmt.Errorf("failed to fetch workspaces: %w", err)
	}

	current := -1
	for i, ws := range workspaces {
		if ws.Visible {
			current = i
			break
		}
	}
	if current < 0 {
		c.log.Warningf("Current workspace not found")
		return nil
	}

	command := i3ipc.CommandPrevOnOutput
	atEdge := current == 0
	if next {
		command = i3ipc.CommandNextOnOutput
		atEdge = current == len(workspaces)-1
	}
	if atEdge && !c.wrap {
		return nil
	}

	if ws := workspaces[current]; !ws.Focused {
		c.log.Infof("Sending workspace focus command to ipc handler")
		if err := c.client.RunCommand(i3ipc.FocusCommand(ws.Name)); err != nil {
			return err
		}
	}
	c.log.Infof("Sending %s command to ipc handler", command)
	return c.client.RunCommand(command)
}

// Dispatch runs the named action over the module's connection.
func (m *Module) Dispatch(action, data string) error { return m.cmd.Dispatch(action, data) }

// Focus switches to the workspace called name.
func (m *Module) Focus(name string) error { return m.cmd.Focus(name) }

// Next moves to the next workspace on the bar's output.
func (m *Module) Next() error { return m.cmd.Next() }

// Prev moves to the previous workspace on the bar's output.
func (m *Module) Prev() error { return m.cmd.Prev() }
