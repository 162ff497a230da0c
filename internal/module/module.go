// Package module implements the i3 workspace module: it tracks i3's
// workspaces over IPC, lays them out for the bar and executes the
// focus/next/prev actions bound to the rendered strip.
package module

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/undrift/wsstrip/internal/config"
	"github.com/undrift/wsstrip/internal/label"
	"github.com/undrift/wsstrip/internal/ui"
	"github.com/undrift/wsstrip/internal/workspace"
	"github.com/undrift/wsstrip/pkg/i3ipc"
)

// Format tags understood by Build.
const (
	TagLabelState = "<label-state>"
	TagLabelMode  = "<label-mode>"
)

// defaultIconKey registers icons.default in the iconset.
const defaultIconKey = "ws-icon-default"

// ErrSocketNotFound is returned by New when the IPC socket does not exist.
var ErrSocketNotFound = errors.New("could not find socket")

// InitError wraps any failure to construct a module.
type InitError struct {
	Module string
	Err    error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%s: %v", e.Module, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// Options are the module settings resolved from configuration.
type Options struct {
	Name           string
	Monitor        string
	Format         string
	EnableClick    bool
	EnableScroll   bool
	ReverseScroll  bool
	WrappingScroll bool
	IndexSort      bool
	PinWorkspaces  bool
	ShowUrgent     bool
	StripWsnumbers bool
	FuzzyMatch     bool
	Budget         workspace.Budget
}

// OptionsFromConfig extracts the module options from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Name:           cfg.Module.Name,
		Monitor:        cfg.Bar.Monitor,
		Format:         cfg.Module.Format,
		EnableClick:    cfg.Module.EnableClick,
		EnableScroll:   cfg.Module.EnableScroll,
		ReverseScroll:  cfg.Module.ReverseScroll,
		WrappingScroll: cfg.Module.WrappingScroll,
		IndexSort:      cfg.Module.IndexSort,
		PinWorkspaces:  cfg.Module.PinWorkspaces,
		ShowUrgent:     cfg.Module.ShowUrgent,
		StripWsnumbers: cfg.Module.StripWsnumbers,
		FuzzyMatch:     cfg.Module.FuzzyMatch,
		Budget: workspace.Budget{
			MaxCount: cfg.Module.WorkspacesMaxCount,
			MaxWidth: cfg.Module.WorkspacesMaxWidth,
		},
	}
}

// Module is one i3 workspace module instance.
type Module struct {
	opts   Options
	client i3ipc.Client
	log    *ui.Logger
	sup    *Supervisor
	cmd    *Commander

	stateLabels map[workspace.State]*label.Label
	modeLabel   *label.Label // nil unless the format shows the mode
	separator   *label.Label
	icons       *label.Iconset

	stopOnce sync.Once

	mu         sync.RWMutex
	workspaces []*workspace.Workspace
	modeActive bool
	modeText   *label.Label
}

// New verifies the IPC socket exists, resolves labels and icons from cfg
// and subscribes to workspace and mode events.
func New(cfg *config.Config, client i3ipc.Client) (*Module, error) {
	opts := OptionsFromConfig(cfg)
	log := ui.NewLogger(opts.Name)

	if err := checkSocket(client); err != nil {
		return nil, &InitError{Module: opts.Name, Err: err}
	}

	for _, warning := range cfg.Deprecations() {
		log.Warningf("%s", warning)
	}

	m := &Module{
		opts:        opts,
		client:      client,
		log:         log,
		sup:         NewSupervisor(client, log),
		cmd:         newCommander(opts, client, log),
		stateLabels: make(map[workspace.State]*label.Label),
		separator:   label.New(cfg.Labels.Separator),
		icons:       label.NewIconset(),
	}

	if m.HasTag(TagLabelState) {
		for _, state := range workspace.States {
			m.stateLabels[state] = label.New(cfg.Labels.ForState(state.String()))
		}
	}
	if m.HasTag(TagLabelMode) {
		m.modeLabel = label.New(cfg.Labels.Mode)
	}

	m.icons.Add(defaultIconKey, label.New(cfg.Icons.Default))
	for _, entry := range cfg.Icons.Ws {
		if name, icon, ok := label.ParseIconEntry(entry); ok {
			m.icons.Add(name, label.New(icon))
		} else {
			log.Warningf("Ignoring malformed icon entry %q (want name;icon)", entry)
		}
	}

	if err := m.sup.Connect(); err != nil {
		return nil, &InitError{Module: opts.Name, Err: err}
	}
	return m, nil
}

// checkSocket verifies the IPC socket path resolves to an existing file.
func checkSocket(client i3ipc.Client) error {
	path, err := client.SocketPath()
	if err != nil || path == "" {
		shown := path
		if shown == "" {
			shown = "<empty>"
		}
		return fmt.Errorf("%w: %s", ErrSocketNotFound, shown)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrSocketNotFound, path)
	}
	return nil
}

// Name returns the module name used in log lines.
func (m *Module) Name() string {
	return m.opts.Name
}

// Options returns the resolved module options.
func (m *Module) Options() Options {
	return m.opts
}

// HasTag reports whether the format contains tag.
func (m *Module) HasTag(tag string) bool {
	return strings.Contains(m.opts.Format, tag)
}

// ConnState returns the event connection state.
func (m *Module) ConnState() ConnState {
	return m.sup.State()
}

// Poll waits for the next event and applies mode changes to the mode
// label. A result without HasEvent means no redraw is needed.
func (m *Module) Poll() PollResult {
	result := m.sup.Poll()
	if result.ModeChanged && m.modeLabel != nil {
		m.setMode(result.Mode)
	}
	return result
}

func (m *Module) setMode(mode string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.modeActive = mode != DefaultMode
	if m.modeActive {
		text := m.modeLabel.Clone()
		text.ResetTokens()
		text.ReplaceToken("%mode%", mode)
		m.modeText = text
	}
}

// Mode returns the displayed mode label, or nil when the default mode
// is active.
func (m *Module) Mode() *label.Label {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.modeActive {
		return nil
	}
	return m.modeText
}

// Workspaces returns the strip computed by the last successful refresh.
func (m *Module) Workspaces() []*workspace.Workspace {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*workspace.Workspace(nil), m.workspaces...)
}

// Stop disconnects from i3 and unblocks a pending Poll. Errors and panics
// from the transport are swallowed; later calls do nothing.
func (m *Module) Stop() {
	m.stopOnce.Do(func() {
		m.log.Infof("Disconnecting from socket")
		m.sup.Close()
		m.cmd.Close()
	})
}
