package module

import (
	"errors"
	"sync"

	"github.com/undrift/wsstrip/internal/ui"
	"github.com/undrift/wsstrip/pkg/i3ipc"
)

// ConnState is the state of the event connection.
type ConnState int

const (
	Disconnected ConnState = iota
	Connected
	Reconnecting
)

func (s ConnState) String() string {
	switch s {
	case Connected:
		return "connected"
	case Reconnecting:
		return "reconnecting"
	default:
		return "disconnected"
	}
}

// DefaultMode is the i3 binding mode that is not shown on the bar.
const DefaultMode = "default"

// PollResult reports what one poll observed.
type PollResult struct {
	HasEvent    bool
	Kind        i3ipc.EventKind
	ModeChanged bool
	Mode        string
}

// ModeActive reports whether the polled mode should be displayed.
func (r PollResult) ModeActive() bool {
	return r.ModeChanged && r.Mode != DefaultMode
}

var errNotConnected = errors.New("event stream not connected")

// subscribedEvents are the event kinds the strip reacts to.
var subscribedEvents = []i3ipc.EventKind{i3ipc.EventWorkspace, i3ipc.EventMode}

// Supervisor owns the event stream. A failed read triggers a single
// reconnect attempt; failures never leave Poll.
type Supervisor struct {
	client i3ipc.Client
	log    *ui.Logger

	mu      sync.Mutex
	stream  i3ipc.EventStream
	state   ConnState
	stopped bool
}

// NewSupervisor creates a disconnected supervisor.
func NewSupervisor(client i3ipc.Client, log *ui.Logger) *Supervisor {
	return &Supervisor{client: client, log: log}
}

// Connect opens the event stream.
func (s *Supervisor) Connect() error {
	stream, err := s.client.Subscribe(subscribedEvents...)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stream = stream
	s.state = Connected
	return nil
}

// State returns the current connection state.
func (s *Supervisor) State() ConnState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Poll blocks until one event arrives or the stream fails. On failure it
// tries to reconnect once and reports no event, whatever the outcome.
func (s *Supervisor) Poll() PollResult {
	s.mu.Lock()
	stream, stopped := s.stream, s.stopped
	s.mu.Unlock()

	if stopped {
		return PollResult{}
	}

	err := errNotConnected
	var ev i3ipc.Event
	if stream != nil {
		ev, err = stream.Next()
	}
	if err == nil {
		result := PollResult{HasEvent: true, Kind: ev.Kind}
		if ev.Kind == i3ipc.EventMode {
			result.ModeChanged = true
			result.Mode = ev.Change
		}
		return result
	}

	s.reconnect(err)
	return PollResult{}
}

func (s *Supervisor) reconnect(reason error) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	old := s.stream
	s.stream = nil
	s.state = Reconnecting
	s.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}

	s.log.Warningf("Attempting to reconnect socket (reason: %v)", reason)
	stream, err := s.client.Subscribe(subscribedEvents...)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = Disconnected
		s.log.Errorf("Failed to reconnect socket (reason: %v)", err)
		return
	}
	if s.stopped {
		_ = stream.Close()
		return
	}
	s.stream = stream
	s.state = Connected
	s.log.Infof("Reconnecting socket succeeded")
}

// Close tears down the event stream. It never fails.
func (s *Supervisor) Close() {
	s.mu.Lock()
	stream := s.stream
	s.stream = nil
	s.stopped = true
	s.state = Disconnected
	s.mu.Unlock()

	if stream == nil {
		return
	}
	defer func() { _ = recover() }()
	_ = stream.Close()
}
