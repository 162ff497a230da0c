// Package i3ipctest provides an in-memory i3ipc.Client for tests.
package i3ipctest

import (
	"errors"
	"sync"

	"github.com/undrift/wsstrip/pkg/i3ipc"
)

// ErrClosed is returned by a stream's Next after Close.
var ErrClosed = errors.New("i3ipctest: stream closed")

// Fake is a scripted i3ipc.Client. Zero values are usable; set the
// exported fields before handing it to the code under test.
type Fake struct {
	mu sync.Mutex

	Path          string
	PathErr       error
	SubscribeErrs []error // consumed one per Subscribe call; nil entries succeed
	WorkspaceList []i3ipc.Workspace
	WorkspacesErr error
	CommandErr    error
	CloseErr      error

	// Events are delivered in order by every stream; an entry with a
	// non-nil Err makes Next fail with it.
	Events []Step

	Commands   []string
	Subscribes int
	Closed     bool
	streams    []*Stream
}

// Step is one scripted result of EventStream.Next.
type Step struct {
	Event i3ipc.Event
	Err   error
}

// SocketPath returns Path or PathErr.
func (f *Fake) SocketPath() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Path, f.PathErr
}

// Subscribe returns a stream sharing the scripted Events queue.
func (f *Fake) Subscribe(kinds ...i3ipc.EventKind) (i3ipc.EventStream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Subscribes++
	if len(f.SubscribeErrs) > 0 {
		err := f.SubscribeErrs[0]
		f.SubscribeErrs = f.SubscribeErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	s := &Stream{fake: f}
	f.streams = append(f.streams, s)
	return s, nil
}

// Workspaces returns a copy of WorkspaceList.
func (f *Fake) Workspaces() ([]i3ipc.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.WorkspacesErr != nil {
		return nil, f.WorkspacesErr
	}
	return append([]i3ipc.Workspace(nil), f.WorkspaceList...), nil
}

// RunCommand records command.
func (f *Fake) RunCommand(command string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Commands = append(f.Commands, command)
	return f.CommandErr
}

// Close marks the fake closed.
func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
	return f.CloseErr
}

// SentCommands returns a copy of the recorded commands.
func (f *Fake) SentCommands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Commands...)
}

// Streams returns every stream handed out so far.
func (f *Fake) Streams() []*Stream {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*Stream(nil), f.streams...)
}

// Stream is a scripted i3ipc.EventStream.
type Stream struct {
	fake     *Fake
	closed   bool
	CloseErr error
}

// Next pops the next scripted step. An exhausted script reads as a
// closed connection.
func (s *Stream) Next() (i3ipc.Event, error) {
	f := s.fake
	f.mu.Lock()
	defer f.mu.Unlock()

	if s.closed {
		return i3ipc.Event{}, ErrClosed
	}
	if len(f.Events) == 0 {
		return i3ipc.Event{}, ErrClosed
	}
	step := f.Events[0]
	f.Events = f.Events[1:]
	return step.Event, step.Err
}

// Close closes the stream.
func (s *Stream) Close() error {
	s.fake.mu.Lock()
	defer s.fake.mu.Unlock()
	s.closed = true
	return s.CloseErr
}

// IsClosed reports whether Close was called.
func (s *Stream) IsClosed() bool {
	s.fake.mu.Lock()
	defer s.fake.mu.Unlock()
	return s.closed
}
