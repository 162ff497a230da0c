// Package render turns a module's tags into bar output.
package render

import (
	"fmt"
	"strings"

	"github.com/undrift/wsstrip/internal/module"
	"github.com/undrift/wsstrip/internal/workspace"
)

// Source builds the content of a format tag, as module.Module does.
type Source interface {
	Build(b module.Builder, tag string) bool
}

// StringBuilder is a module.Builder that accumulates text.
type StringBuilder interface {
	module.Builder
	String() string
}

// rawWriter is implemented by builders whose markup must not be escaped
// in the format string itself, so a format can carry its own tags.
type rawWriter interface {
	Raw(text string)
}

// Format walks format, copying literal text to b and expanding every
// <tag> through src. Literal text goes to Raw when b has it, otherwise
// it is emitted as a StateNone node.
func Format(b module.Builder, format string, src Source) {
	literal := func(text string) {
		if r, ok := b.(rawWriter); ok {
			r.Raw(text)
			return
		}
		b.Node(text, workspace.StateNone)
	}

	rest := format
	for rest != "" {
		open := strings.IndexByte(rest, '<')
		if open < 0 {
			literal(rest)
			return
		}
		end := strings.IndexByte(rest[open:], '>')
		if end < 0 {
			literal(rest)
			return
		}
		if open > 0 {
			literal(rest[:open])
		}
		src.Build(b, rest[open:open+end+1])
		rest = rest[open+end+1:]
	}
}

// Line renders format with b and returns the result without surrounding
// spaces left by empty tags.
func Line(b StringBuilder, format string, src Source) string {
	Format(b, format, src)
	return strings.TrimSpace(b.String())
}

// Polybar emits polybar formatting: click and scroll regions become
// %{A<button>:<command>:} ... %{A} tags running command with the action
// name and its payload.
type Polybar struct {
	command string
	sb      strings.Builder
	open    int
}

// NewPolybar creates a builder whose actions invoke command, e.g.
// "wsstrip" results in "wsstrip focus '2:web'".
func NewPolybar(command string) *Polybar {
	return &Polybar{command: command}
}

// Node writes text with "%" doubled so names like "%{F-}" stay literal.
func (p *Polybar) Node(text string, _ workspace.State) {
	p.sb.WriteString(strings.ReplaceAll(text, "%", "%%"))
}

// Raw writes format-string text as is.
func (p *Polybar) Raw(text string) {
	p.sb.WriteString(text)
}

func (p *Polybar) OpenAction(button module.MouseButton, action, data string) {
	cmd := p.command + " " + action
	if data != "" {
		cmd += " " + shellQuote(data)
	}
	fmt.Fprintf(&p.sb, "%%{A%d:%s:}", button, escapeAction(cmd))
	p.open++
}

func (p *Polybar) CloseAction() {
	if p.open == 0 {
		return
	}
	p.sb.WriteString("%{A}")
	p.open--
}

func (p *Polybar) String() string {
	return p.sb.String()
}

// escapeAction escapes the colons polybar uses to delimit the command.
func escapeAction(cmd string) string {
	return strings.ReplaceAll(cmd, ":", `\:`)
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Plain emits label text only.
type Plain struct {
	sb strings.Builder
}

// NewPlain creates a text-only builder.
func NewPlain() *Plain {
	return &Plain{}
}

func (p *Plain) Node(text string, _ workspace.State) {
	p.sb.WriteString(text)
}

func (p *Plain) OpenAction(module.MouseButton, string, string) {}

func (p *Plain) CloseAction() {}

func (p *Plain) String() string {
	return p.sb.String()
}
