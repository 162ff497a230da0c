// Package ui provides terminal UI utilities including colors, leveled
// logging, spinners, tables and prompts.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Color functions for styled output
var (
	Green   = color.New(color.FgGreen).SprintFunc()
	Yellow  = color.New(color.FgYellow).SprintFunc()
	Red     = color.New(color.FgRed).SprintFunc()
	Blue    = color.New(color.FgBlue).SprintFunc()
	Cyan    = color.New(color.FgCyan).SprintFunc()
	Magenta = color.New(color.FgMagenta).SprintFunc()
	Bold    = color.New(color.Bold).SprintFunc()
	Dim     = color.New(color.Faint).SprintFunc()
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stdout
	errOut  io.Writer = os.Stderr
	verbose bool
)

// SetOutput redirects all log output, errors included, to w. Passing nil
// restores stdout/stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		out, errOut = os.Stdout, os.Stderr
		return
	}
	out, errOut = w, w
}

// SetVerbose enables debug output regardless of WSSTRIP_DEBUG.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// DebugEnabled reports whether Debug prints anything.
func DebugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose || os.Getenv("WSSTRIP_DEBUG") != ""
}

func printTo(toErr bool, symbol, msg string) {
	mu.Lock()
	defer mu.Unlock()
	w := out
	if toErr {
		w = errOut
	}
	fmt.Fprintf(w, "%s %s\n", symbol, msg)
}

// Success prints a success message with a green checkmark.
func Success(msg string) {
	printTo(false, Green("✓"), msg)
}

// Successf prints a formatted success message.
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message with a yellow warning symbol.
func Warning(msg string) {
	printTo(true, Yellow("⚠"), msg)
}

// Warningf prints a formatted warning message.
func Warningf(format string, args ...interface{}) {
	Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message with a red X.
func Error(msg string) {
	printTo(true, Red("✗"), msg)
}

// Errorf prints a formatted error message.
func Errorf(format string, args ...interface{}) {
	Error(fmt.Sprintf(format, args...))
}

// Info prints an info message with a blue arrow.
func Info(msg string) {
	printTo(false, Blue("→"), msg)
}

// Infof prints a formatted info message.
func Infof(format string, args ...interface{}) {
	Info(fmt.Sprintf(format, args...))
}

// Debug prints a debug message with a dim bullet (only if WSSTRIP_DEBUG
// is set or verbose mode is on).
func Debug(msg string) {
	if DebugEnabled() {
		printTo(false, Dim("•"), Dim(msg))
	}
}

// Debugf prints a formatted debug message.
func Debugf(format string, args ...interface{}) {
	Debug(fmt.Sprintf(format, args...))
}

// Logger prefixes every message with a component name, e.g. "i3: ".
type Logger struct {
	prefix string
}

// NewLogger returns a Logger for the named component.
func NewLogger(name string) *Logger {
	return &Logger{prefix: name + ": "}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	Debug(l.prefix + fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(format string, args ...interface{}) {
	Info(l.prefix + fmt.Sprintf(format, args...))
}

func (l *Logger) Warningf(format string, args ...interface{}) {
	Warning(l.prefix + fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	Error(l.prefix + fmt.Sprintf(format, args...))
}

// Header prints a styled header box.
func Header(title string) {
	width := 62
	padding := width - len(title) - 4 // -4 for "║  " and "║"
	if padding < 0 {
		padding = 0
	}

	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s\n", Cyan("╔"+strings.Repeat("═", width)+"╗"))
	fmt.Fprintf(out, "%s  %s%s%s\n", Cyan("║"), Bold(title), strings.Repeat(" ", padding), Cyan("║"))
	fmt.Fprintf(out, "%s\n", Cyan("╚"+strings.Repeat("═", width)+"╝"))
	fmt.Fprintln(out)
}

// SubHeader prints a styled sub-header.
func SubHeader(title string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "\n%s %s\n", Cyan("─────"), Bold(title))
}

// KeyValue prints a formatted key-value pair.
func KeyValue(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "  %-18s %s\n", Dim(key+":"), value)
}

// List prints a bulleted list item.
func List(item string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "  %s %s\n", Dim("•"), item)
}

// NewLine prints a blank line.
func NewLine() {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out)
}

// StateColor colors a workspace state name the way the strip shows it.
func StateColor(state string) string {
	switch strings.ToLower(state) {
	case "focused":
		return Green(state)
	case "urgent":
		return Red(state)
	case "visible":
		return Cyan(state)
	case "inactive_group", "ellipsis":
		return Dim(state)
	default:
		return state
	}
}

// Badge returns a colored badge string.
func Badge(label, color string) string {
	switch color {
	case "green":
		return Green("[" + label + "]")
	case "yellow":
		return Yellow("[" + label + "]")
	case "red":
		return Red("[" + label + "]")
	case "cyan":
		return Cyan("[" + label + "]")
	default:
		return "[" + label + "]"
	}
}
