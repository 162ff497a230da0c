// Package preinit runs before all other package init() functions.
//
// It must be imported with a blank identifier in main.go BEFORE any other
// internal imports so that its init() executes first in Go's dependency-
// ordered initialization.
//
// bubbletea v1.x has an init() that calls lipgloss.HasDarkBackground(),
// which sends an OSC 11 query to the terminal and blocks on the reply.
// wsstrip run is started by the bar with no terminal attached, and a
// terminal that never answers hangs even "wsstrip --help".
//
// CI=1 makes termenv treat stdout as a non-TTY and skip the query. main()
// unsets it again before any command runs.
package preinit

import "os"

func init() {
	os.Setenv("CI", "1")
}
