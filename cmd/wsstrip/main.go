package main

import (
	// Must stay first: keeps bubbletea's init from querying the terminal.
	_ "github.com/undrift/wsstrip/internal/preinit"

	"fmt"
	"os"

	"github.com/undrift/wsstrip/internal/cmd"
)

// Version is set via ldflags at build time
var version = "dev"

func main() {
	os.Unsetenv("CI")

	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
