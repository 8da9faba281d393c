// ABOUTME: Entry point for the conanup CLI tool
// ABOUTME: Initializes and executes the root command, exiting 1 on any failure
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/conanup/conanup/internal/commands"
	"github.com/conanup/conanup/internal/ui"
)

var version = "dev" // Injected at build time via -ldflags

func main() {
	commands.SetVersion(version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := commands.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err))
		os.Exit(1)
	}
}
