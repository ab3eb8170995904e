// Package main is the entry point for the featcheck tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/basidwild/clawdbox/cmd/featcheck/commands"
	"github.com/basidwild/clawdbox/internal/adapters/config"
	"github.com/basidwild/clawdbox/internal/app"
	"github.com/basidwild/clawdbox/internal/core/domain"
	_ "github.com/basidwild/clawdbox/internal/wiring"
	"github.com/grindlemire/graft"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if cerr := components.Telemetry.Close(); cerr != nil {
			components.Logger.Error(cerr)
		}
	}()

	// 2. Interface - CLI
	cli := commands.New(components.App)
	if loader, ok := components.Loader.(*config.FileManifestLoader); ok {
		cli.SetManifestHook(func(path string) {
			loader.Filename = path
		})
	}

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrBuildFailed) {
			// The checker already reported the failure through its logger.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
