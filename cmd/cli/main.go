// exemplar maintains a catalog of named demonstration examples and runs a
// selection of them with per-example failure isolation, rendering a pass/fail
// report for interactive or CI use.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/exemplar/internal/app"
	"github.com/vk/exemplar/internal/cli"
	"github.com/vk/exemplar/internal/manifest"
	"github.com/vk/exemplar/internal/registry"
)

// main is the entrypoint for the exemplar application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run encapsulates the main application logic and maps errors to the process
// exit code: 0 success, 1 failure, 2 usage error (including unknown example
// or suite names, which scripting must be able to tell apart from an example
// that ran and failed).
func run(outW, errW io.Writer, args []string) int {
	err := runApp(outW, errW, args)
	if err == nil {
		return 0
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(errW, exitErr.Message)
		return exitErr.Code
	}

	fmt.Fprintln(errW, err)

	var notFound *registry.NotFoundError
	var unknownSuite *manifest.UnknownSuiteError
	if errors.As(err, &notFound) || errors.As(err, &unknownSuite) {
		return 2
	}
	return 1
}

// runApp wires the CLI config into an App and executes it.
func runApp(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	exemplarApp, err := app.NewApp(outW, errW, appConfig)
	if err != nil {
		return err
	}

	return exemplarApp.Run(context.Background(), appConfig)
}
