package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/vk/exemplar/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usageText = `
exemplar - a registry and runner for named demonstration examples.

Usage:
  exemplar list [options]
  exemplar run (--all | --name <name> | --suite <name>) [options]

Commands:
  list    Print registered examples (or loaded suites) without running them.
  run     Execute a selection of examples and render a pass/fail report.

Exit codes:
  0  every requested example passed (or pure query)
  1  at least one example failed, or a startup error occurred
  2  usage error, including an unknown example or suite name
`

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	if len(args) == 0 {
		fmt.Fprint(output, usageText)
		return nil, true, nil
	}

	command := args[0]
	switch command {
	case "help", "-h", "--help":
		fmt.Fprint(output, usageText)
		return nil, true, nil
	case app.CommandList, app.CommandRun:
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q (expected 'list' or 'run')", command)}
	}

	flagSet := flag.NewFlagSet("exemplar "+command, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usageText)
		fmt.Fprintf(output, "\nOptions for %q:\n", command)
		flagSet.PrintDefaults()
	}

	categoryFlag := flagSet.String("category", "", "Restrict the selection to one category tag.")
	manifestsFlag := flagSet.String("manifests", "", "Path to a directory (or file) of suite manifest .hcl files.")
	formatFlag := flagSet.String("format", "text", "Report format. Options: 'text' or 'json'.")
	themeFlag := flagSet.String("theme", "default", "Report theme. Options: 'default' or 'mono'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	var allFlag, suitesFlag *bool
	var nameFlag, suiteFlag *string
	var timeoutFlag *time.Duration
	var workersFlag *int

	switch command {
	case app.CommandList:
		suitesFlag = flagSet.Bool("suites", false, "List loaded suites instead of examples.")
	case app.CommandRun:
		allFlag = flagSet.Bool("all", false, "Run every registered example.")
		nameFlag = flagSet.String("name", "", "Run exactly one example by name.")
		suiteFlag = flagSet.String("suite", "", "Run the selection defined by a suite manifest.")
		timeoutFlag = flagSet.Duration("timeout", 0, "Per-example wall-clock budget. 0 disables the limit.")
		workersFlag = flagSet.Int("workers", 1, "Number of examples executed concurrently.")
	}

	if err := flagSet.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg := app.Config{
		Command:       command,
		Category:      *categoryFlag,
		ManifestsPath: *manifestsFlag,
		Format:        strings.ToLower(*formatFlag),
		Theme:         strings.ToLower(*themeFlag),
		Workers:       1,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	}
	if suitesFlag != nil {
		cfg.Suites = *suitesFlag
	}
	if allFlag != nil {
		cfg.All = *allFlag
	}
	if nameFlag != nil {
		cfg.Name = *nameFlag
	}
	if suiteFlag != nil {
		cfg.Suite = *suiteFlag
	}
	if timeoutFlag != nil {
		cfg.Timeout = *timeoutFlag
	}
	if workersFlag != nil {
		cfg.Workers = *workersFlag
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
