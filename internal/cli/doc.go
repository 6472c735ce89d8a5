// Package cli translates command-line arguments into a validated app.Config.
// It owns the usage text and the mapping from argument problems to the
// process exit code 2, keeping the app package free of flag handling.
package cli
