// Package cli turns command-line arguments into a validated app.Config and
// defines the ExitError type that carries a process exit code to main.
package cli
