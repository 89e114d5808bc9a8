package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/inigen/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("inigen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
inigen - Converts a structured configuration file into INI text.

Usage:
  inigen [options] INPUT_PATH OUTPUT_PATH

Arguments:
  INPUT_PATH
    Path to the configuration file to read (HCL, JSON, YAML or TOML).
    The format is detected from the file extension unless -format is given.
  OUTPUT_PATH
    Path the produced INI text is written to.

Options:
`)
		flagSet.PrintDefaults()
	}

	formatFlag := flagSet.String("format", "", "Input format override. Options: 'hcl', 'json', 'yaml' or 'toml'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
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

	format := strings.ToLower(*formatFlag)
	switch format {
	case "", "hcl", "json", "yaml", "toml":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'hcl', 'json', 'yaml' or 'toml'"}
	}
	slog.Debug("CLI parameter validation complete.")

	if flagSet.NArg() < 2 {
		slog.Debug("Missing positional arguments, printing usage.", "got", flagSet.NArg())
		flagSet.Usage()
		return nil, false, &ExitError{Code: 1, Message: "missing required INPUT_PATH and OUTPUT_PATH arguments"}
	}

	config, err := app.NewConfig(app.Config{
		InputPath:  flagSet.Arg(0),
		OutputPath: flagSet.Arg(1),
		Format:     format,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "input", config.InputPath, "output", config.OutputPath)
	return config, false, nil
}
