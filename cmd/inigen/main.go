package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/inigen/internal/app"
	"github.com/vk/inigen/internal/cli"
	"github.com/vk/inigen/internal/loader"
)

// main is the entrypoint for the inigen application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Pick the concrete loader: an explicit -format wins, otherwise the
	// input path's extension decides.
	var l loader.Loader
	if appConfig.Format != "" {
		l, err = loader.ForFormat(appConfig.Format)
	} else {
		l, err = loader.ForPath(appConfig.InputPath)
	}
	if err != nil {
		return err
	}

	inigenApp := app.NewApp(outW, appConfig, l)
	return inigenApp.Run(context.Background())
}
