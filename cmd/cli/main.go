package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/pagegrid/internal/app"
	"github.com/specialistvlad/pagegrid/internal/cli"
	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/hcl_adapter"
	"github.com/specialistvlad/pagegrid/internal/toml_adapter"
)

// main is the entrypoint for the pagegrid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Pages go to outW, logs to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	appConfig.LogWriter = logW

	// The app panics on layout/registry mismatches.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	pagegridApp := app.NewApp(ctx, outW, appConfig, newLoader())
	return pagegridApp.Run(ctx)
}

// newLoader reads both .hcl and .toml layouts.
func newLoader() config.Loader {
	return config.NewMultiLoader(hcl_adapter.NewLoader(), toml_adapter.NewLoader())
}
