package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/pagegrid/internal/app"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pagegrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
PageGrid - Assembles portal page layouts from declarative HCL files.

Usage:
  pagegrid [options] [LAYOUT_PATH]

Arguments:
  LAYOUT_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	layoutFlag := flagSet.String("layout", "", "Path to the layout file or directory.")
	lFlag := flagSet.String("l", "", "Path to the layout file or directory (shorthand).")
	modulesPathFlag := flagSet.String("modules-path", "", "Path to the directory containing application_type declarations.")
	siteFlag := flagSet.String("site", "", "Only assemble pages of this site, e.g. 'portal.classic'.")
	outputFlag := flagSet.String("output", app.OutputText, "Output format of the assembled pages. Options: 'text' or 'json'.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	switch {
	case *layoutFlag != "":
		path = *layoutFlag
	case *lFlag != "":
		path = *lFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	}
	slog.Debug("Layout path determined.", "path", path)

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		LayoutPath:      path,
		ModulesPath:     *modulesPathFlag,
		Site:            *siteFlag,
		OutputFormat:    strings.ToLower(*outputFlag),
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "layout", config.LayoutPath)
	return config, false, nil
}
