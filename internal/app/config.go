package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/pagegrid/internal/pageid"
)

// Output formats for the assembled pages.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LayoutPath  string // hcl files with pages
	ModulesPath string // hcl files with application_type declarations

	// Site restricts assembly to the pages of one site, e.g. "portal.classic".
	// Empty assembles every page.
	Site string

	OutputFormat    string
	LogFormat       string
	LogLevel        string
	HealthcheckPort int

	// LogWriter receives the logs. Defaults to the App's output writer.
	LogWriter io.Writer
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LayoutPath == "" {
		return nil, errors.New("LayoutPath is a required configuration field and cannot be empty")
	}
	if cfg.Site != "" {
		if _, err := pageid.ParseSiteKey(cfg.Site); err != nil {
			return nil, fmt.Errorf("invalid site filter: %w", err)
		}
	}
	switch cfg.OutputFormat {
	case "":
		cfg.OutputFormat = OutputText
	case OutputText, OutputJSON:
	default:
		return nil, fmt.Errorf("invalid output format %q: must be '%s' or '%s'", cfg.OutputFormat, OutputText, OutputJSON)
	}
	if cfg.HealthcheckPort < 0 {
		return nil, fmt.Errorf("invalid healthcheck port %d", cfg.HealthcheckPort)
	}
	return &cfg, nil
}
