package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/pagegrid/internal/assembly"
	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/ctxlog"
	"github.com/specialistvlad/pagegrid/internal/inmemorystore"
	"github.com/specialistvlad/pagegrid/internal/pagestore"
	"github.com/specialistvlad/pagegrid/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	ctx        context.Context
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	registry   *registry.Registry
	model      *config.Model
	assembler  *assembly.Assembler
	store      pagestore.Store
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// It panics when the layout cannot be loaded or does not match the
// registered modules; entrypoints are expected to recover.
func NewApp(ctx context.Context, outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logW := cfg.LogWriter
	if logW == nil {
		logW = outW
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	var paths []string
	if cfg.LayoutPath != "" {
		paths = append(paths, cfg.LayoutPath)
	}
	if cfg.ModulesPath != "" {
		paths = append(paths, cfg.ModulesPath)
	}

	model, err := loader.Load(ctx, paths...)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.", "pages", len(model.Pages))

	reg := registry.New(ctx)
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	reg.PopulateDefinitionsFromModel(model)
	if err := reg.ValidateRegistry(ctx, model); err != nil {
		// Mismatch between code and layout.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		ctx:       ctx,
		outW:      outW,
		logger:    logger,
		config:    cfg,
		registry:  reg,
		model:     model,
		assembler: assembly.New(reg),
		store:     inmemorystore.New(),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Store returns the catalog of assembled pages.
func (a *App) Store() pagestore.Store {
	return a.store
}
