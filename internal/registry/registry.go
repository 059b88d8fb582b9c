package registry

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/specialistvlad/pagegrid/internal/application"
	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/ctxlog"
)

// Module is the interface that all application modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Factory builds an application from its layout specification.
type Factory func(spec *config.ApplicationSpec) (*application.Application, error)

// RegisteredApplication holds the compiled Go parts of an application type.
type RegisteredApplication struct {
	Type        application.Type
	Description string
	New         Factory
}

// Registry holds all the registered application types and declarations for
// a single application instance.
type Registry struct {
	ApplicationRegistry map[string]*RegisteredApplication
	DefinitionRegistry  map[string]*config.ApplicationType

	logger *slog.Logger
}

// New creates and initializes a new Registry instance.
// Registration logs go to the logger carried by ctx.
func New(ctx context.Context) *Registry {
	return &Registry{
		logger:              ctxlog.FromContext(ctx),
		ApplicationRegistry: make(map[string]*RegisteredApplication),
		DefinitionRegistry:  make(map[string]*config.ApplicationType),
	}
}

// RegisterApplication registers the Go factory for an application type.
func (r *Registry) RegisterApplication(name string, app *RegisteredApplication) {
	if _, exists := r.ApplicationRegistry[name]; exists {
		panic(fmt.Sprintf("application type with name '%s' already registered", name))
	}
	r.logger.Debug("Registering application type.", "name", name)
	r.ApplicationRegistry[name] = app
}

// PopulateDefinitionsFromModel copies the declared application types from
// the config model into the registry.
func (r *Registry) PopulateDefinitionsFromModel(model *config.Model) {
	maps.Copy(r.DefinitionRegistry, model.ApplicationTypes)
}

// Types returns the registered application type names, sorted.
func (r *Registry) Types() []string {
	return slices.Sorted(maps.Keys(r.ApplicationRegistry))
}

// NewApplication builds the application described by spec using the factory
// registered for its type.
func (r *Registry) NewApplication(spec *config.ApplicationSpec) (*application.Application, error) {
	registered, ok := r.ApplicationRegistry[spec.Type]
	if !ok {
		return nil, fmt.Errorf("unknown application type '%s' for application '%s'", spec.Type, spec.Name)
	}
	app, err := registered.New(spec)
	if err != nil {
		return nil, fmt.Errorf("application '%s': %w", spec.Name, err)
	}
	return app, nil
}
