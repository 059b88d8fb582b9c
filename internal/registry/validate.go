package registry

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/ctxlog"
)

// ValidateRegistry performs a strict parity check between layout files and
// Go code: every declared application type needs a Go factory and every
// application used by a page needs a registered type.
func (r *Registry) ValidateRegistry(ctx context.Context, model *config.Model) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range slices.Sorted(maps.Keys(r.DefinitionRegistry)) {
		def := r.DefinitionRegistry[name]
		if _, ok := r.ApplicationRegistry[name]; !ok {
			errs = append(errs, fmt.Sprintf("application type '%s' declared in %s has no registered Go factory", name, def.Source))
		}
	}

	for _, name := range model.ApplicationTypesUsed() {
		if _, ok := r.ApplicationRegistry[name]; !ok {
			errs = append(errs, fmt.Sprintf("application type '%s' is used by a page but not registered (known: %s)", name, strings.Join(r.Types(), ", ")))
			continue
		}
		if _, declared := r.DefinitionRegistry[name]; !declared && len(r.DefinitionRegistry) > 0 {
			logger.Warn("Application type is used but not declared in any layout file.", "type", name)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Registry validation passed.", "types", len(r.ApplicationRegistry))
	return nil
}
