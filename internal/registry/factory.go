package registry

import (
	"fmt"

	"github.com/specialistvlad/pagegrid/internal/application"
	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/security"
)

// ApplicationFromSpec builds an application of type typ carrying every
// generic attribute of spec. Modules call it after their own content id checks.
func ApplicationFromSpec(typ application.Type, spec *config.ApplicationSpec) (*application.Application, error) {
	app, err := application.New(typ, spec.Name, spec.ContentID)
	if err != nil {
		return nil, err
	}
	app.Title = spec.Title
	app.Description = spec.Description
	if len(spec.Access) > 0 {
		access, err := security.ParsePermission(spec.Access...)
		if err != nil {
			return nil, fmt.Errorf("access permission: %w", err)
		}
		app.AccessPermission = access
	}
	return app.WithPreferences(spec.Preferences), nil
}
