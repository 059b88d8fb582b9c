package portlet

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/pagegrid/internal/application"
	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// NewPortlet builds a portlet application. The content id names the portlet
// as `<application>/<portlet>`, e.g. `web/NewsPortlet`.
func NewPortlet(spec *config.ApplicationSpec) (*application.Application, error) {
	appName, portletName, ok := strings.Cut(spec.ContentID, "/")
	if !ok || appName == "" || portletName == "" || strings.Contains(portletName, "/") {
		return nil, fmt.Errorf("%w: portlet content id %q must look like <application>/<portlet>", application.ErrInvalidArgument, spec.ContentID)
	}
	return registry.ApplicationFromSpec(application.TypePortlet, spec)
}

// Register registers the portlet application type.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterApplication(string(application.TypePortlet), &registry.RegisteredApplication{
		Type:        application.TypePortlet,
		Description: "Local JSR-286 portlet",
		New:         NewPortlet,
	})
}
