package gadget

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/pagegrid/internal/application"
	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// NewGadget builds a gadget application. The content id is the gadget name.
func NewGadget(spec *config.ApplicationSpec) (*application.Application, error) {
	if strings.Contains(spec.ContentID, "/") {
		return nil, fmt.Errorf("%w: gadget content id %q must be a plain gadget name", application.ErrInvalidArgument, spec.ContentID)
	}
	return registry.ApplicationFromSpec(application.TypeGadget, spec)
}

// Register registers the gadget application type.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterApplication(string(application.TypeGadget), &registry.RegisteredApplication{
		Type:        application.TypeGadget,
		Description: "OpenSocial gadget",
		New:         NewGadget,
	})
}
