package wsrp

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/pagegrid/internal/application"
	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// NewRemotePortlet builds a WSRP application. The content id is
// `<producer>.<portlet handle>`, e.g. `selfv2./samples-remotecontroller-portlet.RemoteControl`.
func NewRemotePortlet(spec *config.ApplicationSpec) (*application.Application, error) {
	producer, handle, ok := strings.Cut(spec.ContentID, ".")
	if !ok || producer == "" || handle == "" {
		return nil, fmt.Errorf("%w: wsrp content id %q must look like <producer>.<portlet handle>", application.ErrInvalidArgument, spec.ContentID)
	}
	return registry.ApplicationFromSpec(application.TypeWSRP, spec)
}

// Register registers the wsrp application type.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterApplication(string(application.TypeWSRP), &registry.RegisteredApplication{
		Type:        application.TypeWSRP,
		Description: "Remote portlet consumed over WSRP",
		New:         NewRemotePortlet,
	})
}
