package app

import (
	"github.com/specialistvlad/pagegrid/internal/registry"
	"github.com/specialistvlad/pagegrid/modules/gadget"
	"github.com/specialistvlad/pagegrid/modules/portlet"
	"github.com/specialistvlad/pagegrid/modules/wsrp"
)

// coreModules is the definitive list of all application modules that are
// compiled into the pagegrid binary.
var coreModules = []registry.Module{
	&portlet.Module{},
	&gadget.Module{},
	&wsrp.Module{},
}
