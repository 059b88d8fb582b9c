package assembly

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pagegrid/internal/composition"
	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/ctxlog"
	"github.com/specialistvlad/pagegrid/internal/page"
	"github.com/specialistvlad/pagegrid/internal/pageid"
	"github.com/specialistvlad/pagegrid/internal/registry"
	"github.com/specialistvlad/pagegrid/internal/security"
)

// containerBuilder is the builder instantiation used for every page.
type containerBuilder = composition.ContainerBuilder[*page.Builder]

// spawner is implemented by both the page builder and container builders.
type spawner interface {
	NewColumnsBuilder() *containerBuilder
	NewRowsBuilder() *containerBuilder
	NewTemplateContainerBuilder(template composition.Template) *containerBuilder
}

// Assembler builds pages using the application factories of a registry.
type Assembler struct {
	registry *registry.Registry
}

// New returns an Assembler backed by reg.
func New(reg *registry.Registry) *Assembler {
	return &Assembler{registry: reg}
}

// Assemble builds the page described by cp.
func (a *Assembler) Assemble(ctx context.Context, cp *config.Page) (*page.Page, error) {
	site, err := pageid.ParseSiteKey(cp.Site)
	if err != nil {
		return nil, fmt.Errorf("page %q: %w", cp.Name, err)
	}
	access, err := parsePermission(cp.Access)
	if err != nil {
		return nil, fmt.Errorf("page %q: access: %w", cp.Name, err)
	}
	edit, err := parsePermission(cp.Edit)
	if err != nil {
		return nil, fmt.Errorf("page %q: edit: %w", cp.Name, err)
	}

	id := pageid.New(site, cp.Name)
	ctx, logger := ctxlog.With(ctx, "page", id.String())
	logger.Debug("Assembling page.", "source", cp.Source)

	pb := page.NewBuilder().
		Site(site).
		Name(cp.Name).
		DisplayName(cp.DisplayName).
		Description(cp.Description).
		AccessPermission(access).
		EditPermission(edit).
		ShowMaxWindow(cp.ShowMaxWindow)

	for _, node := range cp.Layout {
		switch node.Kind {
		case config.NodeApplication:
			app, err := a.registry.NewApplication(node.Application)
			if err != nil {
				return nil, fmt.Errorf("page %q: %w", cp.Name, err)
			}
			pb.Child(app)
		case config.NodeContainer:
			cb := spawn(pb, node.Template)
			if err := a.fill(ctx, cb, node, 0); err != nil {
				return nil, fmt.Errorf("page %q: %w", cp.Name, err)
			}
			if _, err := cb.BuildToTop(); err != nil {
				return nil, fmt.Errorf("page %q: %w", cp.Name, err)
			}
		}
	}

	p, err := pb.Build()
	if err != nil {
		return nil, fmt.Errorf("page %q: %w", cp.Name, err)
	}
	logger.Debug("Page assembled.", "items", len(p.Children))
	return p, nil
}

// fill configures cb from node and adds its children. Nested containers are
// built into cb before fill returns.
func (a *Assembler) fill(ctx context.Context, cb *containerBuilder, node *config.Node, depth int) error {
	ctxlog.FromContext(ctx).Debug("Building container.", "template", node.Template, "depth", depth)

	perms := []struct {
		name    string
		entries []string
		set     func(security.Permission) *containerBuilder
	}{
		{"access", node.Access, cb.AccessPermission},
		{"move_apps", node.MoveApps, cb.MoveAppsPermission},
		{"move_containers", node.MoveContainers, cb.MoveContainersPermission},
	}
	for _, perm := range perms {
		p, err := parsePermission(perm.entries)
		if err != nil {
			return fmt.Errorf("container %q at depth %d: %s: %w", node.Template, depth, perm.name, err)
		}
		perm.set(p)
	}

	for _, child := range node.Children {
		switch child.Kind {
		case config.NodeApplication:
			app, err := a.registry.NewApplication(child.Application)
			if err != nil {
				return err
			}
			cb.Child(app)
		case config.NodeContainer:
			nested := spawn(cb, child.Template)
			if err := a.fill(ctx, nested, child, depth+1); err != nil {
				return err
			}
			if _, err := nested.BuildToParent(); err != nil {
				return fmt.Errorf("container %q at depth %d: %w", child.Template, depth+1, err)
			}
		}
	}
	return cb.Err()
}

// spawn opens a container builder for a config template name.
func spawn(s spawner, template string) *containerBuilder {
	switch template {
	case config.TemplateColumns:
		return s.NewColumnsBuilder()
	case config.TemplateRows:
		return s.NewRowsBuilder()
	default:
		return s.NewTemplateContainerBuilder(composition.Template(template))
	}
}

// parsePermission returns the unset permission for an empty list so that
// the builders apply their defaults.
func parsePermission(entries []string) (security.Permission, error) {
	if len(entries) == 0 {
		return security.Permission{}, nil
	}
	return security.ParsePermission(entries...)
}
