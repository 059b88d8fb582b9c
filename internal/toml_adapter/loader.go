package toml_adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/ctxlog"
	"github.com/specialistvlad/pagegrid/internal/fsutil"
)

// Node kinds of the layout tables.
const (
	kindColumns     = "columns"
	kindRows        = "rows"
	kindContainer   = "container"
	kindApplication = "application"
)

type fileConfig struct {
	Pages            []pageConfig            `toml:"page"`
	ApplicationTypes []applicationTypeConfig `toml:"application_type"`
}

type applicationTypeConfig struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

type pageConfig struct {
	Name          string       `toml:"name"`
	Site          string       `toml:"site"`
	DisplayName   string       `toml:"display_name"`
	Description   string       `toml:"description"`
	Access        []string     `toml:"access"`
	Edit          []string     `toml:"edit"`
	ShowMaxWindow bool         `toml:"show_max_window"`
	Layout        []nodeConfig `toml:"layout"`
}

type nodeConfig struct {
	Kind           string       `toml:"kind"`
	Template       string       `toml:"template"`
	Access         []string     `toml:"access"`
	MoveApps       []string     `toml:"move_apps"`
	MoveContainers []string     `toml:"move_containers"`
	Children       []nodeConfig `toml:"children"`

	Type        string            `toml:"type"`
	Name        string            `toml:"name"`
	ContentID   string            `toml:"content_id"`
	Title       string            `toml:"title"`
	Description string            `toml:"description"`
	Preferences map[string]string `toml:"preferences"`
}

// Loader is the TOML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new TOML layout loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes every .toml file reachable from paths into a single model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(".toml", paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to find layout files: %w", err)
	}
	logger.Debug("Discovered TOML files.", "count", len(files))

	model := config.NewModel()
	for _, file := range files {
		m, err := loadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(m); err != nil {
			return nil, err
		}
	}
	return model, nil
}

func loadFile(ctx context.Context, file string) (*config.Model, error) {
	_, logger := ctxlog.With(ctx, "file", file)

	var raw fileConfig
	meta, err := toml.DecodeFile(file, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML file %s: %w", file, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unsupported keys in TOML file %s: %s", file, strings.Join(keys, ", "))
	}

	model := config.NewModel()
	for _, at := range raw.ApplicationTypes {
		if at.Name == "" {
			return nil, fmt.Errorf("application type without name in %s", file)
		}
		if prev, exists := model.ApplicationTypes[at.Name]; exists {
			return nil, fmt.Errorf("application type %q declared twice (%s and %s)", at.Name, prev.Source, file)
		}
		model.ApplicationTypes[at.Name] = &config.ApplicationType{Name: at.Name, Description: at.Description, Source: file}
	}

	for i, pc := range raw.Pages {
		p, err := translatePage(pc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode page #%d in %s: %w", i+1, file, err)
		}
		p.Source = file
		model.Pages = append(model.Pages, p)
	}

	logger.Debug("TOML file loaded.", "pages", len(model.Pages), "application_types", len(model.ApplicationTypes))
	return model, nil
}

func translatePage(pc pageConfig) (*config.Page, error) {
	if pc.Name == "" {
		return nil, fmt.Errorf("missing page name")
	}
	if pc.Site == "" {
		return nil, fmt.Errorf("page %q: missing site", pc.Name)
	}
	layout, err := translateNodes(pc.Layout, "layout")
	if err != nil {
		return nil, fmt.Errorf("page %q: %w", pc.Name, err)
	}
	return &config.Page{
		Name:          pc.Name,
		Site:          pc.Site,
		DisplayName:   pc.DisplayName,
		Description:   pc.Description,
		Access:        pc.Access,
		Edit:          pc.Edit,
		ShowMaxWindow: pc.ShowMaxWindow,
		Layout:        layout,
	}, nil
}

// translateNodes converts nodes in array order. path locates errors, e.g.
// "layout[0].children[2]".
func translateNodes(nodes []nodeConfig, path string) ([]*config.Node, error) {
	out := make([]*config.Node, 0, len(nodes))
	for i, nc := range nodes {
		at := fmt.Sprintf("%s[%d]", path, i)
		n, err := translateNode(nc, at)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func translateNode(nc nodeConfig, path string) (*config.Node, error) {
	switch nc.Kind {
	case kindApplication:
		if len(nc.Children) > 0 {
			return nil, fmt.Errorf("%s: application cannot have children", path)
		}
		if nc.Type == "" || nc.Name == "" || nc.ContentID == "" {
			return nil, fmt.Errorf("%s: application needs type, name and content_id", path)
		}
		return &config.Node{
			Kind: config.NodeApplication,
			Application: &config.ApplicationSpec{
				Type:        nc.Type,
				Name:        nc.Name,
				ContentID:   nc.ContentID,
				Title:       nc.Title,
				Description: nc.Description,
				Access:      nc.Access,
				Preferences: nc.Preferences,
			},
		}, nil
	case kindColumns, kindRows, kindContainer:
		template := nc.Kind
		if nc.Kind == kindContainer {
			if nc.Template == "" {
				return nil, fmt.Errorf("%s: container needs a template", path)
			}
			template = nc.Template
		} else if nc.Template != "" {
			return nil, fmt.Errorf("%s: %s does not take a template", path, nc.Kind)
		}
		children, err := translateNodes(nc.Children, path+".children")
		if err != nil {
			return nil, err
		}
		return &config.Node{
			Kind:           config.NodeContainer,
			Template:       template,
			Access:         nc.Access,
			MoveApps:       nc.MoveApps,
			MoveContainers: nc.MoveContainers,
			Children:       children,
		}, nil
	default:
		return nil, fmt.Errorf("%s: unknown kind %q", path, nc.Kind)
	}
}
