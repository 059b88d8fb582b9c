package config

// Model is the unified, format-agnostic representation of every loaded
// layout file.
type Model struct {
	Pages            []*Page
	ApplicationTypes map[string]*ApplicationType
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{ApplicationTypes: make(map[string]*ApplicationType)}
}

// NodeKind distinguishes container nodes from application leaves.
type NodeKind int

const (
	NodeContainer NodeKind = iota
	NodeApplication
)

// String implements fmt.Stringer.
func (k NodeKind) String() string {
	if k == NodeApplication {
		return "application"
	}
	return "container"
}

// Page is the format-agnostic representation of a `page` block.
type Page struct {
	Name          string
	Site          string
	DisplayName   string
	Description   string
	Access        []string
	Edit          []string
	ShowMaxWindow bool
	Layout        []*Node
	Source        string
}

// Symbolic templates. Any other Template value is an opaque template reference.
const (
	TemplateColumns = "columns"
	TemplateRows    = "rows"
)

// Node is a container or an application inside a page layout. Children keep
// their declaration order.
type Node struct {
	Kind NodeKind

	// Container fields.
	Template       string
	Access         []string
	MoveApps       []string
	MoveContainers []string
	Children       []*Node

	// Application fields.
	Application *ApplicationSpec
}

// ApplicationSpec is the format-agnostic representation of an `application` block.
type ApplicationSpec struct {
	Type        string
	Name        string
	ContentID   string
	Title       string
	Description string
	Access      []string
	Preferences map[string]string
}

// ApplicationType declares an application kind that layouts may reference.
type ApplicationType struct {
	Name        string
	Description string
	Source      string
}

// ApplicationTypesUsed returns the distinct application types referenced by
// the model's pages, in first-use order.
func (m *Model) ApplicationTypesUsed() []string {
	var out []string
	seen := make(map[string]struct{})
	var visit func(nodes []*Node)
	visit = func(nodes []*Node) {
		for _, n := range nodes {
			if n.Kind == NodeApplication && n.Application != nil {
				if _, ok := seen[n.Application.Type]; !ok {
					seen[n.Application.Type] = struct{}{}
					out = append(out, n.Application.Type)
				}
				continue
			}
			visit(n.Children)
		}
	}
	for _, p := range m.Pages {
		visit(p.Layout)
	}
	return out
}
