package composition

import (
	"errors"
	"reflect"
	"slices"

	"github.com/specialistvlad/pagegrid/internal/security"
)

var (
	// ErrIllegalState is returned when a terminal operation is called out of sequence.
	ErrIllegalState = errors.New("illegal builder state")
	// ErrInvalidArgument is returned when a builder received malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Template selects how a container lays out its children. Besides the two
// well-known templates it may be any template reference; it is never resolved
// or validated here.
type Template string

const (
	// TemplateColumns lays children out side by side.
	TemplateColumns Template = "system:/groovy/portal/webui/container/UITableColumnContainer.gtmpl"
	// TemplateRows stacks children vertically.
	TemplateRows Template = "system:/groovy/portal/webui/container/UIContainer.gtmpl"
)

// Name returns "columns" or "rows" for the well-known templates and the raw
// reference otherwise.
func (t Template) Name() string {
	switch t {
	case TemplateColumns:
		return "columns"
	case TemplateRows:
		return "rows"
	default:
		return string(t)
	}
}

// Default permissions applied to containers whose permissions were never set.
var (
	DefaultAccessPermission         = security.Everyone
	DefaultMoveAppsPermission       = security.Everyone
	DefaultMoveContainersPermission = security.Everyone
)

// ContainerItem is anything that can be placed inside a Container: another
// Container or a leaf item such as an application.
type ContainerItem interface {
	// ItemKind names the kind of node, e.g. "container" or "portlet".
	ItemKind() string
}

// KindContainer is the ItemKind of *Container.
const KindContainer = "container"

// Container is a node of the layout tree. A built Container is treated as
// immutable, but nothing enforces it: the fields are exported and nested
// containers are shared by pointer between snapshots of the same builder.
// Callers must not modify a Container after it was built.
type Container struct {
	Template                 Template
	Children                 []ContainerItem
	AccessPermission         security.Permission
	MoveAppsPermission       security.Permission
	MoveContainersPermission security.Permission
}

// ItemKind implements ContainerItem.
func (c *Container) ItemKind() string {
	return KindContainer
}

// clone returns a copy of c that does not share its children slice.
func (c *Container) clone() *Container {
	cp := *c
	cp.Children = slices.Clone(c.Children)
	return &cp
}

// isNil reports whether item is nil or wraps a nil pointer.
func isNil(item ContainerItem) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
