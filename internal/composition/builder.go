package composition

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/pagegrid/internal/security"
)

// State is the lifecycle state of a ContainerBuilder.
type State int

const (
	// StateOpen accepts terminal calls.
	StateOpen State = iota
	// StateFinalized rejects terminal calls; Build still works.
	StateFinalized
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ContainerBuilder accumulates the children and attributes of one Container.
// T is the type of the top-level builder that BuildToTop returns.
//
// A ContainerBuilder only holds back-references: parent and top never point
// at their pending child builders, they only adopt the Containers produced by
// terminal calls.
type ContainerBuilder[T any] struct {
	parent *ContainerBuilder[T]
	top    *LayoutBuilder[T]

	template                 Template
	children                 []ContainerItem
	accessPermission         security.Permission
	moveAppsPermission       security.Permission
	moveContainersPermission security.Permission

	state State
	err   error
}

// NewContainerBuilder returns a detached builder with no parent and no top.
// Only Build is useful on it; both terminal calls fail with ErrIllegalState.
func NewContainerBuilder[T any](template Template) *ContainerBuilder[T] {
	return newContainerBuilder[T](nil, nil, template)
}

func newContainerBuilder[T any](parent *ContainerBuilder[T], top *LayoutBuilder[T], template Template) *ContainerBuilder[T] {
	b := &ContainerBuilder[T]{
		parent:   parent,
		top:      top,
		template: template,
	}
	if template == "" {
		b.fail(fmt.Errorf("%w: container template must not be empty", ErrInvalidArgument))
	}
	return b
}

func newCustomContainerBuilder[T any](parent *ContainerBuilder[T], top *LayoutBuilder[T], container *Container) *ContainerBuilder[T] {
	if container == nil {
		b := &ContainerBuilder[T]{parent: parent, top: top}
		b.fail(fmt.Errorf("%w: custom container must not be nil", ErrInvalidArgument))
		return b
	}

	seed := container.clone()
	b := newContainerBuilder(parent, top, seed.Template)
	b.children = seed.Children
	b.accessPermission = seed.AccessPermission
	b.moveAppsPermission = seed.MoveAppsPermission
	b.moveContainersPermission = seed.MoveContainersPermission
	return b
}

// fail records the first argument error seen by the builder.
func (b *ContainerBuilder[T]) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// State returns the lifecycle state of the builder.
func (b *ContainerBuilder[T]) State() State {
	return b.state
}

// Err returns the first invalid-argument error recorded on the builder.
func (b *ContainerBuilder[T]) Err() error {
	return b.err
}

// Parent returns the builder that spawned b, or nil when b was spawned by the
// top-level builder.
func (b *ContainerBuilder[T]) Parent() *ContainerBuilder[T] {
	return b.parent
}

// Depth returns the number of container builders above b.
func (b *ContainerBuilder[T]) Depth() int {
	depth := 0
	for p := b.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Child appends item to the pending children.
func (b *ContainerBuilder[T]) Child(item ContainerItem) *ContainerBuilder[T] {
	if isNil(item) {
		b.fail(fmt.Errorf("%w: child must not be nil", ErrInvalidArgument))
		return b
	}
	b.children = append(b.children, item)
	return b
}

// Children replaces the pending children with items. A nil slice clears them.
func (b *ContainerBuilder[T]) Children(items []ContainerItem) *ContainerBuilder[T] {
	if items == nil {
		b.children = nil
		return b
	}
	if slices.ContainsFunc(items, isNil) {
		b.fail(fmt.Errorf("%w: children must not contain nil items", ErrInvalidArgument))
		return b
	}
	b.children = slices.Clone(items)
	return b
}

// AccessPermission sets who may access the container. Ignored once finalized.
func (b *ContainerBuilder[T]) AccessPermission(p security.Permission) *ContainerBuilder[T] {
	if b.state == StateOpen {
		b.accessPermission = p
	}
	return b
}

// MoveAppsPermission sets who may move, add and remove child applications.
// Ignored once finalized.
func (b *ContainerBuilder[T]) MoveAppsPermission(p security.Permission) *ContainerBuilder[T] {
	if b.state == StateOpen {
		b.moveAppsPermission = p
	}
	return b
}

// MoveContainersPermission sets who may move, add and remove child
// containers. Ignored once finalized.
func (b *ContainerBuilder[T]) MoveContainersPermission(p security.Permission) *ContainerBuilder[T] {
	if b.state == StateOpen {
		b.moveContainersPermission = p
	}
	return b
}

// NewColumnsBuilder starts a child builder whose children render as columns.
func (b *ContainerBuilder[T]) NewColumnsBuilder() *ContainerBuilder[T] {
	return newContainerBuilder(b, b.top, TemplateColumns)
}

// NewRowsBuilder starts a child builder whose children render as rows.
func (b *ContainerBuilder[T]) NewRowsBuilder() *ContainerBuilder[T] {
	return newContainerBuilder(b, b.top, TemplateRows)
}

// NewCustomContainerBuilder starts a child builder seeded with the template,
// children and permissions of container.
func (b *ContainerBuilder[T]) NewCustomContainerBuilder(container *Container) *ContainerBuilder[T] {
	return newCustomContainerBuilder(b, b.top, container)
}

// NewTemplateContainerBuilder starts a child builder for an arbitrary
// template reference, with default permissions.
func (b *ContainerBuilder[T]) NewTemplateContainerBuilder(template Template) *ContainerBuilder[T] {
	return newContainerBuilder(b, b.top, template)
}

// Build returns a snapshot of the container as accumulated so far. It does
// not change the builder state nor touch the parent or top, and may be called
// any number of times.
func (b *ContainerBuilder[T]) Build() (*Container, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &Container{
		Template:                 b.template,
		Children:                 slices.Clone(b.children),
		AccessPermission:         b.accessPermission.Or(DefaultAccessPermission),
		MoveAppsPermission:       b.moveAppsPermission.Or(DefaultMoveAppsPermission),
		MoveContainersPermission: b.moveContainersPermission.Or(DefaultMoveContainersPermission),
	}, nil
}

// checkTerminal validates that b itself may be finalized.
func (b *ContainerBuilder[T]) checkTerminal() error {
	if b.state == StateFinalized {
		return fmt.Errorf("%w: container builder was already built", ErrIllegalState)
	}
	return b.err
}

// BuildToParent builds the container, appends it to the parent's children,
// finalizes b and returns the parent.
func (b *ContainerBuilder[T]) BuildToParent() (*ContainerBuilder[T], error) {
	if err := b.checkTerminal(); err != nil {
		return nil, err
	}
	if b.parent == nil {
		return nil, fmt.Errorf("%w: container builder has no parent builder", ErrIllegalState)
	}
	if b.parent.state == StateFinalized {
		return nil, fmt.Errorf("%w: parent container builder was already built", ErrIllegalState)
	}

	c, err := b.Build()
	if err != nil {
		return nil, err
	}
	b.parent.children = append(b.parent.children, c)
	b.state = StateFinalized
	return b.parent, nil
}

// BuildToTop finishes b and every builder above it, then returns the
// top-level builder. When b has a parent this is BuildToParent followed by
// BuildToTop on the parent. The whole stack is validated before anything is
// folded, so a failing call leaves every builder untouched.
func (b *ContainerBuilder[T]) BuildToTop() (T, error) {
	var zero T
	if b.top == nil {
		if err := b.checkTerminal(); err != nil {
			return zero, err
		}
		return zero, fmt.Errorf("%w: container builder has no top-level builder", ErrIllegalState)
	}
	for cur := b; cur != nil; cur = cur.parent {
		if err := cur.checkTerminal(); err != nil {
			return zero, fmt.Errorf("depth %d: %w", cur.Depth(), err)
		}
	}

	if b.parent != nil {
		parent, err := b.BuildToParent()
		if err != nil {
			return zero, err
		}
		return parent.BuildToTop()
	}

	c, err := b.Build()
	if err != nil {
		return zero, err
	}
	b.top.adopt(c)
	b.state = StateFinalized
	return b.top.owner, nil
}
