package composition

import (
	"fmt"
	"slices"
)

// LayoutBuilder is the root of a builder stack. It is meant to be embedded by
// the builder of the final artifact, which passes itself as owner so that
// Child, Children and BuildToTop hand back the embedding type.
type LayoutBuilder[T any] struct {
	owner    T
	children []ContainerItem
	err      error
}

// NewLayoutBuilder returns the stack root for owner.
func NewLayoutBuilder[T any](owner T) *LayoutBuilder[T] {
	return &LayoutBuilder[T]{owner: owner}
}

// adopt appends a finished top-level item.
func (l *LayoutBuilder[T]) adopt(item ContainerItem) {
	l.children = append(l.children, item)
}

// Child appends item to the top-level children.
func (l *LayoutBuilder[T]) Child(item ContainerItem) T {
	if isNil(item) {
		if l.err == nil {
			l.err = fmt.Errorf("%w: child must not be nil", ErrInvalidArgument)
		}
		return l.owner
	}
	l.adopt(item)
	return l.owner
}

// Children replaces the top-level children with items. A nil slice clears them.
func (l *LayoutBuilder[T]) Children(items []ContainerItem) T {
	if items == nil {
		l.children = nil
		return l.owner
	}
	if slices.ContainsFunc(items, isNil) {
		if l.err == nil {
			l.err = fmt.Errorf("%w: children must not contain nil items", ErrInvalidArgument)
		}
		return l.owner
	}
	l.children = slices.Clone(items)
	return l.owner
}

// NewColumnsBuilder starts a top-level builder whose children render as columns.
func (l *LayoutBuilder[T]) NewColumnsBuilder() *ContainerBuilder[T] {
	return newContainerBuilder[T](nil, l, TemplateColumns)
}

// NewRowsBuilder starts a top-level builder whose children render as rows.
func (l *LayoutBuilder[T]) NewRowsBuilder() *ContainerBuilder[T] {
	return newContainerBuilder[T](nil, l, TemplateRows)
}

// NewCustomContainerBuilder starts a top-level builder seeded from container.
func (l *LayoutBuilder[T]) NewCustomContainerBuilder(container *Container) *ContainerBuilder[T] {
	return newCustomContainerBuilder[T](nil, l, container)
}

// NewTemplateContainerBuilder starts a top-level builder for an arbitrary
// template reference.
func (l *LayoutBuilder[T]) NewTemplateContainerBuilder(template Template) *ContainerBuilder[T] {
	return newContainerBuilder[T](nil, l, template)
}

// Items returns a copy of the top-level children accumulated so far.
func (l *LayoutBuilder[T]) Items() []ContainerItem {
	return slices.Clone(l.children)
}

// Err returns the first invalid-argument error recorded on the layout.
func (l *LayoutBuilder[T]) Err() error {
	return l.err
}
