// Package page provides the top-level artifact of a layout: a Page and the
// Builder that assembles it. Builder embeds composition.LayoutBuilder, so
// every container stack spawned from it returns to the Builder on BuildToTop.
package page

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/specialistvlad/pagegrid/internal/composition"
	"github.com/specialistvlad/pagegrid/internal/pageid"
	"github.com/specialistvlad/pagegrid/internal/security"
)

// ErrInvalidArgument is returned by Build when the page metadata is incomplete.
var ErrInvalidArgument = composition.ErrInvalidArgument

// Default page permissions.
var (
	DefaultAccessPermission = security.Everyone
	DefaultEditPermission   = security.MustParsePermission("*:/platform/administrators")
)

// Page is a built page: its identity, metadata and layout tree.
type Page struct {
	ID pageid.PageID
	// StorageID is a name-based UUID derived from ID, stable across runs.
	StorageID        string
	DisplayName      string
	Description      string
	AccessPermission security.Permission
	EditPermission   security.Permission
	ShowMaxWindow    bool
	Children         []composition.ContainerItem
}

// ErrSkip can be returned by a WalkFunc to skip the children of a container.
var ErrSkip = errors.New("skip container")

// WalkFunc is called for every item of the tree, depth-first in child order.
// depth is 0 for top-level items.
type WalkFunc func(item composition.ContainerItem, depth int) error

// Walk visits every item of the page.
func (p *Page) Walk(fn WalkFunc) error {
	return walk(p.Children, 0, fn)
}

func walk(items []composition.ContainerItem, depth int, fn WalkFunc) error {
	for _, item := range items {
		err := fn(item, depth)
		if errors.Is(err, ErrSkip) {
			continue
		}
		if err != nil {
			return err
		}
		if c, ok := item.(*composition.Container); ok {
			if err := walk(c.Children, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Builder assembles a Page.
type Builder struct {
	*composition.LayoutBuilder[*Builder]

	site             pageid.SiteKey
	name             string
	displayName      string
	description      string
	accessPermission security.Permission
	editPermission   security.Permission
	showMaxWindow    bool
}

// NewBuilder returns an empty page builder.
func NewBuilder() *Builder {
	b := &Builder{}
	b.LayoutBuilder = composition.NewLayoutBuilder(b)
	return b
}

// Site sets the site the page belongs to.
func (b *Builder) Site(site pageid.SiteKey) *Builder {
	b.site = site
	return b
}

// Name sets the page name, unique within its site.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// DisplayName sets the human readable title of the page.
func (b *Builder) DisplayName(displayName string) *Builder {
	b.displayName = displayName
	return b
}

// Description sets the page description.
func (b *Builder) Description(description string) *Builder {
	b.description = description
	return b
}

// AccessPermission sets who may view the page.
func (b *Builder) AccessPermission(p security.Permission) *Builder {
	b.accessPermission = p
	return b
}

// EditPermission sets who may edit the page.
func (b *Builder) EditPermission(p security.Permission) *Builder {
	b.editPermission = p
	return b
}

// ShowMaxWindow makes the page render its single application maximized.
func (b *Builder) ShowMaxWindow(show bool) *Builder {
	b.showMaxWindow = show
	return b
}

// Build returns the page. It may be called repeatedly; each call copies the
// top-level children accumulated so far.
func (b *Builder) Build() (*Page, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	if b.site.IsZero() {
		return nil, fmt.Errorf("%w: page site must be set", ErrInvalidArgument)
	}
	if b.name == "" {
		return nil, fmt.Errorf("%w: page name must not be empty", ErrInvalidArgument)
	}

	id := pageid.New(b.site, b.name)
	displayName := b.displayName
	if displayName == "" {
		displayName = b.name
	}

	return &Page{
		ID:               id,
		StorageID:        uuid.NewSHA1(uuid.NameSpaceURL, []byte("page:"+id.String())).String(),
		DisplayName:      displayName,
		Description:      b.description,
		AccessPermission: b.accessPermission.Or(DefaultAccessPermission),
		EditPermission:   b.editPermission.Or(DefaultEditPermission),
		ShowMaxWindow:    b.showMaxWindow,
		Children:         b.Items(),
	}, nil
}
