// Package application defines the leaf items of a page layout. An
// Application only references embeddable content by id; resolving that
// content is not done here.
package application

import (
	"errors"
	"fmt"
	"maps"
	"regexp"

	"github.com/specialistvlad/pagegrid/internal/security"
)

// ErrInvalidArgument is returned when an application is created from malformed input.
var ErrInvalidArgument = errors.New("invalid application")

// Type is the kind of embeddable content an application refers to.
type Type string

const (
	TypePortlet Type = "portlet"
	TypeGadget  Type = "gadget"
	TypeWSRP    Type = "wsrp"
)

// nameRegex restricts application names to identifier-like strings.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Application is a leaf of the layout tree.
type Application struct {
	Type             Type
	ContentID        string
	Name             string
	Title            string
	Description      string
	AccessPermission security.Permission
	Preferences      map[string]string
}

// New creates an application of the given type. The content id is the
// application-specific reference, e.g. "web/NewsPortlet".
func New(typ Type, name, contentID string) (*Application, error) {
	if typ == "" {
		return nil, fmt.Errorf("%w: type must not be empty", ErrInvalidArgument)
	}
	if contentID == "" {
		return nil, fmt.Errorf("%w: content id of %s application must not be empty", ErrInvalidArgument, typ)
	}
	if !nameRegex.MatchString(name) {
		return nil, fmt.Errorf("%w: invalid application name %q", ErrInvalidArgument, name)
	}
	return &Application{
		Type:             typ,
		ContentID:        contentID,
		Name:             name,
		AccessPermission: security.Everyone,
	}, nil
}

// ItemKind implements composition.ContainerItem.
func (a *Application) ItemKind() string {
	return string(a.Type)
}

// WithPreferences returns a copy of a with prefs merged over its preferences.
func (a *Application) WithPreferences(prefs map[string]string) *Application {
	cp := *a
	cp.Preferences = maps.Clone(a.Preferences)
	if cp.Preferences == nil && len(prefs) > 0 {
		cp.Preferences = make(map[string]string, len(prefs))
	}
	maps.Copy(cp.Preferences, prefs)
	return &cp
}
