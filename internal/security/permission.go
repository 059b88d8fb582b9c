// Package security defines the opaque Permission value attached to pages,
// containers and applications. Permissions are carried, compared and printed
// here; evaluating them against a principal happens elsewhere.
package security

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// EveryoneToken is the textual form of the permission that grants access to all users.
const EveryoneToken = "Everyone"

// AnyMembershipType matches every membership type within a group.
const AnyMembershipType = "*"

// ErrInvalidMembership is returned when a membership string cannot be parsed.
var ErrInvalidMembership = errors.New("invalid membership")

// membershipRegex accepts `type:/group/path`, where type is a word or `*`.
var membershipRegex = regexp.MustCompile(`^(\*|[a-zA-Z0-9_-]+):(/[a-zA-Z0-9_.-]+(?:/[a-zA-Z0-9_.-]+)*)$`)

// Membership is a single `<type>:<group>` entry of a permission.
type Membership struct {
	Type  string
	Group string
}

// String returns the canonical `<type>:<group>` form.
func (m Membership) String() string {
	return m.Type + ":" + m.Group
}

// ParseMembership parses a single `<type>:<group>` string.
func ParseMembership(raw string) (Membership, error) {
	matches := membershipRegex.FindStringSubmatch(strings.TrimSpace(raw))
	if matches == nil {
		return Membership{}, fmt.Errorf("%w: %q", ErrInvalidMembership, raw)
	}
	return Membership{Type: matches[1], Group: matches[2]}, nil
}

// Permission is either "Everyone" or a set of memberships. The zero value is
// an unset permission; consumers substitute their own defaults for it.
type Permission struct {
	set         bool
	everyone    bool
	memberships []Membership
}

// Everyone grants access to all users.
var Everyone = Permission{set: true, everyone: true}

// NewPermission builds a permission from already parsed memberships.
// Duplicates are dropped and the remaining entries are kept sorted.
func NewPermission(memberships ...Membership) Permission {
	p := Permission{set: true}
	for _, m := range memberships {
		if !slices.Contains(p.memberships, m) {
			p.memberships = append(p.memberships, m)
		}
	}
	slices.SortFunc(p.memberships, func(a, b Membership) int {
		return strings.Compare(a.String(), b.String())
	})
	return p
}

// ParsePermission builds a permission from its textual entries. A single
// "Everyone" entry yields Everyone; mixing it with memberships is an error.
func ParsePermission(entries ...string) (Permission, error) {
	if len(entries) == 1 && strings.TrimSpace(entries[0]) == EveryoneToken {
		return Everyone, nil
	}

	memberships := make([]Membership, 0, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry) == EveryoneToken {
			return Permission{}, fmt.Errorf("%w: %q cannot be combined with other memberships", ErrInvalidMembership, EveryoneToken)
		}
		m, err := ParseMembership(entry)
		if err != nil {
			return Permission{}, err
		}
		memberships = append(memberships, m)
	}
	return NewPermission(memberships...), nil
}

// MustParsePermission is like ParsePermission but panics on error. Meant for
// package-level defaults.
func MustParsePermission(entries ...string) Permission {
	p, err := ParsePermission(entries...)
	if err != nil {
		panic(err)
	}
	return p
}

// IsZero reports whether the permission was never set.
func (p Permission) IsZero() bool {
	return !p.set
}

// IsEveryone reports whether the permission grants access to all users.
func (p Permission) IsEveryone() bool {
	return p.everyone
}

// Memberships returns a copy of the permission's memberships.
func (p Permission) Memberships() []Membership {
	return slices.Clone(p.memberships)
}

// Or returns p, or def when p is unset.
func (p Permission) Or(def Permission) Permission {
	if p.IsZero() {
		return def
	}
	return p
}

// Equal reports whether both permissions grant the same memberships.
func (p Permission) Equal(other Permission) bool {
	return p.set == other.set &&
		p.everyone == other.everyone &&
		slices.Equal(p.memberships, other.memberships)
}

// Strings returns the textual entries, the inverse of ParsePermission.
func (p Permission) Strings() []string {
	if p.everyone {
		return []string{EveryoneToken}
	}
	out := make([]string, 0, len(p.memberships))
	for _, m := range p.memberships {
		out = append(out, m.String())
	}
	return out
}

// String implements fmt.Stringer.
func (p Permission) String() string {
	if p.IsZero() {
		return "<unset>"
	}
	return "[" + strings.Join(p.Strings(), ", ") + "]"
}
