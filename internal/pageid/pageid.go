// Package pageid parses and formats page identifiers of the form
// `<site_type>.<site_name>.<page_name>`, e.g. `portal.classic.home`.
package pageid

import (
	"fmt"
	"regexp"
	"strings"
)

// SiteType is the kind of site a page belongs to.
type SiteType string

const (
	SiteTypePortal SiteType = "portal"
	SiteTypeGroup  SiteType = "group"
	SiteTypeUser   SiteType = "user"
)

// segmentRegex matches a single name segment. Group site names keep their
// slashes, e.g. `/platform/administrators`.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_/-]+$`)

// isValidSegment rejects names that are syntactically valid but meaningless.
func isValidSegment(name string) bool {
	return segmentRegex.MatchString(name) && name != "/" && name != "-"
}

// ParseSiteType validates a site type string.
func ParseSiteType(raw string) (SiteType, error) {
	switch st := SiteType(raw); st {
	case SiteTypePortal, SiteTypeGroup, SiteTypeUser:
		return st, nil
	default:
		return "", fmt.Errorf("unknown site type %q: must be 'portal', 'group' or 'user'", raw)
	}
}

// SiteKey identifies a site.
type SiteKey struct {
	Type SiteType
	Name string
}

// String returns `<type>.<name>`.
func (k SiteKey) String() string {
	return string(k.Type) + "." + k.Name
}

// IsZero reports whether the key is empty.
func (k SiteKey) IsZero() bool {
	return k == SiteKey{}
}

// ParseSiteKey parses `<type>.<name>`.
func ParseSiteKey(raw string) (SiteKey, error) {
	parts, err := split(raw, 2)
	if err != nil {
		return SiteKey{}, err
	}
	st, err := ParseSiteType(parts[0])
	if err != nil {
		return SiteKey{}, err
	}
	return SiteKey{Type: st, Name: parts[1]}, nil
}

// PageID identifies a page within a site.
type PageID struct {
	Site SiteKey
	Name string
}

// New returns the id of page name within site.
func New(site SiteKey, name string) PageID {
	return PageID{Site: site, Name: name}
}

// String returns the canonical `<type>.<site>.<page>` form.
func (id PageID) String() string {
	return id.Site.String() + "." + id.Name
}

// Parse creates a PageID from its canonical string representation.
func Parse(raw string) (PageID, error) {
	parts, err := split(raw, 3)
	if err != nil {
		return PageID{}, err
	}
	st, err := ParseSiteType(parts[0])
	if err != nil {
		return PageID{}, err
	}
	return PageID{Site: SiteKey{Type: st, Name: parts[1]}, Name: parts[2]}, nil
}

// split breaks raw into exactly n validated segments.
func split(raw string, n int) ([]string, error) {
	if raw == "" {
		return nil, fmt.Errorf("identifier cannot be empty")
	}
	parts := strings.Split(raw, ".")
	if len(parts) != n {
		return nil, fmt.Errorf("identifier %q must have %d segments, got %d", raw, n, len(parts))
	}
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("identifier %q contains empty segment", raw)
		}
		if !isValidSegment(p) {
			return nil, fmt.Errorf("invalid segment name: %q", p)
		}
	}
	return parts, nil
}
