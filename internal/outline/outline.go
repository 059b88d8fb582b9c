// Package outline renders built pages for humans and machines: an indented
// text outline printed by the CLI, and a cty value that serializes to JSON
// for the health check server's /pages endpoint.
package outline

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/specialistvlad/pagegrid/internal/application"
	"github.com/specialistvlad/pagegrid/internal/composition"
	"github.com/specialistvlad/pagegrid/internal/page"
)

const indent = "  "

// Write prints p as an indented outline, one item per line in child order.
// The output only depends on p, so it is stable across runs.
func Write(w io.Writer, p *page.Page) error {
	header := fmt.Sprintf("page %s %q access=%s edit=%s", p.ID, p.DisplayName, p.AccessPermission, p.EditPermission)
	if p.ShowMaxWindow {
		header += " max_window"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	return p.Walk(func(item composition.ContainerItem, depth int) error {
		_, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat(indent, depth+1), line(item))
		return err
	})
}

func line(item composition.ContainerItem) string {
	switch v := item.(type) {
	case *composition.Container:
		return fmt.Sprintf("%s access=%s move_apps=%s move_containers=%s",
			v.Template.Name(), v.AccessPermission, v.MoveAppsPermission, v.MoveContainersPermission)
	case *application.Application:
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s %s content=%s", v.Type, v.Name, v.ContentID)
		if v.Title != "" {
			fmt.Fprintf(&sb, " title=%q", v.Title)
		}
		fmt.Fprintf(&sb, " access=%s", v.AccessPermission)
		if len(v.Preferences) > 0 {
			prefs := make([]string, 0, len(v.Preferences))
			for _, k := range slices.Sorted(maps.Keys(v.Preferences)) {
				prefs = append(prefs, fmt.Sprintf("%s=%q", k, v.Preferences[k]))
			}
			fmt.Fprintf(&sb, " preferences={%s}", strings.Join(prefs, ", "))
		}
		return sb.String()
	default:
		return item.ItemKind()
	}
}
