package outline

import (
	"fmt"
	"io"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/specialistvlad/pagegrid/internal/application"
	"github.com/specialistvlad/pagegrid/internal/composition"
	"github.com/specialistvlad/pagegrid/internal/page"
	"github.com/specialistvlad/pagegrid/internal/security"
)

// ToCty converts a built page into a cty object. Children become a tuple
// because containers and applications have different attribute sets.
func ToCty(p *page.Page) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"id":              cty.StringVal(p.ID.String()),
		"storage_id":      cty.StringVal(p.StorageID),
		"display_name":    cty.StringVal(p.DisplayName),
		"description":     cty.StringVal(p.Description),
		"access":          permissionToCty(p.AccessPermission),
		"edit":            permissionToCty(p.EditPermission),
		"show_max_window": cty.BoolVal(p.ShowMaxWindow),
		"children":        itemsToCty(p.Children),
	})
}

// PagesToCty converts pages into a tuple, keeping their order.
func PagesToCty(pages []*page.Page) cty.Value {
	if len(pages) == 0 {
		return cty.EmptyTupleVal
	}
	vals := make([]cty.Value, len(pages))
	for i, p := range pages {
		vals[i] = ToCty(p)
	}
	return cty.TupleVal(vals)
}

// WriteJSON writes pages as a JSON array.
func WriteJSON(w io.Writer, pages []*page.Page) error {
	val := PagesToCty(pages)
	buf, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return fmt.Errorf("failed to marshal pages: %w", err)
	}
	_, err = w.Write(buf)
	return err
}

func itemsToCty(items []composition.ContainerItem) cty.Value {
	if len(items) == 0 {
		return cty.EmptyTupleVal
	}
	vals := make([]cty.Value, len(items))
	for i, item := range items {
		vals[i] = itemToCty(item)
	}
	return cty.TupleVal(vals)
}

func itemToCty(item composition.ContainerItem) cty.Value {
	switch v := item.(type) {
	case *composition.Container:
		return cty.ObjectVal(map[string]cty.Value{
			"kind":            cty.StringVal(v.ItemKind()),
			"template":        cty.StringVal(string(v.Template)),
			"access":          permissionToCty(v.AccessPermission),
			"move_apps":       permissionToCty(v.MoveAppsPermission),
			"move_containers": permissionToCty(v.MoveContainersPermission),
			"children":        itemsToCty(v.Children),
		})
	case *application.Application:
		prefs := cty.MapValEmpty(cty.String)
		if len(v.Preferences) > 0 {
			m := make(map[string]cty.Value, len(v.Preferences))
			for k, pv := range v.Preferences {
				m[k] = cty.StringVal(pv)
			}
			prefs = cty.MapVal(m)
		}
		return cty.ObjectVal(map[string]cty.Value{
			"kind":        cty.StringVal(v.ItemKind()),
			"name":        cty.StringVal(v.Name),
			"content_id":  cty.StringVal(v.ContentID),
			"title":       cty.StringVal(v.Title),
			"description": cty.StringVal(v.Description),
			"access":      permissionToCty(v.AccessPermission),
			"preferences": prefs,
		})
	default:
		return cty.ObjectVal(map[string]cty.Value{
			"kind": cty.StringVal(item.ItemKind()),
		})
	}
}

func permissionToCty(p security.Permission) cty.Value {
	entries := p.Strings()
	if len(entries) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(entries))
	for i, e := range entries {
		vals[i] = cty.StringVal(e)
	}
	return cty.ListVal(vals)
}
