package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeString decodes an optional string attribute into target.
func decodeString(attrs hcl.Attributes, name string, target *string) hcl.Diagnostics {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}
	return gohcl.DecodeExpression(attr.Expr, nil, target)
}

// decodeBool decodes an optional bool attribute into target.
func decodeBool(attrs hcl.Attributes, name string, target *bool) hcl.Diagnostics {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}
	return gohcl.DecodeExpression(attr.Expr, nil, target)
}

// decodeStringList decodes an optional list of strings. A single string is
// accepted as a one-element list, so `access = "Everyone"` works.
func decodeStringList(attrs hcl.Attributes, name string, target *[]string) hcl.Diagnostics {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return diags
	}
	if val.Type() == cty.String {
		val = cty.TupleVal([]cty.Value{val})
	}

	return convertInto(attr, val, cty.List(cty.String), target)
}

// decodeStringMap decodes an optional object/map of strings.
func decodeStringMap(attrs hcl.Attributes, name string, target *map[string]string) hcl.Diagnostics {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return diags
	}
	return convertInto(attr, val, cty.Map(cty.String), target)
}

// convertInto converts val to ty and stores it in the Go value target points to.
func convertInto(attr *hcl.Attribute, val cty.Value, ty cty.Type, target any) hcl.Diagnostics {
	if val.IsNull() {
		return nil
	}
	converted, err := convert.Convert(val, ty)
	if err != nil {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  fmt.Sprintf("Invalid value for %q", attr.Name),
			Detail:   fmt.Sprintf("Expected %s: %s.", ty.FriendlyName(), err),
			Subject:  attr.Expr.Range().Ptr(),
		}}
	}
	if err := gocty.FromCtyValue(converted, target); err != nil {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  fmt.Sprintf("Invalid value for %q", attr.Name),
			Detail:   err.Error(),
			Subject:  attr.Expr.Range().Ptr(),
		}}
	}
	return nil
}
