// This file turns decoded HCL bodies into the format-agnostic layout model.

package hcl_adapter

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/ctxlog"
)

// translatePage decodes the body of a `page` block.
func translatePage(ctx context.Context, pb *pageBlock) (*config.Page, hcl.Diagnostics) {
	ctx, logger := ctxlog.With(ctx, "page", pb.Name)
	logger.Debug("Translating HCL page to internal config model.")

	content, diags := pb.Body.Content(pageBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}

	p := &config.Page{Name: pb.Name}
	diags = append(diags, decodeString(content.Attributes, "site", &p.Site)...)
	diags = append(diags, decodeString(content.Attributes, "display_name", &p.DisplayName)...)
	diags = append(diags, decodeString(content.Attributes, "description", &p.Description)...)
	diags = append(diags, decodeStringList(content.Attributes, "access", &p.Access)...)
	diags = append(diags, decodeStringList(content.Attributes, "edit", &p.Edit)...)
	diags = append(diags, decodeBool(content.Attributes, "show_max_window", &p.ShowMaxWindow)...)

	layout, layoutDiags := translateChildren(ctx, content.Blocks, 0)
	diags = append(diags, layoutDiags...)
	p.Layout = layout

	if diags.HasErrors() {
		return nil, diags
	}
	return p, diags
}

// translateChildren decodes child blocks in source order.
func translateChildren(ctx context.Context, blocks hcl.Blocks, depth int) ([]*config.Node, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	nodes := make([]*config.Node, 0, len(blocks))

	for _, block := range blocks {
		var (
			node      *config.Node
			nodeDiags hcl.Diagnostics
		)
		switch block.Type {
		case blockColumns:
			node, nodeDiags = translateContainer(ctx, config.TemplateColumns, block.Body, depth)
		case blockRows:
			node, nodeDiags = translateContainer(ctx, config.TemplateRows, block.Body, depth)
		case blockContainer:
			node, nodeDiags = translateContainer(ctx, block.Labels[0], block.Body, depth)
			if block.Labels[0] == "" {
				nodeDiags = append(nodeDiags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Empty container template",
					Detail:   "A container block needs a non-empty template label.",
					Subject:  &block.LabelRanges[0],
				})
			}
		case blockApplication:
			node, nodeDiags = translateApplication(block)
		}
		diags = append(diags, nodeDiags...)
		if node != nil {
			nodes = append(nodes, node)
		}
	}

	return nodes, diags
}

// translateContainer decodes a container body and its descendants.
func translateContainer(ctx context.Context, template string, body hcl.Body, depth int) (*config.Node, hcl.Diagnostics) {
	ctxlog.FromContext(ctx).Debug("Translating container.", "template", template, "depth", depth)

	content, diags := body.Content(containerBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}

	node := &config.Node{Kind: config.NodeContainer, Template: template}
	diags = append(diags, decodeStringList(content.Attributes, "access", &node.Access)...)
	diags = append(diags, decodeStringList(content.Attributes, "move_apps", &node.MoveApps)...)
	diags = append(diags, decodeStringList(content.Attributes, "move_containers", &node.MoveContainers)...)

	children, childDiags := translateChildren(ctx, content.Blocks, depth+1)
	diags = append(diags, childDiags...)
	node.Children = children
	return node, diags
}

// translateApplication decodes an `application "<type>" "<name>"` block.
func translateApplication(block *hcl.Block) (*config.Node, hcl.Diagnostics) {
	content, diags := block.Body.Content(applicationBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}

	spec := &config.ApplicationSpec{Type: block.Labels[0], Name: block.Labels[1]}
	diags = append(diags, decodeString(content.Attributes, "content_id", &spec.ContentID)...)
	diags = append(diags, decodeString(content.Attributes, "title", &spec.Title)...)
	diags = append(diags, decodeString(content.Attributes, "description", &spec.Description)...)
	diags = append(diags, decodeStringList(content.Attributes, "access", &spec.Access)...)
	diags = append(diags, decodeStringMap(content.Attributes, "preferences", &spec.Preferences)...)

	return &config.Node{Kind: config.NodeApplication, Application: spec}, diags
}
