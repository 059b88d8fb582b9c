package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/ctxlog"
	"github.com/specialistvlad/pagegrid/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL layout loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file reachable from paths and merges their pages and
// application types into a single model. Pages keep file discovery order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to find layout files: %w", err)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()
	for _, file := range files {
		if err := l.loadFile(ctx, parser, file, model); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL loading complete.", "pages", len(model.Pages), "application_types", len(model.ApplicationTypes))
	return model, nil
}

func (l *Loader) loadFile(ctx context.Context, parser *hclparse.Parser, file string, model *config.Model) error {
	ctx, logger := ctxlog.With(ctx, "file", file)

	hclFile, diags := parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
	}

	for _, at := range root.ApplicationTypes {
		if prev, exists := model.ApplicationTypes[at.Name]; exists {
			return fmt.Errorf("application type %q declared twice (%s and %s)", at.Name, prev.Source, file)
		}
		def := &config.ApplicationType{Name: at.Name, Source: file}
		if at.Description != nil {
			def.Description = *at.Description
		}
		model.ApplicationTypes[at.Name] = def
	}

	for _, pb := range root.Pages {
		p, diags := translatePage(ctx, pb)
		if diags.HasErrors() {
			return fmt.Errorf("failed to decode page %q in %s: %w", pb.Name, file, diags)
		}
		p.Source = file
		model.Pages = append(model.Pages, p)
	}

	logger.Debug("HCL file loaded.", "pages", len(root.Pages), "application_types", len(root.ApplicationTypes))
	return nil
}
