package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/pagegrid/internal/ctxlog"
	"github.com/specialistvlad/pagegrid/internal/outline"
)

// Run assembles every selected page, stores it and prints the result. With
// a health check port configured it keeps serving until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.assembleAll(ctx); err != nil {
		return err
	}

	pages, err := a.store.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pages: %w", err)
	}
	a.logger.Info("Pages assembled.", "count", len(pages))

	if a.config.OutputFormat == OutputJSON {
		if err := outline.WriteJSON(a.outW, pages); err != nil {
			return err
		}
		fmt.Fprintln(a.outW)
	} else {
		for _, p := range pages {
			if err := outline.Write(a.outW, p); err != nil {
				return fmt.Errorf("failed to print page %s: %w", p.ID, err)
			}
		}
	}

	if a.config.HealthcheckPort > 0 {
		a.healthCheckServer()
		a.logger.Info("Serving assembled pages until interrupted.")
		<-ctx.Done()
		return a.closeHealthCheckServer()
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// assembleAll builds and stores every page matching the site filter. Failing
// pages do not stop the others; all failures are reported together.
func (a *App) assembleAll(ctx context.Context) error {
	var errs []error
	for _, cp := range a.model.Pages {
		if a.config.Site != "" && cp.Site != a.config.Site {
			a.logger.Debug("Skipping page of another site.", "page", cp.Name, "site", cp.Site)
			continue
		}
		p, err := a.assembler.Assemble(ctx, cp)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", cp.Source, err))
			continue
		}
		if err := a.store.Put(ctx, p); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", cp.Source, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("assembly failed: %w", err)
	}
	return nil
}
