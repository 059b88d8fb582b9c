// Package pagestore defines the catalog of built pages.
//
// A store is filled once per run by the App after every page of the layout
// has been assembled, and is then read by the outline printer and the
// health check server's /pages endpoint. Pages are immutable once stored.
//
// Implementations must be safe for concurrent use: the HTTP server reads
// while the App may still be writing.
//
// See internal/inmemorystore for the in-memory implementation.
package pagestore

import (
	"context"
	"errors"

	"github.com/specialistvlad/pagegrid/internal/page"
	"github.com/specialistvlad/pagegrid/internal/pageid"
)

// ErrNotFound is returned by Get for an unknown page.
var ErrNotFound = errors.New("page not found")

// ErrDuplicate is returned by Put when a page with the same ID is already stored.
var ErrDuplicate = errors.New("page already stored")

// Store keeps built pages keyed by their pageid.PageID.
type Store interface {
	// Put stores p. Storing two pages with the same ID is an error.
	Put(ctx context.Context, p *page.Page) error

	// Get returns the page with the given ID, or ErrNotFound.
	Get(ctx context.Context, id pageid.PageID) (*page.Page, error)

	// All returns every stored page ordered by ID.
	All(ctx context.Context) ([]*page.Page, error)
}
