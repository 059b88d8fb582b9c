package inmemorystore

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/specialistvlad/pagegrid/internal/page"
	"github.com/specialistvlad/pagegrid/internal/pageid"
	"github.com/specialistvlad/pagegrid/internal/pagestore"
)

// Store is an in-memory implementation of pagestore.Store.
type Store struct {
	pages sync.Map // Key: page ID string, Value: *page.Page
}

// New creates a new, empty in-memory page store.
func New() pagestore.Store {
	return &Store{}
}

// Put stores p under its ID.
func (s *Store) Put(ctx context.Context, p *page.Page) error {
	if p == nil {
		return fmt.Errorf("%w: nil page", page.ErrInvalidArgument)
	}
	if _, loaded := s.pages.LoadOrStore(p.ID.String(), p); loaded {
		return fmt.Errorf("%w: %s", pagestore.ErrDuplicate, p.ID)
	}
	return nil
}

// Get retrieves the page stored under id.
func (s *Store) Get(ctx context.Context, id pageid.PageID) (*page.Page, error) {
	p, ok := s.pages.Load(id.String())
	if !ok {
		return nil, fmt.Errorf("%w: %s", pagestore.ErrNotFound, id)
	}
	return p.(*page.Page), nil
}

// All returns the stored pages sorted by ID.
func (s *Store) All(ctx context.Context) ([]*page.Page, error) {
	var pages []*page.Page
	s.pages.Range(func(_, value any) bool {
		pages = append(pages, value.(*page.Page))
		return true
	})
	slices.SortFunc(pages, func(a, b *page.Page) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return pages, nil
}
