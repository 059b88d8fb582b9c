package config

import (
	"context"
	"fmt"
)

// Merge appends the pages of other to m and adds its application types.
// Declaring the same application type in both models is an error.
func (m *Model) Merge(other *Model) error {
	for name, at := range other.ApplicationTypes {
		if prev, exists := m.ApplicationTypes[name]; exists {
			return fmt.Errorf("application type %q declared twice (%s and %s)", name, prev.Source, at.Source)
		}
		m.ApplicationTypes[name] = at
	}
	m.Pages = append(m.Pages, other.Pages...)
	return nil
}

// MultiLoader runs several format-specific loaders over the same paths and
// merges their models in loader order.
type MultiLoader struct {
	loaders []Loader
}

// NewMultiLoader returns a loader combining loaders.
func NewMultiLoader(loaders ...Loader) *MultiLoader {
	return &MultiLoader{loaders: loaders}
}

// Load implements Loader.
func (l *MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	model := NewModel()
	for _, loader := range l.loaders {
		m, err := loader.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(m); err != nil {
			return nil, err
		}
	}
	return model, nil
}
