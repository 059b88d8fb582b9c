package config

import "context"

// Loader is the interface for a format-specific layout loader.
type Loader interface {
	// Load reads every layout file reachable from paths and translates them
	// into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
