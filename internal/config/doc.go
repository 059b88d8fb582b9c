// Package config defines the format-agnostic layout model together with the
// Loader interface that concrete formats implement.
//
// The `config.Model` is the single source of truth for the `assembly`
// package, which replays it through the composition builders. Concrete
// loaders, such as the HCL one, live in separate packages.
package config
