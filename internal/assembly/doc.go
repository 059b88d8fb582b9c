// Package assembly turns format-agnostic config pages into built pages by
// driving the composition builder stack. Nested containers are closed with
// BuildToParent; the outermost container of each top-level subtree is closed
// with BuildToTop, which hands control back to the page builder.
package assembly
