// Package composition provides the builder protocol used to assemble a page
// layout: an ordered tree of Containers whose leaves are opaque
// ContainerItems such as applications.
//
// # Builder Stack
//
// Construction is depth-first. A LayoutBuilder sits at the root of the stack
// and is embedded by the artifact builder that owns the final result (for
// example page.Builder). Every new*Builder call spawns a ContainerBuilder one
// level deeper; terminal calls fold the finished Container into the level
// above and hand control back:
//
//	pb := page.NewBuilder()
//	pb, err := pb.NewColumnsBuilder().
//		Child(news).
//		Child(products).
//		NewRowsBuilder().
//		Child(weather).
//		Child(calendar).
//		BuildToTop() // rows into columns, columns into the page
//
// BuildToParent unwinds a single level. BuildToTop unwinds every remaining
// level, so `b.BuildToParent()` followed by `BuildToTop()` on the result is
// equivalent to `b.BuildToTop()`.
//
// # Lifecycle
//
// A ContainerBuilder is Open until its first successful terminal call, after
// which it is Finalized and any further terminal call fails with
// ErrIllegalState. Build is a pure snapshot and may be called in either
// state. Snapshots copy the pending children, so later calls on the builder
// never change a Container that was already returned. The copy is shallow:
// child items, including nested containers, are shared by pointer, so built
// trees must be treated as read-only.
//
// Fluent setters cannot return errors. Invalid arguments are recorded on the
// builder and reported, wrapping ErrInvalidArgument, by the next Build or
// terminal call.
//
// Builders are not safe for concurrent use.
package composition
