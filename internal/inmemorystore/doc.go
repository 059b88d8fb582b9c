// Package inmemorystore provides an ephemeral, thread-safe, in-memory
// implementation of the pagestore.Store interface.
//
// Pages are kept in a sync.Map keyed by the string form of their ID. The
// key space only grows during a run and reads dominate once the layout is
// assembled, which is the access pattern sync.Map is tuned for.
//
// Nothing is persisted; the store lives as long as the App that owns it.
package inmemorystore
