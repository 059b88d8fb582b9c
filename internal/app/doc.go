// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary lifecycle (load layouts,
// validate the registry, assemble pages, store and print them), decoupled
// from any specific entrypoint like a CLI or server.
package app
