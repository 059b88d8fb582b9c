// Package registry provides the central "glue" for the application module
// system.
//
// The Registry maps the application type names used in layout files (e.g.
// "portlet") to the compiled Go factories that turn an `application` block
// into an *application.Application. It also holds the `application_type`
// declarations read from the layout files themselves.
//
// During application startup, the registry is populated and then validated to
// ensure that the Go code and the layout files are in sync, so that a typo in
// an application type is reported before any page is assembled.
package registry
