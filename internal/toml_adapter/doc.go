// Package toml_adapter is the TOML implementation of config.Loader. It reads
// the same page model as the HCL adapter from a nested-table layout:
//
//	[[application_type]]
//	name = "portlet"
//
//	[[page]]
//	name = "home"
//	site = "portal.classic"
//
//	  [[page.layout]]
//	  kind = "columns"
//
//	    [[page.layout.children]]
//	    kind       = "application"
//	    type       = "portlet"
//	    name       = "news"
//	    content_id = "web/NewsPortlet"
//
// Node kinds are "columns", "rows", "container" (with a template reference)
// and "application". Array order is the child order.
package toml_adapter
