// Package hcl_adapter implements config.Loader for HCL layout files.
//
// A layout file declares pages and, optionally, the application types it
// expects the binary to provide:
//
//	application_type "portlet" {
//	  description = "JSR-286 portlet"
//	}
//
//	page "home" {
//	  site = "portal.classic"
//
//	  columns {
//	    application "portlet" "news" {
//	      content_id = "web/NewsPortlet"
//	    }
//	    rows {
//	      application "gadget" "weather" { content_id = "Weather" }
//	    }
//	  }
//	}
//
// Container blocks (`columns`, `rows`, `container "<template>"`) nest to any
// depth. Their body is decoded with an explicit hcl.BodySchema rather than
// gohcl struct tags, because the relative order of different block types is
// significant and gohcl would group them by type.
package hcl_adapter
