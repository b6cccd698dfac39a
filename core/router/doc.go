// Package router dispatches requests to special-cased handlers before the
// generic file server sees them.
//
// A Router is an ordered list of routes, each pairing a Matcher with a
// fiber.Handler, plus a single fallback handler. The first matching route
// handles the request; if none match, the fallback does.
//
// # Matching
//
// Exact compares the raw request target (path and query string exactly as
// they appeared on the request line) with a literal. Nothing is decoded or
// normalized, so "/a/", "/a?x=1" and "/%61" are all different from "/a".
//
// # Usage
//
//	r := router.New(static.Handler())
//	r.Handle(router.Exact(fiber.MethodGet, "/download.stefano/app-debug.apk"), h.HandleDownload)
//	app.Use(r.Handler)
package router
