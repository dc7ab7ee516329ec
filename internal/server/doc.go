// Package server exposes the guide over HTTP.
//
// Routes, for a guide root of "/guide":
//
//	GET /guide, /guide/          index document
//	GET /guide/assets/{path...}  static asset from <docs>/assets
//	GET /guide/{path...}         document
//	GET /health                  JSON health report
//
// Errors are JSON objects of the form {"detail": "..."}. Internal error
// text is logged, never returned to the client.
package server
