// Package server exposes the slug and money formatters over HTTP for previewing
// template output.
//
// Routes:
//
//	GET /healthz                                  liveness
//	GET /readyz                                   locale presets loaded
//	GET /v1/handle?text=&max_length=              {"handle": "..."}
//	GET /v1/money?amount=&locale=&format=         {"formatted": "...", "conventions": {...}}
//
// The money endpoint resolves conventions from the locale parameter, then the
// Accept-Language header, then the process-wide active locale. Errors are JSON
// objects with an "error" field and the request ID.
package server
