// Package wayfarer is a trie-based path router. Patterns are split on '/'
// into segments and stored in a prefix tree; a path is resolved to the
// handler registered for the best matching pattern, with named captures
// (":name") and remainder-of-path captures ("*") decoded from percent
// encoding. Routers compose: one router can be mounted under a pattern of
// another.
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/wayfarer/core/router
//	go doc -all github.com/dmitrymomot/wayfarer/core/trie
//
// # Core Packages
//
//	github.com/dmitrymomot/wayfarer/core/trie       - Segment trie with insert, match, mount, walk and rewrite
//	github.com/dmitrymomot/wayfarer/core/router     - Generic router with default route, mounting, middleware and route listing
//	github.com/dmitrymomot/wayfarer/core/routetable - YAML route tables compiled into routers with canned responses
//	github.com/dmitrymomot/wayfarer/core/server     - HTTP adapter with request ids, metrics and tracing; graceful server
//	github.com/dmitrymomot/wayfarer/core/health     - Liveness and readiness route handlers
//	github.com/dmitrymomot/wayfarer/core/config     - Type-safe environment variable loading
//	github.com/dmitrymomot/wayfarer/core/logger     - Structured logging built on slog
//
// # Commands
//
//	github.com/dmitrymomot/wayfarer/cmd/wayfarer    - CLI: routes, match, serve, version
//
// # Quick Start
//
//	r := router.New[string](router.WithDefault[string]("/404"))
//	r.HandleFunc("/users/:id", func(p router.Params, _ ...any) string {
//		return "user " + p.Get("id")
//	})
//	r.HandleFunc("/404", func(router.Params, ...any) string {
//		return "not found"
//	})
//
//	out, err := r.Dispatch("/users/42") // "user 42"
package wayfarer
