// Package router provides a path router built on a segment trie. It matches
// paths against registered patterns, extracts captured parameters and invokes
// the located handler with caller-supplied arguments.
//
// # Features
//
//   - Static, named (":name") and remainder ("*") segments
//   - Literal segments take precedence over parameters, parameters over wildcards
//   - Percent-decoded captures; malformed escapes fall through to the default route
//   - Default (fallback) route
//   - Sub-router mounting, including promotion of a sub-router's own "/"
//   - Route listing and in-place handler rewriting for middleware layering
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/wayfarer/core/router"
//
//	r := router.New[string](router.WithDefault[string]("/404"))
//
//	r.HandleFunc("/users/:id", func(p router.Params, _ ...any) string {
//		return "user " + p.Get("id")
//	})
//	r.HandleFunc("/404", func(router.Params, ...any) string {
//		return "not found"
//	})
//
//	out, err := r.Dispatch("/users/42") // "user 42", nil
//	out, err = r.Dispatch("/nope")      // "not found", nil
//
// Handlers receive the captured params followed by any extra arguments
// passed to Dispatch:
//
//	r.HandleFunc("/sum", func(_ router.Params, args ...any) string {
//		return fmt.Sprint(args[0].(int) + args[1].(int))
//	})
//	r.Dispatch("/sum", 2, 3) // "5"
//
// # Registration Targets
//
// On takes a Target, which is either an endpoint or another router:
//
//	r.On("/users/:id", router.Endpoint[string](userHandler))
//	r.On("/admin", adminRouter)
//
// Handle, HandleFunc and Mount are shorthands for the same calls. Registration
// errors (nil handlers, nil routers, self-mounts) panic with an error wrapping
// ErrInvalidArgument.
//
// # Mounting
//
// Mount copies the routes of a sub-router under a pattern. A sub-router's "/"
// route answers for the mount point itself:
//
//	home := router.New[string]()
//	home.HandleFunc("/", index)
//	home.HandleFunc("/about", about)
//
//	r.Mount("/home", home)
//	r.Dispatch("/home")       // index
//	r.Dispatch("/home/about") // about
//
// The copy is a snapshot: routes added to home after mounting are not visible
// through r.
//
// # Matching Without Dispatch
//
// Match returns the handler, its registered pattern and the captures without
// calling anything:
//
//	m, err := r.Match("/users/42")
//	m.Route  // "/users/:id"
//	m.Params // {"id": "42"}
//	m.Call() // invoke later
//
// # Errors
//
// Without WithDefault the default path is empty, which resolves to the "/"
// route. A path that matches neither a handler nor the default route yields
// a *NotFoundError, which unwraps to ErrRouteNotFound:
//
//	if _, err := r.Dispatch("/missing"); errors.Is(err, router.ErrRouteNotFound) {
//		// handle
//	}
//
// # Concurrency
//
// The router takes no locks. Register all routes first; after that Match and
// Dispatch may run concurrently.
package router
