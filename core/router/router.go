package router

// Params holds the values captured while matching a path, keyed by the
// parameter name. Remainder-of-path captures use the key "wildcard".
type Params map[string]string

// Get returns the value of a captured parameter, or "" if absent.
func (p Params) Get(key string) string {
	return p[key]
}

// Handler responds to a dispatched path. Handle is invoked on the registered
// value itself, so a handler always has access to its own state.
type Handler[R any] interface {
	Handle(params Params, args ...any) R
}

// HandlerFunc adapts an ordinary function to Handler.
type HandlerFunc[R any] func(params Params, args ...any) R

// Handle calls f(params, args...).
func (f HandlerFunc[R]) Handle(params Params, args ...any) R {
	return f(params, args...)
}

// Target is the value registered for a pattern: either an endpoint wrapping
// a Handler, or a *Router whose routes are mounted under the pattern.
type Target[R any] interface {
	target()
}

type endpoint[R any] struct {
	handler Handler[R]
}

func (endpoint[R]) target() {}

// Endpoint makes a Handler registrable with On.
func Endpoint[R any](h Handler[R]) Target[R] {
	return endpoint[R]{handler: h}
}

// EndpointFunc makes a plain function registrable with On.
func EndpointFunc[R any](fn func(params Params, args ...any) R) Target[R] {
	if fn == nil {
		return endpoint[R]{}
	}
	return endpoint[R]{handler: HandlerFunc[R](fn)}
}

// Match describes the handler located for a path. It is returned by
// Router.Match without invoking anything.
type Match[R any] struct {
	Handler Handler[R]
	Route   string
	Params  Params
}

// Call invokes the matched handler with the captured params.
func (m Match[R]) Call(args ...any) R {
	return m.Handler.Handle(m.Params, args...)
}

// Route describes a registered handler and the full pattern leading to it.
type Route[R any] struct {
	Pattern string
	Handler Handler[R]
}

// Middleware wraps a handler with another handler.
type Middleware[R any] func(next Handler[R]) Handler[R]
