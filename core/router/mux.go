package router

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/wayfarer/core/logger"
	"github.com/dmitrymomot/wayfarer/core/trie"
)

// Router registers handlers against path patterns and dispatches paths to
// them. Registration must finish before concurrent dispatch begins; Match
// and Dispatch only read the routing tree.
type Router[R any] struct {
	trie        *trie.Trie[Handler[R]]
	defaultPath string
	normalize   func(string) string
	logger      *slog.Logger
}

func (*Router[R]) target() {}

// New creates a new router with the given options.
func New[R any](opts ...Option[R]) *Router[R] {
	r := &Router[R]{
		trie:   trie.New[Handler[R]](),
		logger: logger.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// On registers t at pattern. An endpoint is attached to the node for
// pattern; a *Router has a snapshot of its routes mounted there. An empty
// pattern means "/". On panics with ErrInvalidArgument on a nil target,
// a nil handler, or an attempt to mount a router onto itself.
func (r *Router[R]) On(pattern string, t Target[R]) *Router[R] {
	if pattern == "" {
		pattern = "/"
	}

	switch v := t.(type) {
	case *Router[R]:
		if v == nil {
			panic(fmt.Errorf("%w: nil router on '%s'", ErrInvalidArgument, pattern))
		}
		if v == r {
			panic(fmt.Errorf("%w: router mounted onto itself on '%s'", ErrInvalidArgument, pattern))
		}
		r.trie.Mount(pattern, v.trie)
		r.logger.Debug("router mounted",
			logger.Component("router"),
			logger.Pattern(pattern),
			logger.Count("routes", len(v.Routes())),
		)

	case endpoint[R]:
		if isNil(v.handler) {
			panic(fmt.Errorf("%w: nil handler on '%s'", ErrInvalidArgument, pattern))
		}
		r.trie.Insert(pattern).Set(v.handler, pattern)
		r.logger.Debug("route registered",
			logger.Component("router"),
			logger.Pattern(pattern),
		)

	default:
		panic(fmt.Errorf("%w: unsupported target %T on '%s'", ErrInvalidArgument, t, pattern))
	}

	return r
}

// Handle registers a handler for pattern.
func (r *Router[R]) Handle(pattern string, h Handler[R]) *Router[R] {
	return r.On(pattern, Endpoint(h))
}

// HandleFunc registers a plain function for pattern.
func (r *Router[R]) HandleFunc(pattern string, fn func(params Params, args ...any) R) *Router[R] {
	return r.On(pattern, EndpointFunc(fn))
}

// Mount splices the routes of sub under pattern. Routes added to sub
// afterwards are not visible through r.
func (r *Router[R]) Mount(pattern string, sub *Router[R]) *Router[R] {
	return r.On(pattern, sub)
}

// Match locates the handler for path without invoking it. When path has no
// handler the default path is tried; with no WithDefault that is the "/"
// route. Returns a *NotFoundError if neither resolves.
func (r *Router[R]) Match(path string) (Match[R], error) {
	if res, ok := r.trie.Match(path); ok && res.HasHandler {
		return r.result(res), nil
	}

	r.logger.Debug("falling back to default route",
		logger.Component("router"),
		logger.Path(path),
		logger.DefaultPath(r.defaultPath),
	)
	if res, ok := r.trie.Match(r.defaultPath); ok && res.HasHandler {
		return r.result(res), nil
	}

	r.logger.Warn("route not found",
		logger.Component("router"),
		logger.Path(path),
	)
	return Match[R]{}, &NotFoundError{Path: path}
}

// Dispatch matches path and invokes the handler with the captured params
// followed by args. The handler's return value is returned as is.
func (r *Router[R]) Dispatch(path string, args ...any) (R, error) {
	m, err := r.Match(path)
	if err != nil {
		var zero R
		return zero, err
	}
	return m.Call(args...), nil
}

func (r *Router[R]) result(res trie.Result[Handler[R]]) Match[R] {
	params := Params(res.Params)
	if r.normalize != nil {
		for k, v := range params {
			params[k] = r.normalize(v)
		}
	}
	return Match[R]{
		Handler: res.Handler,
		Route:   res.Route,
		Params:  params,
	}
}

// isNil reports whether h is nil or wraps a nil func, pointer, map or chan.
func isNil(h any) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Chan, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}
