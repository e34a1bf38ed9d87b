package router

import (
	"fmt"

	"github.com/dmitrymomot/wayfarer/core/logger"
)

// Routes returns every registered handler with its full pattern, in match
// precedence order: literal segments sorted by key, then the param segment.
// Mounted routes are reported under their mount point.
func (r *Router[R]) Routes() []Route[R] {
	rts := []Route[R]{}
	_ = r.trie.Walk(func(pattern string, h Handler[R]) error {
		rts = append(rts, Route[R]{Pattern: pattern, Handler: h})
		return nil
	})
	return rts
}

// Walk replaces every registered handler in place with the handler returned
// by fn. Returning nil keeps the current handler. Handlers registered after
// Walk are not affected.
func (r *Router[R]) Walk(fn func(pattern string, h Handler[R]) Handler[R]) error {
	if fn == nil {
		return fmt.Errorf("%w: walk function", ErrMissingArgument)
	}

	r.trie.Rewrite(func(pattern string, h Handler[R]) Handler[R] {
		nh := fn(pattern, h)
		if isNil(nh) {
			r.logger.Warn("walk returned nil handler, keeping original",
				logger.Component("router"),
				logger.Pattern(pattern),
			)
			return h
		}
		return nh
	})
	return nil
}

// Use wraps every handler registered so far with the middleware stack. The
// first middleware is the outermost.
func (r *Router[R]) Use(middlewares ...Middleware[R]) error {
	if len(middlewares) == 0 {
		return fmt.Errorf("%w: no middlewares provided", ErrMissingArgument)
	}
	for i, mw := range middlewares {
		if mw == nil {
			return fmt.Errorf("%w: middleware %d is nil", ErrMissingArgument, i)
		}
	}

	return r.Walk(func(_ string, h Handler[R]) Handler[R] {
		return chain(middlewares, h)
	})
}
