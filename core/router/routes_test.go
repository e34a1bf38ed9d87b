package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wayfarer/core/router"
)

func arith(op func(x, y int) int) func(router.Params, ...any) int {
	return func(_ router.Params, args ...any) int {
		return op(args[0].(int), args[1].(int))
	}
}

func patterns[R any](routes []router.Route[R]) []string {
	out := make([]string, 0, len(routes))
	for _, rt := range routes {
		out = append(out, rt.Pattern)
	}
	return out
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	r := router.New[int]()
	r.HandleFunc("/foo", arith(func(x, y int) int { return x*y + 2 }))
	r.HandleFunc("/foo/baz", arith(func(x, y int) int { return x * y }))
	r.HandleFunc("/bar/bin/barb", arith(func(x, y int) int { return x / y }))
	r.HandleFunc("/bar/bin/bla", arith(func(x, y int) int { return x / y }))

	routes := r.Routes()
	require.Len(t, routes, 4)
	assert.Equal(t, []string{"/bar/bin/barb", "/bar/bin/bla", "/foo", "/foo/baz"}, patterns(routes))
	for _, rt := range routes {
		assert.NotNil(t, rt.Handler)
	}
}

func TestRoutesWithParams(t *testing.T) {
	t.Parallel()

	r := router.New[string]()
	r.HandleFunc("/foo", noop)
	r.HandleFunc("/foo/:slug", noop)
	r.HandleFunc("/foo/:slug/:id", noop)

	assert.Equal(t, []string{"/foo", "/foo/:slug", "/foo/:slug/:id"}, patterns(r.Routes()))
}

func TestRoutesIncludeMounted(t *testing.T) {
	t.Parallel()

	sub := router.New[string]()
	sub.HandleFunc("/", noop)
	sub.HandleFunc("/bar", noop)

	r := router.New[string]()
	r.HandleFunc("/", noop)
	r.Mount("/mom", sub)

	assert.Equal(t, []string{"/", "/mom", "/mom/bar"}, patterns(r.Routes()))
}

func TestRoutesEmpty(t *testing.T) {
	t.Parallel()

	routes := router.New[string]().Routes()
	assert.NotNil(t, routes)
	assert.Empty(t, routes)
}

func TestWalk(t *testing.T) {
	t.Parallel()

	r := router.New[int]()
	r.HandleFunc("/foo", arith(func(x, y int) int { return x * y }))
	r.HandleFunc("/bar", arith(func(x, y int) int { return x / y }))

	err := r.Walk(func(_ string, h router.Handler[int]) router.Handler[int] {
		const y = 2
		return router.HandlerFunc[int](func(p router.Params, args ...any) int {
			return h.Handle(p, args[0], y)
		})
	})
	require.NoError(t, err)

	out, err := r.Dispatch("/foo", 4)
	require.NoError(t, err)
	assert.Equal(t, 8, out)

	out, err = r.Dispatch("/bar", 8)
	require.NoError(t, err)
	assert.Equal(t, 4, out)
}

func TestWalkNested(t *testing.T) {
	t.Parallel()

	r := router.New[int]()
	r.HandleFunc("/foo/baz", arith(func(x, y int) int { return x * y }))
	r.HandleFunc("/bar/bin/barb", arith(func(x, y int) int { return x / y }))
	r.HandleFunc("/bar/bin/bla", arith(func(x, y int) int { return x / y }))

	require.NoError(t, r.Walk(func(_ string, h router.Handler[int]) router.Handler[int] {
		return router.HandlerFunc[int](func(p router.Params, args ...any) int {
			return h.Handle(p, args[0], 2)
		})
	}))

	tests := []struct {
		path string
		in   int
		want int
	}{
		{"/foo/baz", 4, 8},
		{"/bar/bin/barb", 8, 4},
		{"/bar/bin/bla", 8, 4},
	}
	for _, test := range tests {
		out, err := r.Dispatch(test.path, test.in)
		require.NoError(t, err)
		assert.Equal(t, test.want, out, test.path)
	}
}

func TestWalkPartials(t *testing.T) {
	t.Parallel()

	r := router.New[string]()
	for _, p := range []string{"/foo", "/:foo", "/:foo/bar", "/:foo/:bar"} {
		r.HandleFunc(p, noop)
	}

	require.NoError(t, r.Walk(func(pattern string, _ router.Handler[string]) router.Handler[string] {
		return router.HandlerFunc[string](func(router.Params, ...any) string { return pattern })
	}))

	tests := []struct {
		path string
		want string
	}{
		{"/foo", "/foo"},
		{"/bleep", "/:foo"},
		{"/bleep/bar", "/:foo/bar"},
		{"/bleep/bloop", "/:foo/:bar"},
	}
	for _, test := range tests {
		out, err := r.Dispatch(test.path)
		require.NoError(t, err)
		assert.Equal(t, test.want, out, test.path)
	}
}

func TestWalkNilResultKeepsHandler(t *testing.T) {
	t.Parallel()

	r := router.New[string]()
	r.HandleFunc("/foo", constant("foo"))

	require.NoError(t, r.Walk(func(string, router.Handler[string]) router.Handler[string] { return nil }))

	out, err := r.Dispatch("/foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", out)
}

func TestWalkMissingFunction(t *testing.T) {
	t.Parallel()

	err := router.New[string]().Walk(nil)
	assert.ErrorIs(t, err, router.ErrMissingArgument)
}
