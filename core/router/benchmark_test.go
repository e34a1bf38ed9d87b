package router_test

import (
	"testing"

	"github.com/dmitrymomot/wayfarer/core/router"
)

func benchHandler(router.Params, ...any) int { return 1 }

func benchParamHandler(p router.Params, _ ...any) int { return len(p.Get("id")) }

func BenchmarkRouterStaticRoutes(b *testing.B) {
	r := router.New[int]()

	staticRoutes := []string{
		"/",
		"/health",
		"/api",
		"/api/users",
		"/api/posts",
		"/api/comments",
		"/admin",
		"/admin/dashboard",
		"/admin/users",
		"/admin/settings",
	}

	for _, route := range staticRoutes {
		r.HandleFunc(route, benchHandler)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := r.Dispatch("/api/users"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRouterParamRoutes(b *testing.B) {
	r := router.New[int]()
	r.HandleFunc("/users/:id", benchParamHandler)
	r.HandleFunc("/users/:id/posts/:post", benchParamHandler)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := r.Dispatch("/users/12345/posts/67890"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRouterEncodedParam(b *testing.B) {
	r := router.New[int]()
	r.HandleFunc("/channels/:id", benchParamHandler)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := r.Dispatch("/channels/%23general%20chat"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRouterWildcard(b *testing.B) {
	r := router.New[int]()
	r.HandleFunc("/static/*", benchHandler)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := r.Dispatch("/static/css/vendor/site.min.css"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRouterDefaultFallback(b *testing.B) {
	r := router.New[int](router.WithDefault[int]("/404"))
	r.HandleFunc("/404", benchHandler)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := r.Dispatch("/missing/page"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMountDeeplyNested(b *testing.B) {
	leaf := router.New[int]()
	leaf.HandleFunc("/:id", benchParamHandler)

	current := leaf
	for _, seg := range []string{"/d", "/c", "/b", "/a"} {
		parent := router.New[int]()
		parent.Mount(seg, current)
		current = parent
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := current.Dispatch("/a/b/c/d/42"); err != nil {
			b.Fatal(err)
		}
	}
}
