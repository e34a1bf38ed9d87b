package health

import (
	"net/http"

	"github.com/dmitrymomot/wayfarer/core/router"
	"github.com/dmitrymomot/wayfarer/core/routetable"
)

// Liveness indicates if the service process is running.
// Always answers "ALIVE" with 200 OK. No dependency checks.
//
// Example:
//
//	r.Handle("/health/live", health.Liveness())
func Liveness() router.Handler[routetable.Response] {
	return router.HandlerFunc[routetable.Response](func(_ router.Params, _ ...any) routetable.Response {
		return routetable.Response{Status: http.StatusOK, Body: "ALIVE"}
	})
}

// NoContent answers 204 without body. Ideal for high-frequency checks.
func NoContent() router.Handler[routetable.Response] {
	return router.HandlerFunc[routetable.Response](func(_ router.Params, _ ...any) routetable.Response {
		return routetable.Response{Status: http.StatusNoContent}
	})
}
