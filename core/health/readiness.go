package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/wayfarer/core/logger"
	"github.com/dmitrymomot/wayfarer/core/router"
	"github.com/dmitrymomot/wayfarer/core/routetable"
)

// Readiness verifies all service dependencies are functioning.
// Answers "READY" if all checks pass, 503 Service Unavailable if any fail.
// Checks run with the request context when the first dispatch argument is
// an *http.Request.
//
// Example:
//
//	r.Handle("/health/ready", health.Readiness(log, tableReadable))
func Readiness(log *slog.Logger, checks ...func(context.Context) error) router.Handler[routetable.Response] {
	if log == nil {
		log = logger.Nop()
	}

	return router.HandlerFunc[routetable.Response](func(_ router.Params, args ...any) routetable.Response {
		ctx := requestContext(args)

		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component("health"),
					logger.Error(err),
				)
				return routetable.Response{
					Status: http.StatusServiceUnavailable,
					Body:   http.StatusText(http.StatusServiceUnavailable),
				}
			}
		}

		return routetable.Response{Status: http.StatusOK, Body: "READY"}
	})
}

func requestContext(args []any) context.Context {
	if len(args) > 0 {
		if req, ok := args[0].(*http.Request); ok && req != nil {
			return req.Context()
		}
	}
	return context.Background()
}
