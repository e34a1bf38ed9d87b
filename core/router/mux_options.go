package router

import (
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Option configures a Router during creation.
type Option[R any] func(*Router[R])

// WithDefault sets the fallback path matched when a requested path has no
// handler. It replaces the "/" route as the fallback. A single leading
// slash is stripped.
func WithDefault[R any](path string) Option[R] {
	return func(r *Router[R]) {
		r.defaultPath = strings.TrimPrefix(path, "/")
	}
}

// WithLogger sets a custom logger for the router.
func WithLogger[R any](logger *slog.Logger) Option[R] {
	return func(r *Router[R]) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithParamNormalizer applies fn to every decoded capture before it reaches
// a handler.
func WithParamNormalizer[R any](fn func(string) string) Option[R] {
	return func(r *Router[R]) {
		r.normalize = fn
	}
}

// WithNFC normalizes captured values to Unicode NFC, so that composed and
// decomposed spellings of the same text reach handlers identically.
func WithNFC[R any]() Option[R] {
	return WithParamNormalizer[R](norm.NFC.String)
}
