package logger

import (
	"log/slog"
	"sort"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety: slog drops
// empty attributes, so log.Debug("msg", logger.Error(err)) needs no nil check.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// RequestID creates an attribute for request IDs.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Method creates an attribute for HTTP methods.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for a requested path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Pattern creates an attribute for a registered route pattern.
func Pattern(pattern string) slog.Attr {
	return slog.String("pattern", pattern)
}

// DefaultPath creates an attribute for a router's fallback path.
func DefaultPath(path string) slog.Attr {
	return slog.String("default_path", path)
}

// Params groups captured route parameters under the key "params", sorted by
// name. Returns empty Attr when there are none.
func Params(params map[string]string) slog.Attr {
	if len(params) == 0 {
		return slog.Attr{}
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	as := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		as = append(as, slog.String(k, params[k]))
	}
	return slog.Attr{Key: "params", Value: slog.GroupValue(as...)}
}

// StatusCode creates an attribute for HTTP status codes.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Version creates an attribute for version information.
func Version(v string) slog.Attr {
	return slog.String("version", v)
}
