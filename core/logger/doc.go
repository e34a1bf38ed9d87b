// Package logger provides structured logging helpers built on log/slog.
//
// New builds a text or JSON logger from options, Nop returns a discarding
// logger suitable as a default. The attribute helpers give log keys a single
// spelling across the module:
//
//	log := logger.New(logger.WithLevel(slog.LevelDebug))
//	log.Debug("route registered",
//		logger.Component("router"),
//		logger.Pattern("/users/:id"),
//	)
//
// Helpers that receive an empty value return an empty slog.Attr, which slog
// omits from output.
package logger
