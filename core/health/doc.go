// Package health provides route handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//   - NoContent: Answers 204 for minimal overhead
//
// Usage:
//
//	r.Handle("/health/live", health.Liveness())
//	r.Handle("/health/ready", health.Readiness(log, checkTable))
//	r.Handle("/ping", health.NoContent())
//
// Dependency checks must follow func(context.Context) error signature:
//
//	func checkTable(ctx context.Context) error {
//		_, err := os.Stat(path)
//		return err
//	}
package health
