package ports

import "context"

// HealthChecker is a backing store readiness depends on.
type HealthChecker interface {
	// Name keys the checker's entry in the readiness body, e.g. "postgres".
	Name() string
	// HealthCheck returns nil when the store can serve requests. It must
	// return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects the checkers wired at startup and runs them for
// GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every checker and maps its name to the result; a nil
	// error means healthy.
	CheckAll(ctx context.Context) map[string]error
}
