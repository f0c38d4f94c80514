package forso

import "runtime"

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps automatic sizing. Explicit values may exceed it.
	MaxPoolSize = 16
)

// ResolvePoolSize determines the worker count for batch formatting.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// One worker per CPU (GOMAXPROCS is adjusted by automaxprocs in containers)
	n := runtime.GOMAXPROCS(0)

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
