package improve

import "time"

// Options governs both TwoOpt and ThreeOpt, mirroring the teacher's
// tsp.Options / tsp.DefaultOptions convention: a single struct, a
// zero-value-safe DefaultOptions constructor, sensible defaults.
type Options struct {
	// MaxIterations caps the number of accepted moves; 0 means unlimited
	// (run until a local optimum is reached).
	MaxIterations int

	// Eps is the minimum strictly-negative delta required to accept a
	// candidate move (guards against floating-point noise).
	Eps float64

	// TimeLimit is a soft wall-clock budget, checked every 2048 candidate
	// evaluations; zero means unbounded.
	TimeLimit time.Duration
}

// DefaultOptions returns unlimited iterations, a 1e-9 epsilon and no time
// limit.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 0,
		Eps:           1e-9,
		TimeLimit:     0,
	}
}
