// Package improve implements 2-opt and 3-opt local search over a
// routing.Graph's current tour, re-checking vehicle-load feasibility after
// every candidate move.
package improve

import "errors"

// ErrNotConnex indicates the graph passed to an improver does not yet hold
// a complete, connex tour (a Builder must run first).
var ErrNotConnex = errors.New("improve: graph does not hold a connex tour")

// ErrTimeLimit indicates a configured wall-clock budget was exhausted
// before reaching a local optimum.
var ErrTimeLimit = errors.New("improve: time limit exceeded")
