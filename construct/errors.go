// Package construct implements the spec's two constructive heuristics —
// GREEDY nearest-feasible and SURPLUS-DEFICIT interleave — each producing
// an initial, feasible tour over a routing.Graph.
package construct

import "errors"

// Sentinel errors returned by the builders. Do not wrap with fmt.Errorf
// where a sentinel suffices, matching the teacher's error discipline.
var (
	// ErrNoLoadingStation indicates a graph with no surplus station to
	// start the GREEDY walk from.
	ErrNoLoadingStation = errors.New("construct: no loading station to start from")

	// ErrUnsolvableWithHeuristic indicates a constructor could not find a
	// feasible successor for some station under the given vehicle capacity
	// — the graph may still be solvable by a different heuristic or with a
	// larger capacity, but this constructor gave up.
	ErrUnsolvableWithHeuristic = errors.New("construct: no feasible successor found, heuristic stuck")
)
