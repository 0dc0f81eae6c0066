// Package routing implements the directed successor/predecessor routing
// graph over a depot and a set of imbalanced bike-share stations (spec
// §4.1). Unlike the teacher's core.Graph — a general-purpose, string-keyed,
// optionally undirected/weighted/multi-edge graph — this graph is narrow by
// design: each station has at most one successor and one predecessor, and
// the depot (station number 0) is always present. Station records live in
// an owned arena (a dense slice); the graph itself stores only slot
// indices, so 2-opt/3-opt segment reversals never alias caller memory
// (spec Design Notes §9).
package routing

import "errors"

// Sentinel errors. Every operation that references a missing station or an
// invalid edge returns one of these — they are programmer errors with no
// recovery path, per spec §7.
var (
	// ErrStationNotFound indicates an operation referenced a station number
	// that was never added to the graph.
	ErrStationNotFound = errors.New("routing: station not found")

	// ErrDuplicateStation indicates AddStation was called twice for the
	// same station number.
	ErrDuplicateStation = errors.New("routing: station already exists")

	// ErrInvalidDepot indicates the depot passed to New does not have
	// station number 0 or does not have a zero gap.
	ErrInvalidDepot = errors.New("routing: depot must have number 0 and zero gap")

	// ErrEdgeExists indicates AddEdge was called with a source station that
	// already has a successor.
	ErrEdgeExists = errors.New("routing: source station already has a successor")

	// ErrEdgeNotFound indicates RemoveEdge (or an edge query expecting
	// presence) referenced an edge that is not in the graph.
	ErrEdgeNotFound = errors.New("routing: edge not found")

	// ErrSelfEdge indicates an edge was attempted from a station to itself.
	ErrSelfEdge = errors.New("routing: self edge not allowed")
)
