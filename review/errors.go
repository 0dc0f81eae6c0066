// Package review implements feasibility assertion and scoring for a
// completed BSSRP tour: assert_solution, review_solution and the MST-based
// lower/upper bound pair, grounded on
// original_source/src/solver/reviewer.py.
package review

import "errors"

// Sentinel errors raised while asserting a candidate solution, mirroring
// the three exceptions original_source's assert_solution can raise.
var (
	// ErrNotConnex indicates the graph is not a single closed tour.
	ErrNotConnex = errors.New("review: graph is not connex")

	// ErrNonZeroGap indicates the tour's stations do not sum to a zero net
	// bike gap (the vehicle cannot end with a different load than it started).
	ErrNonZeroGap = errors.New("review: total bike gap along the tour is non-zero")

	// ErrNotAllVisited indicates at least one non-depot station is absent
	// from the tour.
	ErrNotAllVisited = errors.New("review: not every station is visited")
)
