package improve

import (
	"github.com/lcmarius/TIPE-BSSR/routing"
)

// TwoOpt performs deterministic first-improvement 2-opt on the graph's
// current tour: for every candidate segment [i..k], it evaluates the
// reversal that replaces edges (a,b) and (c,d) with (a,c) and (b,d), and
// accepts the first strictly-improving reversal that keeps the vehicle
// load feasible along the whole tour. Scanning restarts after every
// accepted move and the graph is mutated via routing.Graph.ApplyTour.
//
// Grounded on tsp.TwoOpt's candidate-loop structure (a=T[i-1], b=T[i],
// c=T[k], d=T[k+1], Δ = w(a,c)+w(b,d)-w(a,b)-w(c,d)), adapted from a
// distance matrix to a haversine distanceCache, and with the teacher's
// Inf-edge rejection replaced by a post-reversal vehicle-load feasibility
// check (our domain has no missing edges, but reversals can break load
// bounds).
//
// Errors:
//   - ErrNotConnex if the graph does not currently hold a connex tour.
//   - ErrTimeLimit if opts.TimeLimit elapses before reaching a local optimum.
//
// Complexity: O(iterations * n²) candidate evaluations; each accepted move
// costs O(n) (segment reversal plus ApplyTour's graph rewrite).
func TwoOpt(g *routing.Graph, capacity int, opts Options) error {
	if !g.IsConnex() {
		return ErrNotConnex
	}

	tour := g.GetTour()
	n := len(tour) - 1 // number of directed edges; tour[0]==tour[n]==depot
	if n < 3 {
		return nil // nothing to improve with fewer than 3 stations
	}

	cache := newDistanceCache(g, tour)
	checkDeadline := deadlineChecker(opts.TimeLimit)
	eps := opts.Eps
	if eps < 0 {
		eps = 0
	}

	accepted := 0
	for {
		improved := false

	scan:
		for i := 1; i <= n-2; i++ {
			for k := i + 1; k <= n-1; k++ {
				a, b, c, d := tour[i-1], tour[i], tour[k], tour[k+1]

				delta := (cache.at(a, c) + cache.at(b, d)) - (cache.at(a, b) + cache.at(c, d))
				if delta >= -eps {
					if checkDeadline() {
						return ErrTimeLimit
					}

					continue
				}

				candidate := make([]int, len(tour))
				copy(candidate, tour)
				reverseSegment(candidate, i, k)

				if !feasible(g, candidate, capacity) {
					continue
				}

				tour = candidate
				accepted++
				improved = true

				if opts.MaxIterations > 0 && accepted >= opts.MaxIterations {
					return g.ApplyTour(tour)
				}

				break scan
			}
		}

		if !improved {
			break
		}
	}

	return g.ApplyTour(tour)
}
