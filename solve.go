package bssrp

import (
	"math"
	"math/rand"

	"github.com/lcmarius/TIPE-BSSR/review"
	"github.com/lcmarius/TIPE-BSSR/routing"
)

// solveRNGSeed is the fixed seed used to construct the builder's *rand.Rand
// in Solve. Solve has no seed parameter of its own (see External
// Interfaces): callers wanting a different construction draw should call
// the builder directly against their own *rand.Rand and pass
// construct.Greedy/SurplusDeficit as the graph's existing tour, then drive
// improvers manually.
const solveRNGSeed = 1

// Solve runs builder once to produce an initial feasible tour, then
// applies every improver in improvers, in order, once per round, for up to
// maxIter rounds (0 meaning unlimited), stopping early as soon as a full
// round leaves the tour's total distance unchanged. It returns the final
// solution's review.Metrics.
//
// Grounded on the spec's solve pipeline (construct -> improve loop ->
// review), generalized from original_source's fixed method1/method2 +
// opt2/opt3 call chains (e.g. method1_with_opt2_then_opt3) into an
// arbitrary ordered list of improvers.
func Solve(g *routing.Graph, capacity int, builder Builder, improvers []Improver, maxIter int) (review.Metrics, error) {
	rng := rand.New(rand.NewSource(solveRNGSeed))
	if err := builder(g, capacity, rng); err != nil {
		return review.Metrics{}, err
	}
	if err := review.AssertSolution(g); err != nil {
		return review.Metrics{}, err
	}

	prevDistance := math.Inf(1)
	for round := 0; maxIter <= 0 || round < maxIter; round++ {
		for _, improver := range improvers {
			if err := improver(g, capacity); err != nil {
				return review.Metrics{}, err
			}
		}

		metrics, err := review.ReviewSolution(g)
		if err != nil {
			return review.Metrics{}, err
		}
		if metrics.Distance >= prevDistance-1e-9 {
			return metrics, nil
		}
		prevDistance = metrics.Distance
	}

	return review.ReviewSolution(g)
}

// IsGraphSolvable reports whether g's instance admits a feasible tour
// under the given vehicle capacity: every non-depot station's gap must
// satisfy |gap| <= capacity/2, and the gaps must sum to zero.
//
// Grounded on original_source's is_graph_solvable, with its `<` comparison
// corrected to `<=`: the original's strict inequality rejects a station
// whose gap exactly equals capacity/2, even though such a station is
// trivially absorbable by a vehicle arriving empty — the spec's intended
// rule is `<=` and the original's `<` is a defect in the source material,
// not a deliberate design choice (see DESIGN.md).
func IsGraphSolvable(g *routing.Graph, capacity int) bool {
	half := capacity / 2
	total := 0

	for _, s := range g.ListStations() {
		if s.IsDepot() {
			continue
		}
		gap := s.Gap()
		if abs(gap) > half {
			return false
		}
		total += gap
	}

	return total == 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
