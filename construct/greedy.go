package construct

import (
	"math/rand"

	"github.com/lcmarius/TIPE-BSSR/routing"
	"github.com/lcmarius/TIPE-BSSR/station"
)

// Greedy builds a tour by repeatedly hopping to the nearest station whose
// gap the vehicle can absorb without leaving [0, capacity], starting from
// the loading station nearest the depot.
//
// Grounded on original_source's builder/greedy.go: cursor starts at
// graph.get_nearest_neighbor(0, is_loading), then at every step takes the
// nearest neighbor (by the graph's distance provider) among stations with
// no predecessor yet whose gap keeps the running vehicle load within
// bounds. Ties (here and at every later hop) are broken deterministically
// by lowest station number, via GetNearestNeighbor's own tie-break rule.
// rng is accepted to satisfy the Builder signature but unused: nothing in
// this heuristic is randomized.
//
// Errors:
//   - ErrNoLoadingStation if no station has a positive gap.
//   - ErrUnsolvableWithHeuristic if some intermediate station has no
//     feasible successor under capacity.
//
// Complexity: O(n² log n) (n nearest-neighbor scans, each O(n log n)).
func Greedy(g *routing.Graph, capacity int, rng *rand.Rand) error {
	_ = rng

	first, ok, err := g.GetNearestNeighbor(station.Depot, func(s station.Station) bool {
		return s.IsLoading()
	})
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoLoadingStation
	}

	if err := g.AddEdge(station.Depot, first.Number); err != nil {
		return err
	}

	load := first.Gap()
	cursor := first

	n := g.Size()
	for i := 1; i < n-1; i++ {
		candidateLoad := load
		cursorNumber := cursor.Number
		next, ok, err := g.GetNearestNeighbor(cursorNumber, func(s station.Station) bool {
			if s.IsDepot() || s.Number == cursorNumber {
				return false
			}
			if _, hasPred, _ := g.GetPredecessor(s.Number); hasPred {
				return false
			}
			newLoad := candidateLoad + s.Gap()

			return newLoad >= 0 && newLoad <= capacity
		})
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnsolvableWithHeuristic
		}

		if err := g.AddEdge(cursorNumber, next.Number); err != nil {
			return err
		}
		load += next.Gap()
		cursor = next
	}

	return g.AddEdge(cursor.Number, station.Depot)
}
