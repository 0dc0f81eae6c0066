package review

import (
	"sort"

	"github.com/lcmarius/TIPE-BSSR/routing"
	"github.com/lcmarius/TIPE-BSSR/station"
)

// Metrics is the evaluation of a completed solution: whether it is valid,
// its total travel distance, and a [0, 1] score where 1.0 is a tour at or
// below the computed lower bound.
//
// Grounded on original_source's SolutionMetrics dataclass.
type Metrics struct {
	Solved   bool
	Distance float64
	Score    float64
}

// AssertSolution checks that g holds a valid BSSRP solution: connex,
// every station visited exactly once starting and ending at the depot, and
// a total bike gap of zero along the walk.
//
// Grounded on original_source's assert_solution.
func AssertSolution(g *routing.Graph) error {
	if !g.IsConnex() {
		return ErrNotConnex
	}

	tour := g.GetTour()

	gapSum := 0
	visited := make(map[int]bool, len(tour))
	for _, num := range tour[:len(tour)-1] {
		s, err := g.GetStation(num)
		if err != nil {
			return err
		}
		gapSum += s.Gap()
		visited[num] = true
	}

	if gapSum != 0 {
		return ErrNonZeroGap
	}

	for _, s := range g.ListStations() {
		if s.IsDepot() {
			continue
		}
		if !visited[s.Number] {
			return ErrNotAllVisited
		}
	}

	return nil
}

// ReviewSolution asserts g holds a valid solution, then computes its total
// distance and a normalized score against the MST-based bound pair.
//
// Grounded on original_source's review_solution.
func ReviewSolution(g *routing.Graph) (Metrics, error) {
	if err := AssertSolution(g); err != nil {
		return Metrics{}, err
	}

	tour := g.GetTour()
	var distance float64
	for i := 0; i < len(tour)-1; i++ {
		d, err := g.Distance(tour[i], tour[i+1])
		if err != nil {
			return Metrics{}, err
		}
		distance += d
	}

	lower, upper := ComputeBounds(g)

	score := 1.0
	if upper > lower {
		score = 1.0 - (distance-lower)/(upper-lower)
		if score < 0 {
			score = 0
		}
	}

	return Metrics{Solved: true, Distance: distance, Score: score}, nil
}

// ComputeBounds returns (lowerBound, upperBound) for g's underlying
// instance, independent of any particular tour.
//
// lowerBound is the weight of a minimum spanning tree over the non-depot
// stations (grown Prim-style from the first non-depot station, always
// adding the shortest edge from the grown fragment to a remaining station),
// plus the two shortest depot edges; upperBound is twice that value. The
// teacher's more accurate subgradient Held-Karp 1-tree bound
// (tsp.HeldKarpBound) is intentionally not used here — the spec favors the
// simpler, original-source-compatible formulation (see design notes).
//
// Grounded on original_source's compute_bounds and tsp/mst.go's Prim-style
// incremental-fragment construction.
//
// Complexity: O(n²).
func ComputeBounds(g *routing.Graph) (float64, float64) {
	stations := g.ListStations()
	if len(stations) <= 1 {
		return 0, 0
	}

	var nonDepot []station.Station
	for _, s := range stations {
		if !s.IsDepot() {
			nonDepot = append(nonDepot, s)
		}
	}
	if len(nonDepot) == 0 {
		return 0, 0
	}

	dist := g.Dist()

	visited := []station.Station{nonDepot[0]}
	remaining := make([]station.Station, len(nonDepot)-1)
	copy(remaining, nonDepot[1:])

	var spanning float64
	for len(remaining) > 0 {
		minDist := -1.0
		minIdx := -1
		for _, v := range visited {
			for ri, r := range remaining {
				d := dist(v, r)
				if minIdx == -1 || d < minDist {
					minDist, minIdx = d, ri
				}
			}
		}
		spanning += minDist
		visited = append(visited, remaining[minIdx])
		remaining = append(remaining[:minIdx], remaining[minIdx+1:]...)
	}

	depot, _ := g.GetStation(station.Depot)
	edgeLens := make([]float64, len(nonDepot))
	for i, s := range nonDepot {
		edgeLens[i] = dist(depot, s)
	}
	sort.Float64s(edgeLens)

	twoShortest := edgeLens[0]
	if len(edgeLens) >= 2 {
		twoShortest += edgeLens[1]
	}

	lower := spanning + twoShortest

	return lower, 2 * lower
}
