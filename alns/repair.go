package alns

import (
	"github.com/lcmarius/TIPE-BSSR/routing"
)

// greedyRepair reinserts every station in removed back into tour one at a
// time, each at its cheapest feasible insertion position (the edge (a, b)
// minimizing dist(a,s)+dist(s,b)-dist(a,b) subject to the vehicle load
// staying within [0, capacity] at every point of the resulting tour).
// Returns (nil, false) if any removed station has no feasible insertion
// point.
//
// Grounded on original_source's greedy_repair (referenced by alns(), body
// not present in the retrieved source — the cheapest-insertion criterion
// follows the spec's description of repair operators directly).
func greedyRepair(g *routing.Graph, tour []int, removed []int, capacity int) ([]int, bool) {
	current := append([]int(nil), tour...)

	for _, s := range removed {
		bestPos := -1
		bestDelta := 0.0

		for i := 0; i < len(current)-1; i++ {
			candidate := insertAt(current, i, s)
			if !feasibleTour(g, candidate, capacity) {
				continue
			}

			a, b := current[i], current[i+1]
			dab, _ := g.Distance(a, b)
			das, _ := g.Distance(a, s)
			dsb, _ := g.Distance(s, b)
			delta := das + dsb - dab

			if bestPos == -1 || delta < bestDelta {
				bestPos, bestDelta = i, delta
			}
		}

		if bestPos == -1 {
			return nil, false
		}
		current = insertAt(current, bestPos, s)
	}

	return current, true
}

// insertAt returns a copy of tour with s inserted immediately after
// position i.
func insertAt(tour []int, i, s int) []int {
	out := make([]int, 0, len(tour)+1)
	out = append(out, tour[:i+1]...)
	out = append(out, s)
	out = append(out, tour[i+1:]...)

	return out
}

// feasibleTour reports whether the running vehicle load along tour (a
// closed depot-to-depot sequence) stays within [0, capacity].
func feasibleTour(g *routing.Graph, tour []int, capacity int) bool {
	load := 0
	for _, num := range tour[1 : len(tour)-1] {
		s, err := g.GetStation(num)
		if err != nil {
			return false
		}
		load += s.Gap()
		if load < 0 || load > capacity {
			return false
		}
	}

	return true
}
