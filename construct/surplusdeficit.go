package construct

import (
	"math/rand"

	"github.com/lcmarius/TIPE-BSSR/routing"
	"github.com/lcmarius/TIPE-BSSR/station"
)

// SurplusDeficit builds a tour by first chaining every surplus station in
// nearest-neighbor order from the depot, then greedily inserting deficit
// stations between two consecutive surplus stops whenever the running
// vehicle load can absorb them and the nearest such deficit station is
// closer than the next surplus stop, and finally appending any deficit stations
// that were never inserted. rng is accepted to satisfy the Builder
// signature but is unused: the heuristic is fully deterministic given the
// graph's distance provider.
//
// Grounded on original_source's method2 (construire_chemin_surplus_graph +
// method2): same two-phase surplus-chain / deficit-interleave structure,
// adapted to mutate a routing.Graph in place rather than building a
// Python-side snapshot list.
//
// Errors: none beyond what AddEdge can return (ErrStationNotFound,
// ErrEdgeExists, ErrSelfEdge are all programmer errors here — a well-formed
// graph with a single surplus/deficit partition never triggers them).
//
// Complexity: O(n²).
func SurplusDeficit(g *routing.Graph, capacity int, rng *rand.Rand) error {
	_ = rng

	surplus := stationsMatching(g, func(s station.Station) bool { return s.IsLoading() })
	if len(surplus) == 0 {
		// No surplus station to chain from; nothing for the vehicle to do
		// (original_source's method2 returns here without touching the graph).
		return nil
	}

	deficits := stationsMatching(g, func(s station.Station) bool { return s.IsUnloading() })
	remainingGap := make(map[int]int, g.Size())
	for _, s := range g.ListStations() {
		remainingGap[s.Number] = s.Gap()
	}

	chain := surplusChain(g, surplus)

	current := chain[0]
	if err := g.AddEdge(station.Depot, current.Number); err != nil {
		return err
	}
	load := remainingGap[current.Number]
	remainingGap[current.Number] = 0

	for _, next := range chain[1:] {
		for len(deficits) > 0 {
			possible := possibleDeficits(deficits, remainingGap, load)
			if len(possible) == 0 {
				break
			}

			nearest := nearestAmong(g, current.Number, possible)
			if nearest.Number == -1 {
				break
			}

			distToDeficit, err := g.Distance(current.Number, nearest.Number)
			if err != nil {
				return err
			}
			distToNext, err := g.Distance(current.Number, next.Number)
			if err != nil {
				return err
			}
			if distToDeficit >= distToNext {
				break
			}

			need := -remainingGap[nearest.Number]
			load -= need
			remainingGap[nearest.Number] = 0
			if err := g.AddEdge(current.Number, nearest.Number); err != nil {
				return err
			}
			current = nearest
			deficits = removeStation(deficits, nearest.Number)
		}

		if err := g.AddEdge(current.Number, next.Number); err != nil {
			return err
		}
		current = next

		diff := remainingGap[next.Number]
		switch {
		case diff > 0:
			taken := min(diff, capacity-load)
			load += taken
			remainingGap[next.Number] -= taken
		case diff < 0:
			dropped := min(-diff, load)
			load -= dropped
			remainingGap[next.Number] += dropped
		}
	}

	for _, d := range deficits {
		if remainingGap[d.Number] >= 0 {
			continue
		}
		need := -remainingGap[d.Number]
		load -= need
		remainingGap[d.Number] = 0
		if err := g.AddEdge(current.Number, d.Number); err != nil {
			return err
		}
		current = d
	}

	return g.AddEdge(current.Number, station.Depot)
}

func stationsMatching(g *routing.Graph, predicate func(station.Station) bool) []station.Station {
	var out []station.Station
	for _, s := range g.ListStations() {
		if s.IsDepot() {
			continue
		}
		if predicate(s) {
			out = append(out, s)
		}
	}

	return out
}

// surplusChain walks surplus, greedily visiting the nearest not-yet-visited
// surplus station at every step, starting from the depot.
func surplusChain(g *routing.Graph, surplus []station.Station) []station.Station {
	remaining := append([]station.Station(nil), surplus...)
	chain := make([]station.Station, 0, len(surplus))

	cursor := station.Depot
	for len(remaining) > 0 {
		nearest := nearestAmong(g, cursor, remaining)
		chain = append(chain, nearest)
		remaining = removeStation(remaining, nearest.Number)
		cursor = nearest.Number
	}

	return chain
}

// nearestAmong returns the station in candidates closest to ref by the
// graph's distance provider. Returns a sentinel Station with Number == -1
// if candidates is empty.
func nearestAmong(g *routing.Graph, ref int, candidates []station.Station) station.Station {
	if len(candidates) == 0 {
		return station.Station{Number: -1}
	}

	refStation, err := g.GetStation(ref)
	if err != nil {
		return station.Station{Number: -1}
	}

	best := candidates[0]
	bestDist := g.Dist()(refStation, best)
	for _, c := range candidates[1:] {
		d := g.Dist()(refStation, c)
		if d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}

func possibleDeficits(deficits []station.Station, remainingGap map[int]int, load int) []station.Station {
	var out []station.Station
	for _, d := range deficits {
		if -remainingGap[d.Number] <= load {
			out = append(out, d)
		}
	}

	return out
}

func removeStation(list []station.Station, number int) []station.Station {
	out := make([]station.Station, 0, len(list))
	for _, s := range list {
		if s.Number != number {
			out = append(out, s)
		}
	}

	return out
}
