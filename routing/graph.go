package routing

import (
	"sort"

	"github.com/lcmarius/TIPE-BSSR/station"
)

// noSlot marks the absence of a successor/predecessor/index in the dense
// arrays below.
const noSlot = -1

// Graph is a directed chain over a depot and a set of imbalanced stations.
// Every station has at most one successor and one predecessor (spec §3's
// routing graph invariants). Station records live in stations (the arena);
// succ/pred hold slot indices into that same slice, not station numbers,
// so lookups and reversals stay O(1)/O(k) without map indirection.
//
// Determinism: ListStations and ListEdges always return results ordered by
// ascending station number, independent of insertion order.
//
// Concurrency: a Graph is owned by exactly one goroutine at a time (spec
// §5 — "the graph is owned exclusively by the worker executing one task").
// No internal locking is performed.
type Graph struct {
	dist station.DistanceFunc

	stations []station.Station // slot -> station record
	indexOf  map[int]int       // station number -> slot
	succ     []int             // slot -> successor slot, or noSlot
	pred     []int             // slot -> predecessor slot, or noSlot
}

// New creates a Graph containing only the depot (station number 0, zero
// gap). dist is the distance provider used by GetNearestNeighbor and by
// callers computing edge costs; a nil dist defaults to station.Haversine.
//
// Complexity: O(1).
func New(depot station.Station, dist station.DistanceFunc) (*Graph, error) {
	if depot.Number != station.Depot || depot.Gap() != 0 {
		return nil, ErrInvalidDepot
	}
	if dist == nil {
		dist = station.Haversine
	}

	g := &Graph{
		dist:     dist,
		stations: make([]station.Station, 0, 8),
		indexOf:  make(map[int]int, 8),
		succ:     make([]int, 0, 8),
		pred:     make([]int, 0, 8),
	}
	g.appendStation(depot)

	return g, nil
}

// appendStation grows the arena by one slot. Caller guarantees uniqueness.
func (g *Graph) appendStation(s station.Station) {
	slot := len(g.stations)
	g.stations = append(g.stations, s)
	g.indexOf[s.Number] = slot
	g.succ = append(g.succ, noSlot)
	g.pred = append(g.pred, noSlot)
}

// AddStation inserts s with no successor/predecessor yet.
//
// Errors: ErrDuplicateStation if s.Number is already present.
//
// Complexity: O(1) amortized.
func (g *Graph) AddStation(s station.Station) error {
	if _, ok := g.indexOf[s.Number]; ok {
		return ErrDuplicateStation
	}
	g.appendStation(s)

	return nil
}

// HasStation reports whether number refers to a station in the graph.
//
// Complexity: O(1).
func (g *Graph) HasStation(number int) bool {
	_, ok := g.indexOf[number]

	return ok
}

// GetStation returns the station record for number.
//
// Errors: ErrStationNotFound.
//
// Complexity: O(1).
func (g *Graph) GetStation(number int) (station.Station, error) {
	slot, ok := g.indexOf[number]
	if !ok {
		return station.Station{}, ErrStationNotFound
	}

	return g.stations[slot], nil
}

// ListStations returns every station, ordered by ascending station number.
//
// Complexity: O(n log n).
func (g *Graph) ListStations() []station.Station {
	out := make([]station.Station, len(g.stations))
	copy(out, g.stations)
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })

	return out
}

// Size returns the number of stations in the graph (depot included).
//
// Complexity: O(1).
func (g *Graph) Size() int { return len(g.stations) }

// Distance returns g.dist(a, b) for two station numbers already in the
// graph.
//
// Errors: ErrStationNotFound.
//
// Complexity: O(1) (assuming dist is O(1), as station.Haversine is).
func (g *Graph) Distance(a, b int) (float64, error) {
	sa, err := g.GetStation(a)
	if err != nil {
		return 0, err
	}
	sb, err := g.GetStation(b)
	if err != nil {
		return 0, err
	}

	return g.dist(sa, sb), nil
}

// AddEdge inserts the directed edge a->b.
//
// Errors:
//   - ErrStationNotFound if a or b is missing.
//   - ErrSelfEdge if a == b.
//   - ErrEdgeExists if a already has a successor.
//
// Complexity: O(1).
func (g *Graph) AddEdge(a, b int) error {
	sa, ok := g.indexOf[a]
	if !ok {
		return ErrStationNotFound
	}
	sb, ok := g.indexOf[b]
	if !ok {
		return ErrStationNotFound
	}
	if a == b {
		return ErrSelfEdge
	}
	if g.succ[sa] != noSlot {
		return ErrEdgeExists
	}

	g.succ[sa] = sb
	g.pred[sb] = sa

	return nil
}

// RemoveEdge deletes the directed edge a->b.
//
// Errors: ErrStationNotFound, ErrEdgeNotFound.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b int) error {
	sa, ok := g.indexOf[a]
	if !ok {
		return ErrStationNotFound
	}
	sb, ok := g.indexOf[b]
	if !ok {
		return ErrStationNotFound
	}
	if g.succ[sa] != sb {
		return ErrEdgeNotFound
	}

	g.succ[sa] = noSlot
	g.pred[sb] = noSlot

	return nil
}

// HasEdge reports whether the directed edge a->b exists.
//
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int) bool {
	sa, ok := g.indexOf[a]
	if !ok {
		return false
	}
	sb, ok := g.indexOf[b]

	return ok && g.succ[sa] == sb
}

// GetSuccessor returns the successor of a, and false if a has none.
//
// Errors: ErrStationNotFound.
//
// Complexity: O(1).
func (g *Graph) GetSuccessor(a int) (int, bool, error) {
	sa, ok := g.indexOf[a]
	if !ok {
		return 0, false, ErrStationNotFound
	}
	if g.succ[sa] == noSlot {
		return 0, false, nil
	}

	return g.stations[g.succ[sa]].Number, true, nil
}

// GetPredecessor returns the predecessor of a, and false if a has none.
//
// Errors: ErrStationNotFound.
//
// Complexity: O(1).
func (g *Graph) GetPredecessor(a int) (int, bool, error) {
	sa, ok := g.indexOf[a]
	if !ok {
		return 0, false, ErrStationNotFound
	}
	if g.pred[sa] == noSlot {
		return 0, false, nil
	}

	return g.stations[g.pred[sa]].Number, true, nil
}

// ListEdges enumerates (a, succ[a]) for every station a with a successor,
// ordered by ascending a.
//
// Complexity: O(n log n).
func (g *Graph) ListEdges() [][2]int {
	out := make([][2]int, 0, len(g.stations))
	for slot, succ := range g.succ {
		if succ != noSlot {
			out = append(out, [2]int{g.stations[slot].Number, g.stations[succ].Number})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// IsConnex reports whether every station has exactly one successor and one
// predecessor, and the walk from the depot visits every station exactly
// once before returning to the depot (spec §3's "connex" invariant).
//
// Complexity: O(n).
func (g *Graph) IsConnex() bool {
	n := len(g.stations)
	for slot := 0; slot < n; slot++ {
		if g.succ[slot] == noSlot || g.pred[slot] == noSlot {
			return false
		}
	}

	visited := make([]bool, n)
	depotSlot := g.indexOf[station.Depot]
	cur := depotSlot
	for i := 0; i < n; i++ {
		if visited[cur] {
			return false
		}
		visited[cur] = true
		cur = g.succ[cur]
	}

	return cur == depotSlot
}

// GetNearestNeighbor returns the station, among those satisfying predicate
// and distinct from ref, that minimizes Distance(ref, candidate). Ties are
// broken deterministically by lowest station number. It returns
// ok == false if no candidate satisfies predicate.
//
// Errors: ErrStationNotFound if ref is missing.
//
// Complexity: O(n log n).
func (g *Graph) GetNearestNeighbor(ref int, predicate func(station.Station) bool) (station.Station, bool, error) {
	refStation, err := g.GetStation(ref)
	if err != nil {
		return station.Station{}, false, err
	}

	var (
		best    station.Station
		found   bool
		minDist = 0.0
	)
	for _, candidate := range g.ListStations() {
		if candidate.Number == ref || !predicate(candidate) {
			continue
		}
		d := g.dist(refStation, candidate)
		if !found || d < minDist {
			best, minDist, found = candidate, d, true
		}
	}

	return best, found, nil
}

// GetTour walks successors from the depot and returns the visited station
// numbers, starting and ending at the depot. It does not require the graph
// to be connex; it stops as soon as it revisits a station (normally the
// depot, after exactly Size() hops on a connex graph) or reaches a dead end.
//
// Complexity: O(n).
func (g *Graph) GetTour() []int {
	depotSlot := g.indexOf[station.Depot]
	n := len(g.stations)

	tour := make([]int, 0, n+1)
	tour = append(tour, station.Depot)

	visited := make([]bool, n)
	visited[depotSlot] = true
	cur := depotSlot
	for {
		next := g.succ[cur]
		if next == noSlot {
			return tour
		}
		tour = append(tour, g.stations[next].Number)
		if next == depotSlot {
			return tour
		}
		if visited[next] {
			// A cycle not passing back through the depot; stop here rather
			// than loop forever. Such a graph is not connex, so
			// review.AssertSolution rejects it with review.ErrNotConnex.
			return tour
		}
		visited[next] = true
		cur = next
	}
}

// ApplyTour replaces the graph's entire edge set with the chain described
// by tour, a closed sequence starting and ending at the depot
// (tour[0] == tour[len(tour)-1] == 0). Used by improvers to commit a
// rewritten tour back into the graph (spec §4.4's apply_turn pattern).
//
// Errors: ErrStationNotFound if tour references an unknown station.
//
// Complexity: O(n).
func (g *Graph) ApplyTour(tour []int) error {
	for _, edge := range g.ListEdges() {
		if err := g.RemoveEdge(edge[0], edge[1]); err != nil {
			return err
		}
	}
	for i := 0; i < len(tour)-1; i++ {
		if err := g.AddEdge(tour[i], tour[i+1]); err != nil {
			return err
		}
	}

	return nil
}

// Clone returns a deep copy of the graph, safe for concurrent use by a
// different worker than the original.
//
// Complexity: O(n).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		dist:     g.dist,
		stations: make([]station.Station, len(g.stations)),
		indexOf:  make(map[int]int, len(g.indexOf)),
		succ:     make([]int, len(g.succ)),
		pred:     make([]int, len(g.pred)),
	}
	copy(clone.stations, g.stations)
	copy(clone.succ, g.succ)
	copy(clone.pred, g.pred)
	for k, v := range g.indexOf {
		clone.indexOf[k] = v
	}

	return clone
}

// Dist exposes the graph's distance provider (used by improvers and ALNS
// to build their own per-call distance caches without recomputing from
// scratch for every pair).
func (g *Graph) Dist() station.DistanceFunc { return g.dist }
