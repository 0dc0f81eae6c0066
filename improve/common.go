package improve

import (
	"math"
	"time"

	"github.com/lcmarius/TIPE-BSSR/routing"
	"github.com/lcmarius/TIPE-BSSR/station"
)

// round1e9 rounds a float64 cost to 1e-9, matching the teacher's
// cost-rounding convention (tsp.round1e9). TwoOpt and ThreeOpt do not call
// it; they compare costs against Options.Eps instead.
func round1e9(x float64) float64 {
	const scale = 1e9

	return math.Round(x*scale) / scale
}

// distanceCache prefetches every pairwise distance between the stations of
// a closed tour into a dense map, removing repeated haversine calls from
// the O(n²) candidate scan inside TwoOpt/ThreeOpt — the same rationale as
// the teacher's dense w[i*n+j] buffer in tsp.TwoOpt, adapted from a
// rectangular matrix to a map keyed by station-number pairs since our tour
// is not guaranteed to visit a contiguous [0..n) integer range.
type distanceCache struct {
	g   *routing.Graph
	buf map[[2]int]float64
}

func newDistanceCache(g *routing.Graph, tour []int) *distanceCache {
	c := &distanceCache{g: g, buf: make(map[[2]int]float64, len(tour)*len(tour))}
	stations := make([]station.Station, len(tour))
	for i, num := range tour {
		s, _ := g.GetStation(num)
		stations[i] = s
	}
	dist := g.Dist()
	for i := range stations {
		for j := range stations {
			if i == j {
				continue
			}
			c.buf[[2]int{stations[i].Number, stations[j].Number}] = dist(stations[i], stations[j])
		}
	}

	return c
}

func (c *distanceCache) at(a, b int) float64 { return c.buf[[2]int{a, b}] }

// tourCost sums the cached distance along every edge of a closed tour.
func (c *distanceCache) tourCost(tour []int) float64 {
	var total float64
	for i := 0; i < len(tour)-1; i++ {
		total += c.at(tour[i], tour[i+1])
	}

	return total
}

// feasible reports whether the running vehicle load, accumulated station
// by station along tour, never leaves [0, capacity]. tour is a closed
// sequence starting and ending at the depot.
func feasible(g *routing.Graph, tour []int, capacity int) bool {
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

// deadlineChecker returns a closure that reports, every 2048 calls,
// whether now is past deadline — the teacher's sparse-polling pattern for
// a soft wall-clock budget.
func deadlineChecker(limit time.Duration) func() bool {
	if limit <= 0 {
		return func() bool { return false }
	}
	deadline := time.Now().Add(limit)
	step := 0

	return func() bool {
		step++
		if step&2047 != 0 {
			return false
		}

		return time.Now().After(deadline)
	}
}

// reverseSegment reverses tour[i..k] in place.
func reverseSegment(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
