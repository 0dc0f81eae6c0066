package alns

import (
	"math/rand"

	"github.com/lcmarius/TIPE-BSSR/routing"
)

// destroyOperator removes up to k non-depot stations from tour and
// returns the shortened tour alongside the removed station numbers, in
// the order they were removed.
type destroyOperator func(g *routing.Graph, tour []int, k int, rng *rand.Rand) (remaining, removed []int)

// removableCount clamps a requested removal size to the number of
// removable (non-depot) stations actually present in tour.
func removableCount(tour []int, k int) int {
	removable := len(tour) - 2 // exclude both depot occurrences
	if removable < 0 {
		removable = 0
	}
	if k > removable {
		return removable
	}

	return k
}

// without returns tour with every station in cut removed, depot occurrences
// untouched.
func without(tour []int, cut map[int]bool) []int {
	out := make([]int, 0, len(tour))
	for _, num := range tour {
		if !cut[num] {
			out = append(out, num)
		}
	}

	return out
}

// randomRemoval removes k non-depot stations chosen uniformly at random.
//
// Grounded on the spec's "random removal" destroy operator description;
// original_source references random_removal by name but its body was not
// present in the retrieved source, so the uniform-sample semantics follow
// the spec directly.
func randomRemoval(g *routing.Graph, tour []int, k int, rng *rand.Rand) ([]int, []int) {
	k = removableCount(tour, k)
	if k == 0 {
		return tour, nil
	}

	interior := make([]int, len(tour)-2)
	copy(interior, tour[1:len(tour)-1])
	rng.Shuffle(len(interior), func(i, j int) { interior[i], interior[j] = interior[j], interior[i] })

	removed := append([]int(nil), interior[:k]...)
	cut := make(map[int]bool, k)
	for _, n := range removed {
		cut[n] = true
	}

	return without(tour, cut), removed
}

// worstRemoval removes the k stations whose removal yields the largest
// cost saving (detour cost): for station b between predecessor a and
// successor c, the saving is dist(a,b)+dist(b,c)-dist(a,c).
func worstRemoval(g *routing.Graph, tour []int, k int, rng *rand.Rand) ([]int, []int) {
	_ = rng
	k = removableCount(tour, k)
	if k == 0 {
		return tour, nil
	}

	type scored struct {
		number int
		saving float64
	}
	scores := make([]scored, 0, len(tour)-2)
	for i := 1; i < len(tour)-1; i++ {
		a, b, c := tour[i-1], tour[i], tour[i+1]
		dab, _ := g.Distance(a, b)
		dbc, _ := g.Distance(b, c)
		dac, _ := g.Distance(a, c)
		scores = append(scores, scored{number: b, saving: dab + dbc - dac})
	}

	// Selection sort of the top k by descending saving; k is small (a
	// handful of stations per iteration), so O(k*n) beats a full sort.
	removed := make([]int, 0, k)
	for iter := 0; iter < k; iter++ {
		best := -1
		for i, s := range scores {
			if s.number == -1 {
				continue
			}
			if best == -1 || s.saving > scores[best].saving {
				best = i
			}
		}
		if best == -1 {
			break
		}
		removed = append(removed, scores[best].number)
		scores[best].number = -1
	}

	cut := make(map[int]bool, len(removed))
	for _, n := range removed {
		cut[n] = true
	}

	return without(tour, cut), removed
}

// shawRemoval removes a random seed station and the k-1 stations most
// "related" to it (closest by distance), following Shaw's relatedness
// removal: similarity is purely geographic here since BSSRP instances
// carry no time-window or demand-similarity dimension.
func shawRemoval(g *routing.Graph, tour []int, k int, rng *rand.Rand) ([]int, []int) {
	k = removableCount(tour, k)
	if k == 0 {
		return tour, nil
	}

	interior := make([]int, len(tour)-2)
	copy(interior, tour[1:len(tour)-1])

	seedIdx := rng.Intn(len(interior))
	seed := interior[seedIdx]

	type distPair struct {
		number int
		dist   float64
	}
	pairs := make([]distPair, 0, len(interior)-1)
	for _, n := range interior {
		if n == seed {
			continue
		}
		d, _ := g.Distance(seed, n)
		pairs = append(pairs, distPair{number: n, dist: d})
	}
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && pairs[j].dist < pairs[j-1].dist; j-- {
			pairs[j], pairs[j-1] = pairs[j-1], pairs[j]
		}
	}

	removed := []int{seed}
	for i := 0; i < len(pairs) && len(removed) < k; i++ {
		removed = append(removed, pairs[i].number)
	}

	cut := make(map[int]bool, len(removed))
	for _, n := range removed {
		cut[n] = true
	}

	return without(tour, cut), removed
}
