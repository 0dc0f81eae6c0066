package alns

import (
	"math"
	"math/rand"

	"github.com/lcmarius/TIPE-BSSR/routing"
)

// Run improves g's current tour via Adaptive Large Neighborhood Search:
// alternating destroy (random/worst/Shaw removal, chosen by roulette
// wheel over adaptively-weighted operators) and greedy cheapest-insertion
// repair, accepting moves under a simulated-annealing schedule. The best
// tour seen across all iterations is committed back into g.
//
// Grounded on original_source's alns(): same operator set, same score
// tiers (15 for a new global best, 10 for a current-solution improvement,
// 5 for an SA-accepted worsening move, 0 otherwise), same additive
// (no-decay) weight update and geometric cooling schedule.
//
// Errors:
//   - ErrNotConnex if g does not currently hold a connex tour.
//   - ErrTooSmall if the tour has fewer than two non-depot stations.
//
// Complexity: O(MaxIterations * n) amortized per iteration (destroy and
// repair are both linear to low-polynomial in tour length for the small
// RemovalSize the spec assumes); O(n) to commit the result.
func Run(g *routing.Graph, capacity int, opts Options) error {
	if !g.IsConnex() {
		return ErrNotConnex
	}

	initial := g.GetTour()
	if len(initial) < 4 {
		return ErrTooSmall
	}

	rng := rngFromSeed(opts.Seed)

	currentTour := append([]int(nil), initial...)
	currentDistance := tourDistance(g, currentTour)
	bestTour := append([]int(nil), currentTour...)
	bestDistance := currentDistance

	operators := []destroyOperator{randomRemoval, worstRemoval, shawRemoval}
	weights := []float64{1.0, 1.0, 1.0}

	temperature := currentDistance * opts.InitialTemperatureFactor
	if temperature <= 0 {
		temperature = opts.MinTemperature
	}

	for iter := 0; iter < opts.MaxIterations; iter++ {
		opIndex := rouletteWheelSelect(weights, rng)
		remaining, removed := operators[opIndex](g, currentTour, opts.RemovalSize, rng)
		if len(removed) == 0 {
			continue
		}

		newTour, ok := greedyRepair(g, remaining, removed, capacity)
		if !ok {
			continue
		}
		newDistance := tourDistance(g, newTour)

		accept := false
		score := 0.0

		switch {
		case newDistance < bestDistance:
			bestTour = append([]int(nil), newTour...)
			bestDistance = newDistance
			currentTour = newTour
			currentDistance = newDistance
			accept = true
			score = 15
		case newDistance < currentDistance:
			currentTour = newTour
			currentDistance = newDistance
			accept = true
			score = 10
		default:
			delta := newDistance - currentDistance
			probability := 0.0
			if temperature > 0 {
				probability = math.Exp(-delta / temperature)
			}
			if rng.Float64() < probability {
				currentTour = newTour
				currentDistance = newDistance
				accept = true
				score = 5
			}
		}

		if accept {
			weights[opIndex] += score
		}

		temperature = math.Max(opts.MinTemperature, temperature*opts.CoolingRate)
	}

	return g.ApplyTour(bestTour)
}

// tourDistance sums the graph's distance provider along every edge of a
// closed tour.
func tourDistance(g *routing.Graph, tour []int) float64 {
	var total float64
	for i := 0; i < len(tour)-1; i++ {
		d, _ := g.Distance(tour[i], tour[i+1])
		total += d
	}

	return total
}

// rouletteWheelSelect picks an operator index with probability
// proportional to its weight.
func rouletteWheelSelect(weights []float64, rng *rand.Rand) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}

	r := rng.Float64() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if r < cum {
			return i
		}
	}

	return len(weights) - 1
}
