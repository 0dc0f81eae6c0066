package generate

import (
	"fmt"
	"math/rand"

	"github.com/lcmarius/TIPE-BSSR/routing"
	"github.com/lcmarius/TIPE-BSSR/station"
)

// placementFunc returns the (longitude, latitude) of the i-th generated
// station (0-indexed among the non-depot stations), given the instance's
// private RNG.
type placementFunc func(i int, rng *rand.Rand) (long, lat float64)

// buildInstance is the shared scaffold behind all four topology
// generators: validate cfg, derive balanced gaps, place each station via
// place, assign a random capacity/target consistent with its gap, and
// wire everything into a fresh routing.Graph.
func buildInstance(cfg Config, tightLow float64, place placementFunc) (*routing.Graph, error) {
	if cfg.NStations < 2 {
		return nil, ErrTooFewStations
	}

	rng := newRNG(cfg.Seed)
	maxGap := cfg.VehicleCapacity / 2
	gaps := balancedGaps(cfg.NStations, maxGap, tightLow, rng)

	depot := station.New(station.Depot, "Depot", 50, "Centre", depotLong, depotLat, 0, 0)
	g, err := routing.New(depot, nil)
	if err != nil {
		return nil, err
	}

	for i := 0; i < cfg.NStations; i++ {
		long, lat := place(i, rng)

		capacity := randIntRange(rng, 15, 30)
		target := randIntRange(rng, 5, capacity-5)
		count := target + gaps[i]

		s := station.New(
			i+1,
			stationName(i),
			capacity,
			stationAddress(i),
			long, lat,
			count, target,
		)
		if err := g.AddStation(s); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func stationName(i int) string {
	if i < 26 {
		return fmt.Sprintf("Station %c", 'A'+i)
	}

	return fmt.Sprintf("Station %d", i+1)
}

func stationAddress(i int) string {
	if i < 26 {
		return fmt.Sprintf("%d Rue %c", i+1, 'A'+i)
	}

	return fmt.Sprintf("%d Rue %d", i+1, i+1)
}

// jitter returns rng.Float64() scaled and shifted into [-span, span].
func jitter(rng *rand.Rand, span float64) float64 {
	return (rng.Float64()*2 - 1) * span
}
