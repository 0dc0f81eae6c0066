package generate

import (
	"math/rand"

	"github.com/lcmarius/TIPE-BSSR/routing"
)

// Uniform scatters stations uniformly within +-0.05 degrees of the depot.
//
// Grounded on generate_random_instance.
func Uniform(cfg Config) (*routing.Graph, error) {
	return buildInstance(cfg, 0, func(_ int, rng *rand.Rand) (float64, float64) {
		return depotLong + jitter(rng, 0.05), depotLat + jitter(rng, 0.05)
	})
}

// clusterCenters mirrors generate_clustered_instance's three fixed cluster
// centers around the depot (north-east, north-west, south).
var clusterCenters = [3][2]float64{
	{depotLong + 0.03, depotLat + 0.03},
	{depotLong - 0.03, depotLat + 0.02},
	{depotLong, depotLat - 0.03},
}

// Clustered groups stations into three fixed clusters around the depot,
// each station placed within +-0.01 degrees of its cluster's center.
//
// Grounded on generate_clustered_instance.
func Clustered(cfg Config) (*routing.Graph, error) {
	return buildInstance(cfg, 0, func(i int, rng *rand.Rand) (float64, float64) {
		center := clusterCenters[i%len(clusterCenters)]

		return center[0] + jitter(rng, 0.01), center[1] + jitter(rng, 0.01)
	})
}

// HubSpoke places 70% of stations close to the depot (+-0.02 degrees) and
// 30% as far outliers (+-0.06 degrees), producing a star-shaped instance.
//
// Grounded on generate_hub_spoke_instance.
func HubSpoke(cfg Config) (*routing.Graph, error) {
	return buildInstance(cfg, 0, func(_ int, rng *rand.Rand) (float64, float64) {
		if rng.Float64() < 0.7 {
			return depotLong + jitter(rng, 0.02), depotLat + jitter(rng, 0.02)
		}

		return depotLong + jitter(rng, 0.06), depotLat + jitter(rng, 0.06)
	})
}

// TightCapacity reuses the uniform spatial layout but draws every gap from
// 80-100% of the vehicle's half-capacity, stressing the feasibility
// constraint far harder than the other three topologies.
//
// Grounded on generate_tight_capacity_instance.
func TightCapacity(cfg Config) (*routing.Graph, error) {
	return buildInstance(cfg, 0.8, func(_ int, rng *rand.Rand) (float64, float64) {
		return depotLong + jitter(rng, 0.05), depotLat + jitter(rng, 0.05)
	})
}
