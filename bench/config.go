package bench

import (
	"math/rand"

	"github.com/lcmarius/TIPE-BSSR/generate"
	"github.com/lcmarius/TIPE-BSSR/routing"
)

// Algorithm runs one full solve attempt against g (already a fresh,
// feasible-or-not instance clone) and mutates it into a completed tour.
// rng is the task's private RNG — Algorithm implementations must never
// share it or fall back to a package-global source (spec §5).
type Algorithm func(g *routing.Graph, capacity int, rng *rand.Rand) error

// Category names one problem topology and the generator that produces its
// instances.
type Category struct {
	Name      string
	Generator generate.Generator
}

// Config parameterizes a full benchmark run, mirroring original_source's
// run_benchmarks defaults (n_stations=20, vehicle_capacity=12,
// num_problems=5, base_seed=9783) generalized into a reusable struct.
type Config struct {
	NStations       int
	VehicleCapacity int
	NumProblems     int
	BaseSeed        int64
	Workers         int
	Categories      []Category
}

// DefaultConfig mirrors original_source's run_benchmarks parameters, with
// the four standard topologies and four workers.
func DefaultConfig() Config {
	return Config{
		NStations:       20,
		VehicleCapacity: 12,
		NumProblems:     5,
		BaseSeed:        9783,
		Workers:         4,
		Categories: []Category{
			{Name: "Random Uniform", Generator: generate.Uniform},
			{Name: "Clustered", Generator: generate.Clustered},
			{Name: "Hub-and-Spoke", Generator: generate.HubSpoke},
			{Name: "Tight Capacity", Generator: generate.TightCapacity},
		},
	}
}
