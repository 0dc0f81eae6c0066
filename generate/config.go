package generate

import (
	"math/rand"

	"github.com/lcmarius/TIPE-BSSR/routing"
)

// Config parameterizes every generator: how many stations to place, the
// vehicle capacity the generated gaps must respect (|gap| <= capacity/2,
// per spec), and the seed for a private, per-call *rand.Rand.
type Config struct {
	NStations       int
	VehicleCapacity int
	Seed            int64
}

// Generator builds one synthetic instance from cfg.
type Generator func(cfg Config) (*routing.Graph, error)

// depotLong, depotLat place the depot at a fixed reference point (central
// Nantes, matching original_source's hardcoded depot coordinates) so that
// every generated instance is comparable across categories.
const (
	depotLong = -1.5536
	depotLat  = 47.2173
)

// newRNG returns a deterministic *rand.Rand for cfg.Seed, a 0 seed
// selecting Go's default (time-independent) source state deterministically
// via a fixed non-zero seed, matching the rest of the module's
// seed-zero-means-default convention.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}

	return rand.New(rand.NewSource(seed))
}
