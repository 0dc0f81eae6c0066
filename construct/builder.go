package construct

import "github.com/lcmarius/TIPE-BSSR/routing"
import "math/rand"

// Builder constructs a feasible initial tour directly into g (wiring the
// depot's and every station's successor/predecessor), given the vehicle's
// capacity. rng supplies any randomness the builder needs; callers must
// pass a per-task *rand.Rand, never a shared or global one (spec §5).
type Builder func(g *routing.Graph, capacity int, rng *rand.Rand) error
