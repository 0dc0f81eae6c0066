package bssrp

import (
	"math/rand"

	"github.com/lcmarius/TIPE-BSSR/alns"
	"github.com/lcmarius/TIPE-BSSR/improve"
	"github.com/lcmarius/TIPE-BSSR/routing"
)

// Builder constructs a feasible initial tour. It has the same underlying
// signature as construct.Builder, so construct.Greedy and
// construct.SurplusDeficit convert to it directly.
type Builder func(g *routing.Graph, capacity int, rng *rand.Rand) error

// Improver refines an already-feasible tour in place.
type Improver func(g *routing.Graph, capacity int) error

// TwoOptImprover adapts improve.TwoOpt into an Improver bound to opts.
func TwoOptImprover(opts improve.Options) Improver {
	return func(g *routing.Graph, capacity int) error {
		return improve.TwoOpt(g, capacity, opts)
	}
}

// ThreeOptImprover adapts improve.ThreeOpt into an Improver bound to opts.
func ThreeOptImprover(opts improve.Options) Improver {
	return func(g *routing.Graph, capacity int) error {
		return improve.ThreeOpt(g, capacity, opts)
	}
}

// ALNSImprover adapts alns.Run into an Improver bound to opts.
func ALNSImprover(opts alns.Options) Improver {
	return func(g *routing.Graph, capacity int) error {
		return alns.Run(g, capacity, opts)
	}
}
