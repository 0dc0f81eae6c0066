// Package generate builds synthetic BSSRP instances across four spatial
// topologies — uniform, clustered, hub-and-spoke and tight-capacity — all
// sharing the same gap-balancing logic and differing only in how station
// coordinates are jittered around the depot.
//
// Grounded on original_source/src/solver/benchmark.py's
// generate_random_instance / generate_clustered_instance /
// generate_hub_spoke_instance / generate_tight_capacity_instance.
package generate

import "errors"

// ErrTooFewStations indicates Config.NStations is below the minimum of 2
// needed to produce at least one balanced surplus/deficit pair.
var ErrTooFewStations = errors.New("generate: at least 2 stations are required")
