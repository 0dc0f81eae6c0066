// Package alns implements Adaptive Large Neighborhood Search over an
// already-feasible BSSRP tour: destroy operators (random, worst, Shaw
// removal), a greedy cheapest-insertion repair, roulette-wheel operator
// selection, simulated-annealing acceptance and additive adaptive weight
// updates, grounded on
// original_source/src/solver/algorithm/improver/alns.py.
package alns

import "errors"

// ErrNotConnex indicates the graph does not currently hold a connex tour
// for Run to improve.
var ErrNotConnex = errors.New("alns: graph does not hold a connex tour")

// ErrTooSmall indicates the tour has fewer than two non-depot stations,
// too small for any destroy/repair cycle to do useful work.
var ErrTooSmall = errors.New("alns: tour too small to improve")
