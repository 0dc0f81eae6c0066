// Package bssrp solves the Bike-Sharing Station Rebalancing Problem: given
// a depot and a set of stations each with a current and a target bike
// count, find a single bounded-capacity vehicle tour that visits every
// imbalanced station exactly once and returns to the depot, moving bikes
// from surplus stations to deficit stations along the way.
//
// The solver is organized as a pipeline of independently usable packages:
//
//	station/   — the Station record and the haversine distance provider
//	routing/   — the directed successor/predecessor routing graph
//	construct/ — GREEDY and SURPLUS-DEFICIT construction heuristics
//	improve/   — 2-opt and 3-opt local search over a constructed tour
//	alns/      — Adaptive Large Neighborhood Search metaheuristic
//	review/    — feasibility assertion and MST-bound solution scoring
//	generate/  — synthetic instance generators (four spatial topologies)
//	bench/     — parallel multi-algorithm benchmark harness
//
// Solve wires construct -> improve/alns -> review into one call; Benchmark
// wires generate -> bench for comparing algorithms across instance
// topologies.
package bssrp
