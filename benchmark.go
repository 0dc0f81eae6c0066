package bssrp

import "github.com/lcmarius/TIPE-BSSR/bench"

// Benchmark runs algorithms across every category in cfg and returns the
// aggregated bench.Report. A thin pass-through to bench.Run kept at the
// root so callers depend on a single package for both solving and
// benchmarking, per the spec's External Interfaces.
func Benchmark(algorithms map[string]bench.Algorithm, cfg bench.Config) (bench.Report, error) {
	return bench.Run(algorithms, cfg)
}
