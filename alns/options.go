package alns

// Options governs Run, mirroring the teacher's Options/DefaultOptions
// convention. Defaults come from original_source's alns() keyword
// defaults (max_iterations=1000, removal_size=5) plus its in-body
// simulated-annealing schedule (cooling_rate=0.995, min_temperature=0.01,
// initial temperature = 10% of the starting tour distance).
type Options struct {
	// MaxIterations is the number of destroy/repair cycles to run.
	MaxIterations int

	// RemovalSize is the number of stations removed by the destroy
	// operator at each iteration (clamped to the number of non-depot
	// stations actually in the tour).
	RemovalSize int

	// Seed seeds the run's private RNG; 0 selects a fixed default stream.
	Seed int64

	// CoolingRate is the geometric cooling factor applied to the SA
	// temperature after every iteration (0 < CoolingRate < 1).
	CoolingRate float64

	// MinTemperature floors the SA temperature so the acceptance
	// probability for a worsening move never reaches exactly zero.
	MinTemperature float64

	// InitialTemperatureFactor sets the starting SA temperature as this
	// fraction of the initial tour's total distance.
	InitialTemperatureFactor float64
}

// DefaultOptions mirrors original_source's alns() defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations:            1000,
		RemovalSize:               5,
		Seed:                      0,
		CoolingRate:               0.995,
		MinTemperature:            0.01,
		InitialTemperatureFactor: 0.1,
	}
}
