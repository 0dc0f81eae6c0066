package generate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllTopologiesProduceZeroSumGaps(t *testing.T) {
	generators := map[string]Generator{
		"uniform":   Uniform,
		"clustered": Clustered,
		"hub-spoke": HubSpoke,
		"tight":     TightCapacity,
	}

	cfg := Config{NStations: 10, VehicleCapacity: 16, Seed: 42}

	for name, gen := range generators {
		g, err := gen(cfg)
		require.NoErrorf(t, err, "generator %s", name)
		require.Equal(t, cfg.NStations+1, g.Size())

		sum := 0
		for _, s := range g.ListStations() {
			sum += s.Gap()
		}
		require.Equalf(t, 0, sum, "generator %s produced a non-zero total gap", name)
	}
}

func TestGeneratorsAreDeterministicForSameSeed(t *testing.T) {
	cfg := Config{NStations: 8, VehicleCapacity: 12, Seed: 7}

	a, err := Uniform(cfg)
	require.NoError(t, err)
	b, err := Uniform(cfg)
	require.NoError(t, err)

	require.Equal(t, a.ListStations(), b.ListStations())
}

func TestBuildInstanceRejectsTooFewStations(t *testing.T) {
	cfg := Config{NStations: 1, VehicleCapacity: 10, Seed: 1}
	_, err := Uniform(cfg)
	require.ErrorIs(t, err, ErrTooFewStations)
}

func TestTightCapacityGapsStayWithinHalfCapacity(t *testing.T) {
	cfg := Config{NStations: 12, VehicleCapacity: 20, Seed: 99}
	g, err := TightCapacity(cfg)
	require.NoError(t, err)

	maxGap := cfg.VehicleCapacity / 2
	for _, s := range g.ListStations() {
		if s.IsDepot() {
			continue
		}
		require.LessOrEqual(t, abs(s.Gap()), maxGap)
	}
}
