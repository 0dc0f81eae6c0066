package alns

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lcmarius/TIPE-BSSR/routing"
	"github.com/lcmarius/TIPE-BSSR/station"
)

func buildRunnableGraph(t *testing.T) *routing.Graph {
	t.Helper()
	depot := station.New(station.Depot, "Depot", 0, "addr", 0, 0, 0, 0)
	g, err := routing.New(depot, nil)
	require.NoError(t, err)

	require.NoError(t, g.AddStation(station.New(1, "A", 50, "addr", 0, 1, 14, 8)))
	require.NoError(t, g.AddStation(station.New(2, "B", 50, "addr", 1, 1, 3, 9)))
	require.NoError(t, g.AddStation(station.New(3, "C", 50, "addr", 1, 0, 12, 10)))
	require.NoError(t, g.AddStation(station.New(4, "D", 50, "addr", -1, -1, 9, 11)))

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 4))
	require.NoError(t, g.AddEdge(4, 0))

	return g
}

func TestRunPreservesFeasibilityAndConnexity(t *testing.T) {
	g := buildRunnableGraph(t)
	opts := DefaultOptions()
	opts.MaxIterations = 50
	opts.RemovalSize = 2

	require.NoError(t, Run(g, 50, opts))
	require.True(t, g.IsConnex())

	tour := g.GetTour()
	require.Equal(t, station.Depot, tour[0])
	require.Equal(t, station.Depot, tour[len(tour)-1])
	require.Len(t, tour, 6)
	require.True(t, feasibleTour(g, tour, 50))
}

func TestRunRejectsWhenNotConnex(t *testing.T) {
	depot := station.New(station.Depot, "Depot", 0, "addr", 0, 0, 0, 0)
	g, err := routing.New(depot, nil)
	require.NoError(t, err)
	require.NoError(t, g.AddStation(station.New(1, "A", 10, "addr", 0, 1, 6, 3)))

	require.ErrorIs(t, Run(g, 10, DefaultOptions()), ErrNotConnex)
}

func TestRouletteWheelSelectRespectsZeroWeights(t *testing.T) {
	rng := rngFromSeed(1)
	idx := rouletteWheelSelect([]float64{0, 0, 0}, rng)
	require.GreaterOrEqual(t, idx, 0)
	require.Less(t, idx, 3)
}
