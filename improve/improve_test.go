package improve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lcmarius/TIPE-BSSR/routing"
	"github.com/lcmarius/TIPE-BSSR/station"
)

// buildCrossedTour constructs a graph whose initial depot-first tour
// deliberately crosses itself, so 2-opt has an improving move available.
func buildCrossedTour(t *testing.T) *routing.Graph {
	t.Helper()
	depot := station.New(station.Depot, "Depot", 0, "addr", 0, 0, 0, 0)
	g, err := routing.New(depot, nil)
	require.NoError(t, err)

	require.NoError(t, g.AddStation(station.New(1, "A", 50, "addr", 0, 1, 10, 5)))  // +5
	require.NoError(t, g.AddStation(station.New(2, "B", 50, "addr", 1, 0, 10, 5)))  // +5
	require.NoError(t, g.AddStation(station.New(3, "C", 50, "addr", 0, -1, 5, 10))) // -5
	require.NoError(t, g.AddStation(station.New(4, "D", 50, "addr", -1, 0, 5, 10))) // -5

	// Crossed order: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(2, 4))
	require.NoError(t, g.AddEdge(4, 1))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(3, 0))

	return g
}

func TestTwoOptImprovesOrMaintainsFeasibility(t *testing.T) {
	g := buildCrossedTour(t)
	opts := DefaultOptions()

	require.NoError(t, TwoOpt(g, 50, opts))
	require.True(t, g.IsConnex())

	tour := g.GetTour()
	require.Equal(t, station.Depot, tour[0])
	require.Equal(t, station.Depot, tour[len(tour)-1])
	require.True(t, feasible(g, tour, 50))
}

func TestTwoOptRejectsWhenNotConnex(t *testing.T) {
	depot := station.New(station.Depot, "Depot", 0, "addr", 0, 0, 0, 0)
	g, err := routing.New(depot, nil)
	require.NoError(t, err)
	require.NoError(t, g.AddStation(station.New(1, "A", 10, "addr", 0, 1, 6, 3)))

	require.ErrorIs(t, TwoOpt(g, 10, DefaultOptions()), ErrNotConnex)
}

func TestThreeOptPreservesConnexity(t *testing.T) {
	g := buildCrossedTour(t)
	opts := DefaultOptions()

	require.NoError(t, ThreeOpt(g, 50, opts))
	require.True(t, g.IsConnex())

	tour := g.GetTour()
	require.Len(t, tour, 6)
}

func TestThreeOptRejectsWhenNotConnex(t *testing.T) {
	depot := station.New(station.Depot, "Depot", 0, "addr", 0, 0, 0, 0)
	g, err := routing.New(depot, nil)
	require.NoError(t, err)
	require.NoError(t, g.AddStation(station.New(1, "A", 10, "addr", 0, 1, 6, 3)))

	require.ErrorIs(t, ThreeOpt(g, 10, DefaultOptions()), ErrNotConnex)
}
