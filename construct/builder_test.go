package construct

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lcmarius/TIPE-BSSR/routing"
	"github.com/lcmarius/TIPE-BSSR/station"
)

func newTestGraph(t *testing.T) *routing.Graph {
	t.Helper()
	depot := station.New(station.Depot, "Depot", 0, "addr", 0, 0, 0, 0)
	g, err := routing.New(depot, nil)
	require.NoError(t, err)

	require.NoError(t, g.AddStation(station.New(1, "A", 20, "addr", 0, 0.01, 14, 8)))  // +6
	require.NoError(t, g.AddStation(station.New(2, "B", 20, "addr", 0, 0.02, 3, 9)))   // -6
	require.NoError(t, g.AddStation(station.New(3, "C", 20, "addr", 0, 0.03, 12, 10))) // +2

	return g
}

func TestGreedyProducesFeasibleConnexTour(t *testing.T) {
	g := newTestGraph(t)
	rng := rand.New(rand.NewSource(1))

	require.NoError(t, Greedy(g, 20, rng))
	require.True(t, g.IsConnex())

	tour := g.GetTour()
	require.Equal(t, station.Depot, tour[0])
	require.Equal(t, station.Depot, tour[len(tour)-1])
	require.Len(t, tour, 5)
}

func TestGreedyStartsAtNearestLoadingStationToDepot(t *testing.T) {
	depot := station.New(station.Depot, "Depot", 0, "addr", 0, 0, 0, 0)
	g, err := routing.New(depot, nil)
	require.NoError(t, err)

	// Station 2 is the nearer loading station (gap +4, closer to the
	// depot); station 1 is farther and carries a larger gap, to make sure
	// the choice is driven by distance, not by gap size or station order.
	require.NoError(t, g.AddStation(station.New(1, "Far", 20, "addr", 0, 0.05, 16, 6)))  // +10
	require.NoError(t, g.AddStation(station.New(2, "Near", 20, "addr", 0, 0.01, 9, 5)))  // +4
	require.NoError(t, g.AddStation(station.New(3, "Sink", 20, "addr", 0, 0.02, 2, 16))) // -14

	rng := rand.New(rand.NewSource(1))
	require.NoError(t, Greedy(g, 20, rng))

	successor, ok, err := g.GetSuccessor(station.Depot)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, successor)
}

func TestGreedyNoLoadingStation(t *testing.T) {
	depot := station.New(station.Depot, "Depot", 0, "addr", 0, 0, 0, 0)
	g, err := routing.New(depot, nil)
	require.NoError(t, err)
	require.NoError(t, g.AddStation(station.New(1, "Balanced", 20, "addr", 0, 0.01, 5, 5)))

	rng := rand.New(rand.NewSource(1))
	require.ErrorIs(t, Greedy(g, 20, rng), ErrNoLoadingStation)
}

func TestSurplusDeficitProducesFeasibleConnexTour(t *testing.T) {
	g := newTestGraph(t)
	rng := rand.New(rand.NewSource(1))

	require.NoError(t, SurplusDeficit(g, 20, rng))
	require.True(t, g.IsConnex())

	tour := g.GetTour()
	require.Equal(t, station.Depot, tour[0])
	require.Equal(t, station.Depot, tour[len(tour)-1])
	require.Len(t, tour, 5)
}
