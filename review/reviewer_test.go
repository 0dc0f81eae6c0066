package review

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lcmarius/TIPE-BSSR/routing"
	"github.com/lcmarius/TIPE-BSSR/station"
)

func buildSolvedGraph(t *testing.T) *routing.Graph {
	t.Helper()
	depot := station.New(station.Depot, "Depot", 0, "addr", 0, 0, 0, 0)
	g, err := routing.New(depot, nil)
	require.NoError(t, err)

	require.NoError(t, g.AddStation(station.New(1, "A", 20, "addr", 0, 0.01, 14, 8)))
	require.NoError(t, g.AddStation(station.New(2, "B", 20, "addr", 0, 0.02, 5, 9)))
	require.NoError(t, g.AddStation(station.New(3, "C", 20, "addr", 0, 0.03, 8, 10)))

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 0))

	return g
}

func TestAssertSolutionAcceptsValidTour(t *testing.T) {
	g := buildSolvedGraph(t)
	require.NoError(t, AssertSolution(g))
}

func TestAssertSolutionRejectsDisconnected(t *testing.T) {
	depot := station.New(station.Depot, "Depot", 0, "addr", 0, 0, 0, 0)
	g, err := routing.New(depot, nil)
	require.NoError(t, err)
	require.NoError(t, g.AddStation(station.New(1, "A", 20, "addr", 0, 0.01, 6, 5)))

	require.ErrorIs(t, AssertSolution(g), ErrNotConnex)
}

func TestReviewSolutionScoresWithinUnitRange(t *testing.T) {
	g := buildSolvedGraph(t)

	metrics, err := ReviewSolution(g)
	require.NoError(t, err)
	require.True(t, metrics.Solved)
	require.GreaterOrEqual(t, metrics.Score, 0.0)
	require.LessOrEqual(t, metrics.Score, 1.0)
	require.Greater(t, metrics.Distance, 0.0)
}

func TestComputeBoundsUpperIsTwiceLower(t *testing.T) {
	g := buildSolvedGraph(t)

	lower, upper := ComputeBounds(g)
	require.InDelta(t, 2*lower, upper, 1e-6)
	require.Greater(t, lower, 0.0)
}

func TestComputeBoundsTrivialForSingleStation(t *testing.T) {
	depot := station.New(station.Depot, "Depot", 0, "addr", 0, 0, 0, 0)
	g, err := routing.New(depot, nil)
	require.NoError(t, err)

	lower, upper := ComputeBounds(g)
	require.Equal(t, 0.0, lower)
	require.Equal(t, 0.0, upper)
}
