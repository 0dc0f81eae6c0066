package bench

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lcmarius/TIPE-BSSR/construct"
	"github.com/lcmarius/TIPE-BSSR/generate"
	"github.com/lcmarius/TIPE-BSSR/routing"
)

func greedyAlgorithm(g *routing.Graph, capacity int, rng *rand.Rand) error {
	return construct.Greedy(g, capacity, rng)
}

func surplusDeficitAlgorithm(g *routing.Graph, capacity int, rng *rand.Rand) error {
	return construct.SurplusDeficit(g, capacity, rng)
}

func TestRunProducesReportAcrossCategories(t *testing.T) {
	cfg := Config{
		NStations:       8,
		VehicleCapacity: 16,
		NumProblems:     3,
		BaseSeed:        100,
		Workers:         2,
		Categories: []Category{
			{Name: "Uniform", Generator: generate.Uniform},
			{Name: "Clustered", Generator: generate.Clustered},
		},
	}
	algorithms := map[string]Algorithm{
		"greedy":          greedyAlgorithm,
		"surplus-deficit": surplusDeficitAlgorithm,
	}

	report, err := Run(algorithms, cfg)
	require.NoError(t, err)
	require.Len(t, report, 2)

	for _, cat := range cfg.Categories {
		catReport, ok := report[cat.Name]
		require.True(t, ok)
		require.Len(t, catReport, 2)

		for _, result := range catReport {
			require.LessOrEqual(t, result.SuccessCount, cfg.NumProblems)
		}
	}
}

func TestRunRejectsEmptyAlgorithms(t *testing.T) {
	cfg := DefaultConfig()
	_, err := Run(map[string]Algorithm{}, cfg)
	require.ErrorIs(t, err, ErrNoAlgorithms)
}

func TestRunRejectsEmptyCategories(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Categories = nil
	_, err := Run(map[string]Algorithm{"greedy": greedyAlgorithm}, cfg)
	require.ErrorIs(t, err, ErrNoCategories)
}

func TestGlobalSummaryAveragesAcrossCategories(t *testing.T) {
	cfg := Config{
		NStations:       6,
		VehicleCapacity: 16,
		NumProblems:     2,
		BaseSeed:        200,
		Workers:         2,
		Categories: []Category{
			{Name: "Uniform", Generator: generate.Uniform},
			{Name: "HubSpoke", Generator: generate.HubSpoke},
		},
	}
	algorithms := map[string]Algorithm{"greedy": greedyAlgorithm}

	report, err := Run(algorithms, cfg)
	require.NoError(t, err)

	summary := report.GlobalSummary()
	require.Contains(t, summary, "greedy")

	var scoreSum float64
	count := 0
	for _, cat := range report {
		if result, ok := cat["greedy"]; ok && result.SuccessCount > 0 {
			scoreSum += result.AvgScore()
			count++
		}
	}
	got := summary["greedy"]
	require.InDelta(t, scoreSum/float64(count), got.AvgScore(), 1e-9)
}
