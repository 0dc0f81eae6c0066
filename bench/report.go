package bench

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// AlgorithmResult accumulates every outcome for one algorithm within a
// single category, mirroring original_source's BenchmarkResult.
type AlgorithmResult struct {
	Name         string
	Scores       []float64
	Times        []time.Duration
	Gaps         []float64
	FailedSeeds  []int64
	SuccessCount int
}

// AvgScore returns the mean score across successful runs (0 if none).
func (r *AlgorithmResult) AvgScore() float64 {
	if len(r.Scores) == 0 {
		return 0
	}

	return stat.Mean(r.Scores, nil)
}

// AvgTime returns the mean elapsed time across successful runs.
func (r *AlgorithmResult) AvgTime() time.Duration {
	if len(r.Times) == 0 {
		return 0
	}

	millis := make([]float64, len(r.Times))
	for i, d := range r.Times {
		millis[i] = float64(d.Microseconds()) / 1000
	}

	return time.Duration(stat.Mean(millis, nil) * float64(time.Millisecond))
}

// AvgGap returns the mean percentage gap against the best algorithm on
// each problem instance.
func (r *AlgorithmResult) AvgGap() float64 {
	if len(r.Gaps) == 0 {
		return 0
	}

	return stat.Mean(r.Gaps, nil)
}

// StdDevScore returns the sample standard deviation of the score across
// successful runs (0 if fewer than two samples).
func (r *AlgorithmResult) StdDevScore() float64 {
	if len(r.Scores) < 2 {
		return 0
	}

	return stat.StdDev(r.Scores, nil)
}

// SuccessRate returns the percentage of totalProblems this algorithm
// solved without error.
func (r *AlgorithmResult) SuccessRate(totalProblems int) float64 {
	if totalProblems == 0 {
		return 0
	}

	return float64(r.SuccessCount) / float64(totalProblems) * 100
}

// CategoryReport maps algorithm name to its accumulated result within one
// problem category.
type CategoryReport map[string]*AlgorithmResult

// Report maps category name to its CategoryReport, the top-level return
// value of Run.
type Report map[string]CategoryReport

// buildReport folds every task outcome into a Report, then computes each
// algorithm's per-problem gap against the best algorithm on that same
// problem instance — grounded on original_source's end-of-loop gap
// computation in run_benchmark.
func buildReport(cfg Config, outcomes []taskOutcome) Report {
	report := make(Report, len(cfg.Categories))
	for _, cat := range cfg.Categories {
		report[cat.Name] = make(CategoryReport, len(outcomes))
	}

	type problemKey struct {
		category string
		seed     int64
	}
	distancesByProblem := make(map[problemKey]map[string]float64)

	for _, o := range outcomes {
		cr := report[o.category]
		result, ok := cr[o.algoName]
		if !ok {
			result = &AlgorithmResult{Name: o.algoName}
			cr[o.algoName] = result
		}

		if o.err != nil {
			result.FailedSeeds = append(result.FailedSeeds, o.seed)

			continue
		}

		result.Scores = append(result.Scores, o.metrics.Score)
		result.Times = append(result.Times, o.elapsed)
		result.SuccessCount++

		key := problemKey{category: o.category, seed: o.seed}
		if distancesByProblem[key] == nil {
			distancesByProblem[key] = make(map[string]float64)
		}
		distancesByProblem[key][o.algoName] = o.metrics.Distance
	}

	for key, distances := range distancesByProblem {
		best := bestOf(distances)
		for algoName, distance := range distances {
			gap := 0.0
			if best > 0 {
				gap = (distance - best) / best * 100
			}
			report[key.category][algoName].Gaps = append(report[key.category][algoName].Gaps, gap)
		}
	}

	return report
}

func bestOf(distances map[string]float64) float64 {
	best := -1.0
	for _, d := range distances {
		if best < 0 || d < best {
			best = d
		}
	}

	return best
}

// RankedCategory returns this category's algorithm results sorted by
// ascending average gap (algorithms with zero successes sort last),
// matching print_category_results' sort key.
func (c CategoryReport) RankedCategory() []*AlgorithmResult {
	ranked := make([]*AlgorithmResult, 0, len(c))
	for _, r := range c {
		ranked = append(ranked, r)
	}
	sort.Slice(ranked, func(i, j int) bool {
		gi, gj := ranked[i].AvgGap(), ranked[j].AvgGap()
		if ranked[i].SuccessCount == 0 {
			gi = 1e18
		}
		if ranked[j].SuccessCount == 0 {
			gj = 1e18
		}

		return gi < gj
	})

	return ranked
}

// GlobalSummary averages each algorithm's gap/score/time across every
// category it succeeded in at least once, matching print_global_summary.
func (r Report) GlobalSummary() map[string]AlgorithmResult {
	sums := make(map[string]struct {
		gap, score, time float64
		count            int
	})

	for _, cat := range r {
		for name, result := range cat {
			if result.SuccessCount == 0 {
				continue
			}
			s := sums[name]
			s.gap += result.AvgGap()
			s.score += result.AvgScore()
			s.time += float64(result.AvgTime())
			s.count++
			sums[name] = s
		}
	}

	summary := make(map[string]AlgorithmResult, len(sums))
	for name, s := range sums {
		if s.count == 0 {
			continue
		}
		summary[name] = AlgorithmResult{
			Name:   name,
			Scores: []float64{s.score / float64(s.count)},
			Gaps:   []float64{s.gap / float64(s.count)},
			Times:  []time.Duration{time.Duration(s.time / float64(s.count))},
		}
	}

	return summary
}
