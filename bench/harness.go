package bench

import (
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lcmarius/TIPE-BSSR/generate"
	"github.com/lcmarius/TIPE-BSSR/review"
)

// task is one (category, algorithm, seed) unit of work.
type task struct {
	category        string
	algoName        string
	algo            Algorithm
	generator       generate.Generator
	seed            int64
	nStations       int
	vehicleCapacity int
}

// taskOutcome is what a single task produces: either a successful review
// plus elapsed time, or a failure (the seed that failed, for reporting).
type taskOutcome struct {
	category string
	algoName string
	seed     int64
	metrics  review.Metrics
	elapsed  time.Duration
	err      error
}

// Run executes every algorithm against every generated instance across
// every configured category, using an errgroup.Group worker pool capped at
// cfg.Workers. Each task generates its own routing.Graph instance (fresh
// per seed, never shared across goroutines) and seeds its own *rand.Rand
// from the problem seed cfg.BaseSeed + 100*problem index (the same seed for
// every category and algorithm on that problem), matching spec §5's
// no-shared-RNG-state rule.
//
// Grounded on original_source's run_benchmark, restructured from
// ThreadPoolExecutor-per-category onto a single errgroup pool shared by
// every task across every category, to avoid the Python version's
// oversubscription (4 category pools x N algorithm threads each).
//
// Errors: ErrNoCategories, ErrNoAlgorithms.
func Run(algorithms map[string]Algorithm, cfg Config) (Report, error) {
	if len(cfg.Categories) == 0 {
		return nil, ErrNoCategories
	}
	if len(algorithms) == 0 {
		return nil, ErrNoAlgorithms
	}

	var tasks []task
	for _, cat := range cfg.Categories {
		for problem := 0; problem < cfg.NumProblems; problem++ {
			seed := cfg.BaseSeed + int64(problem)*100
			for algoName, algo := range algorithms {
				tasks = append(tasks, task{
					category:        cat.Name,
					algoName:        algoName,
					algo:            algo,
					generator:       cat.Generator,
					seed:            seed,
					nStations:       cfg.NStations,
					vehicleCapacity: cfg.VehicleCapacity,
				})
			}
		}
	}

	outcomes := make([]taskOutcome, len(tasks))

	var g errgroup.Group
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}

	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			outcomes[i] = runTask(t)

			return nil
		})
	}
	_ = g.Wait() // runTask never returns an error to the group; failures are recorded per-outcome

	return buildReport(cfg, outcomes), nil
}

// runTask generates one instance from (category, seed), runs algo against
// it and reviews the result, recording elapsed time on success.
func runTask(t task) taskOutcome {
	start := time.Now()

	instanceCfg := generate.Config{
		NStations:       t.nStations,
		VehicleCapacity: t.vehicleCapacity,
		Seed:            t.seed,
	}
	g, err := t.generator(instanceCfg)
	if err != nil {
		return taskOutcome{category: t.category, algoName: t.algoName, seed: t.seed, err: err}
	}

	rng := rand.New(rand.NewSource(t.seed))
	if err := t.algo(g, t.vehicleCapacity, rng); err != nil {
		return taskOutcome{category: t.category, algoName: t.algoName, seed: t.seed, err: err}
	}

	metrics, err := review.ReviewSolution(g)
	if err != nil {
		return taskOutcome{category: t.category, algoName: t.algoName, seed: t.seed, err: err}
	}

	return taskOutcome{
		category: t.category,
		algoName: t.algoName,
		seed:     t.seed,
		metrics:  metrics,
		elapsed:  time.Since(start),
	}
}
