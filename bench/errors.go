// Package bench implements the parallel multi-algorithm benchmark harness:
// running every (algorithm, instance) pair across several problem
// categories and aggregating gap-vs-best, score and timing statistics.
//
// Grounded on original_source/src/solver/benchmark.py's run_benchmark /
// print_category_results / print_global_summary, adapted from Python
// threads to a golang.org/x/sync/errgroup worker pool.
package bench

import "errors"

// ErrNoCategories indicates Config.Categories is empty; there is nothing
// to benchmark.
var ErrNoCategories = errors.New("bench: no categories configured")

// ErrNoAlgorithms indicates the algorithms map passed to Run is empty.
var ErrNoAlgorithms = errors.New("bench: no algorithms configured")
