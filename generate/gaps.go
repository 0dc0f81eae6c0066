package generate

import "math/rand"

// balancedGaps produces n bike gaps summing to exactly zero, each within
// [-maxGap, maxGap]. The first n-1 gaps alternate sign (even index:
// surplus in [tightLow*maxGap, maxGap], odd index: deficit in the mirrored
// range); the last gap is whatever value balances the sum to zero. If that
// final gap would exceed maxGap in absolute value, the excess is
// redistributed back onto the earlier gaps exactly as original_source's
// four generator functions do.
//
// tightLow scales the lower bound of the alternating gaps' magnitude:
// 0 for the uniform/clustered/hub-and-spoke generators (full [1, maxGap]
// range, the lower bound being clamped to 1) and 0.8 for the tight-capacity generator ([0.8*maxGap, maxGap]).
func balancedGaps(n, maxGap int, tightLow float64, rng *rand.Rand) []int {
	if n == 0 {
		return nil
	}

	gaps := make([]int, 0, n)
	lowMagnitude := int(tightLow * float64(maxGap))
	if lowMagnitude < 1 {
		lowMagnitude = 1
	}

	for i := 0; i < n-1; i++ {
		if i%2 == 0 {
			gaps = append(gaps, randIntRange(rng, lowMagnitude, maxGap))
		} else {
			gaps = append(gaps, -randIntRange(rng, lowMagnitude, maxGap))
		}
	}

	sum := 0
	for _, g := range gaps {
		sum += g
	}
	lastGap := -sum

	if abs(lastGap) > maxGap {
		excess := abs(lastGap) - maxGap
		if lastGap > 0 {
			lastGap = maxGap
		} else {
			lastGap = -maxGap
		}

		for i := range gaps {
			if excess == 0 {
				break
			}
			switch {
			case gaps[i] > 0 && lastGap < 0:
				adjustment := min(excess, gaps[i]-1)
				gaps[i] -= adjustment
				excess -= adjustment
			case gaps[i] < 0 && lastGap > 0:
				adjustment := min(excess, -gaps[i]-1)
				gaps[i] += adjustment
				excess -= adjustment
			}
		}
	}

	return append(gaps, lastGap)
}

// randIntRange returns a uniform random integer in [low, high] (inclusive).
// If high < low, high is returned.
func randIntRange(rng *rand.Rand, low, high int) int {
	if high <= low {
		return high
	}

	return low + rng.Intn(high-low+1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
