package outlier

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// VarianceJumpThresholds is an exploratory outlier filter kept as an
// alternative to IQRThresholds for test/diagnostic use: it scans
// the largest-magnitude values looking for the point where including one
// more observation causes a disproportionate jump in running variance, then
// sanity-checks the split with a binomial balance test so a few genuinely
// large (but legitimately one-sided) measurements don't get discarded as if
// they were symmetric noise.
//
// outliersCnt bounds how many of the largest-magnitude values are
// considered as candidate outliers.
func VarianceJumpThresholds(diff []int64, outliersCnt int) (Thresholds, bool) {
	n := len(diff)
	if outliersCnt <= 0 || outliersCnt >= n {
		return Thresholds{}, false
	}

	sorted := make([]int64, n)
	copy(sorted, diff)
	sort.Slice(sorted, func(i, j int) bool {
		return abs64(sorted[i]) < abs64(sorted[j])
	})

	skip := n - outliersCnt
	negativeOutliers := 0
	for _, v := range sorted[skip:] {
		if v < 0 {
			negativeOutliers++
		}
	}

	var (
		runningMean float64
		runningS    float64
		runningN    float64
		prevVar     float64 // stays 0 through the first loop iteration below,
		// deliberately: the comparison is only meaningful once there are two
		// running-variance data points to compare.
	)
	// Replay the running variance over the discarded prefix so runningMean/S/N
	// reflect the state a full-array stream would be in: the variance at each
	// candidate index is computed over the WHOLE prefix from the start, not
	// just the candidate window.
	for _, v := range sorted[:skip] {
		pushVariance(&runningMean, &runningS, &runningN, float64(v))
	}

	// remainingCandidates shrinks by one each iteration: both the jump target
	// and the balance test use the count of candidates not yet consumed, not
	// the initial total.
	remainingCandidates := outliersCnt
	for i := skip; i < n; i++ {
		value := sorted[i]
		variance := pushVariance(&runningMean, &runningS, &runningN, float64(value))

		if prevVar > 0 {
			deviance := variance/prevVar - 1
			target := 100 / float64(n-remainingCandidates)
			if deviance > target {
				if lo, hi, ok := binomialIntervalApproximation(remainingCandidates, 0.5, 0.5); ok {
					if negativeOutliers > lo && negativeOutliers < hi {
						return Thresholds{Low: -abs64(value), High: abs64(value)}, true
					}
				} else {
					// Normal approximation doesn't hold for small n*p; there's
					// no basis to reject an imbalanced split, so accept it.
					return Thresholds{Low: -abs64(value), High: abs64(value)}, true
				}
			}
		}

		prevVar = variance
		remainingCandidates--
		if value < 0 {
			negativeOutliers--
		}
	}

	return Thresholds{}, false
}

// pushVariance incorporates value into a Welford accumulator described by
// (mean, s, n) in place, and returns the resulting sample variance (0 for
// n==1). This mirrors stats.running but operates on plain float64 pointers
// since VarianceJumpThresholds needs to resume the accumulator mid-stream.
func pushVariance(mean, s, n *float64, value float64) float64 {
	*n++
	meanPrev := *mean
	*mean += (value - *mean) / *n
	*s += (value - meanPrev) * (value - *mean)
	return varianceOf(*s, *n)
}

func varianceOf(s, n float64) float64 {
	if n <= 1 {
		return 0
	}
	return s / (n - 1)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// binomialIntervalApproximation computes a normal approximation of the
// central interval of Binomial(n, p) that leaves probability width/2 in
// the lower tail (the upper end mirrors it as n-lo), used to decide whether an
// observed count of negative outliers is "balanced" (roughly as many
// negative as positive extreme values, consistent with symmetric noise) or
// suspiciously one-sided. Returns ok=false when n*p or n*(1-p) is too small
// (<10) for the normal approximation to be trustworthy.
func binomialIntervalApproximation(n int, p, width float64) (lo, hi int, ok bool) {
	nf := float64(n)
	if nf*p < 10 || nf*(1-p) < 10 {
		return 0, 0, false
	}
	mu := nf * p
	sigma := math.Sqrt(nf * p * (1 - p))
	dist := distuv.Normal{Mu: mu, Sigma: sigma}

	lowEnd := int(math.Floor(dist.Quantile(width / 2)))
	highEnd := n - lowEnd
	return lowEnd, highEnd, true
}
