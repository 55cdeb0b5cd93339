// Package outlier implements the symmetric-trim outlier filters applied to
// a paired-difference series before it is summarized.
package outlier

import "sort"

// iqrFactor is the number of interquartile ranges a value must clear the
// corresponding quartile by before it is eligible to be trimmed (a "5 IQR"
// Tukey-style fence, much wider than the conventional 1.5 to tolerate the
// heavy tails typical of wall-clock timing noise).
const iqrFactor = 5

// Thresholds is a pair of symmetric trim bounds: values strictly below Low
// or strictly above High are outliers.
type Thresholds struct {
	Low  int64
	High int64
}

// IQRThresholds computes symmetric outlier thresholds for diff using the
// interquartile-range method. ok is false when the fences can't be usefully
// computed; callers should then use the data unfiltered.
//
// The returned thresholds are symmetric: the same count of values is
// discarded from each tail, even though the underlying IQR fences
// (Low, High) are not symmetric around the median, to avoid biasing the
// mean of what remains.
func IQRThresholds(diff []int64) (Thresholds, bool) {
	n := len(diff)
	if n == 0 {
		return Thresholds{}, false
	}

	sorted := make([]int64, n)
	copy(sorted, diff)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	q1Idx, q3Idx := n/4, n*3/4
	if q1Idx >= q3Idx || q3Idx >= n || sorted[q1Idx] >= sorted[q3Idx] {
		return Thresholds{}, false
	}

	iqr := sorted[q3Idx] - sorted[q1Idx]
	low := sorted[q1Idx] - iqr*iqrFactor
	high := sorted[q3Idx] + iqr*iqrFactor

	lowIdx := searchInt64(sorted[:q1Idx], low)
	highIdxInSuffix := searchInt64(sorted[q3Idx:], high)
	highIdx := q3Idx + highIdxInSuffix

	if lowIdx == 0 || highIdx >= n {
		return Thresholds{}, false
	}

	outliers := min(lowIdx, n-highIdx)
	return Thresholds{Low: sorted[outliers], High: sorted[n-outliers]}, true
}

// Filter removes values outside [t.Low, t.High] (inclusive) from diff,
// preserving order, and reports how many were removed.
func Filter(diff []int64, t Thresholds) (kept []int64, removed int) {
	kept = make([]int64, 0, len(diff))
	for _, v := range diff {
		if v < t.Low || v > t.High {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	return kept, removed
}

// searchInt64 returns the index at which target would be inserted into a
// sorted slice: the insertion point on a miss.
func searchInt64(sorted []int64, target int64) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] >= target })
}
