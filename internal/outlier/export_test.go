package outlier

// BinomialIntervalApproximationForTest exposes binomialIntervalApproximation
// to the external test package.
func BinomialIntervalApproximationForTest(n int, p, width float64) (lo, hi int, ok bool) {
	return binomialIntervalApproximation(n, p, width)
}
