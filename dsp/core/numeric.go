package core

import "math"

const defaultEpsilon = 1e-12

// Float is the set of real sample types a stage can emit.
type Float interface {
	~float32 | ~float64
}

// NearlyEqual reports whether a and b are equal within eps.
// The comparison is absolute for small magnitudes and relative otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 || math.IsInf(largest, 0) {
		return false
	}

	return diff/largest <= eps
}

// Reciprocal returns 1/x using plain IEEE division.
// Zero yields a signed infinity and NaN stays NaN.
func Reciprocal[F Float](x F) F {
	return 1 / x
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
