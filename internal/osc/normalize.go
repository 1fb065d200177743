package osc

import (
	"fmt"
	"math"
)

// Normalize rescales values linearly into [lower, upper].
//
// The smallest input maps to lower and the largest to upper. When every
// value is equal the division is 0/0 and the outputs are NaN; callers must
// not pass a constant sequence.
func Normalize(values []float64, lower, upper float64) ([]float64, error) {
	if !(lower < upper) {
		return nil, fmt.Errorf("%w: got [%g, %g]", ErrInvalidRange, lower, upper)
	}
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out, nil
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	for i, v := range values {
		out[i] = (upper-lower)*((v-lo)/(hi-lo)) + lower
	}
	return out, nil
}

// AssurePositive returns the absolute value of every argument, in order.
func AssurePositive(numbers ...float64) []float64 {
	out := make([]float64, len(numbers))
	for i, n := range numbers {
		out[i] = math.Abs(n)
	}
	return out
}
