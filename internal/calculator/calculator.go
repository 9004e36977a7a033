package calculator

import "math"

// Indicator window lengths used by the analysis pipeline.
const (
	MAShortWindow = 5
	MALongWindow  = 20
	MACDFast      = 12
	MACDSlow      = 26
	MACDSignal    = 9
	RSIWindow     = 14
)

// IsUndefined reports whether a cell holds no value. Undefined cells
// are IEEE NaNs: warm-up rows, missing closes, zero denominators. NaN
// propagates through window sums and recurrences without special
// casing, so the kernels never need to branch on it.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

func undefinedSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
