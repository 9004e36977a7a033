package calculator

import "math"

// DailyReturns computes the simple percentage change series over the raw
// closes. The first row has no prior close and is undefined; so is any
// row where either close involved is missing or the prior close is zero.
func DailyReturns(closes []float64) []float64 {
	out := undefinedSeries(len(closes))
	for i := 1; i < len(closes); i++ {
		prev, cur := closes[i-1], closes[i]
		if math.IsNaN(prev) || math.IsNaN(cur) || prev == 0 {
			continue
		}
		out[i] = (cur - prev) / prev
	}
	return out
}

// ForwardFill carries the last observed close over missing rows. Leading
// gaps have nothing to carry and stay undefined. The input is not
// modified.
func ForwardFill(closes []float64) []float64 {
	out := make([]float64, len(closes))
	last := math.NaN()
	for i, v := range closes {
		if !math.IsNaN(v) {
			last = v
		}
		out[i] = last
	}
	return out
}
