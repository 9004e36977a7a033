package calculator

// SMA computes the trailing simple moving average of the series,
// right aligned: out[i] covers values[i-period+1 .. i]. Rows before the
// window is full are undefined, and a missing value anywhere inside the
// window leaves that row undefined too (NaN propagates through the sum).
func SMA(values []float64, period int) []float64 {
	out := undefinedSeries(len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(period)
	}
	return out
}

// EMA computes the exponential moving average with smoothing factor
// 2/(span+1), seeded at index span-1 with the simple average of the
// first span values. Rows before the seed are undefined.
func EMA(values []float64, span int) []float64 {
	out := undefinedSeries(len(values))
	if span <= 0 || len(values) < span {
		return out
	}
	seed := 0.0
	for i := 0; i < span; i++ {
		seed += values[i]
	}
	out[span-1] = seed / float64(span)

	mult := 2.0 / float64(span+1)
	for i := span; i < len(values); i++ {
		out[i] = (values[i]-out[i-1])*mult + out[i-1]
	}
	return out
}
