package calculator

import "math"

// MACD computes the MACD line (EMA(12) minus EMA(26)) and its signal
// line (EMA(9) of the MACD line) over the given closes. Both series are
// returned at full length, left padded with undefined through the EMA
// warm-up: the MACD line is defined from index MACDSlow-1, the signal
// line MACDSignal-1 rows later.
//
// Callers feed forward-filled closes; interior gaps in the raw series
// must not reach the EMA recurrences.
func MACD(closes []float64) (macd, signal []float64) {
	n := len(closes)
	macd = undefinedSeries(n)
	signal = undefinedSeries(n)
	if n < MACDSlow {
		return macd, signal
	}

	fast := EMA(closes, MACDFast)
	slow := EMA(closes, MACDSlow)
	for i := MACDSlow - 1; i < n; i++ {
		macd[i] = fast[i] - slow[i]
	}

	// The signal EMA is seeded over the defined MACD segment only;
	// seeding over the padding would poison the whole line.
	defined := macd[MACDSlow-1:]
	if len(defined) < MACDSignal {
		return macd, signal
	}
	sig := EMA(defined, MACDSignal)
	for i, v := range sig {
		if !math.IsNaN(v) {
			signal[MACDSlow-1+i] = v
		}
	}
	return macd, signal
}
