package model

import "time"

// DailyBar is a single daily observation as returned by a market-data
// provider. Close is NaN when the provider reported the trading day but
// no close price for it.
type DailyBar struct {
	Date   time.Time
	Close  float64
	Volume float64
}

// BarSeries holds the raw bars for one symbol over one fetch window.
type BarSeries struct {
	Symbol    string
	Bars      []DailyBar
	FetchedAt time.Time
}

// Closes extracts the raw close column in row order.
func (s BarSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}
