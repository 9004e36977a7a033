package collector

import (
	"context"
	"time"

	"TrendScope/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  []model.DailyBar
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, _ string, start, end time.Time) ([]model.DailyBar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return generateMockBars(m.Price, start, end), nil
}

// generateMockBars produces a gently trending weekday series so every
// indicator has something to chew on.
func generateMockBars(basePrice float64, start, end time.Time) []model.DailyBar {
	if basePrice == 0 {
		basePrice = 100
	}
	var bars []model.DailyBar
	i := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		drift := float64(i) * 0.001
		wave := 0.02 * wobble(i)
		bars = append(bars, model.DailyBar{
			Date:   d,
			Close:  basePrice * (1 + drift + wave),
			Volume: 1000000,
		})
		i++
	}
	return bars
}

// wobble is a cheap deterministic oscillation in [-1, 1].
func wobble(i int) float64 {
	cycle := i % 20
	if cycle < 10 {
		return float64(cycle)/5 - 1
	}
	return 1 - float64(cycle-10)/5
}
